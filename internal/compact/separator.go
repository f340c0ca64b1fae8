package compact

import (
	"bytes"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// span is an inline leaf with a known source range.
type span struct {
	node        gast.Node
	start, stop int
}

// positionedLeaves lists, in document order, the inline nodes under cell
// whose source range is known.
func positionedLeaves(cell gast.Node) []span {
	var leaves []span
	_ = gast.Walk(cell, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *gast.Text:
			leaves = append(leaves, span{v, v.Segment.Start, v.Segment.Stop})
		case *gast.RawHTML:
			if v.Segments.Len() > 0 {
				leaves = append(leaves, span{v, v.Segments.At(0).Start, v.Segments.At(v.Segments.Len() - 1).Stop})
			}
			return gast.WalkSkipChildren, nil
		}
		return gast.WalkContinue, nil
	})
	return leaves
}

// insertSeparators puts a separator between the entries of a merged cell.
// The separator lands as deep as the inline tree allows, so an emphasis or a
// link that spans two rows keeps it inside.
func insertSeparators(j cellJoin, source []byte, sep func() gast.Node) {
	for i := range j.starts {
		leaves := positionedLeaves(j.cell)
		var before, after gast.Node
		for _, l := range leaves {
			if l.stop <= j.stops[i] {
				after = l.node
			}
			if l.start >= j.starts[i] {
				before = l.node
				break
			}
		}
		switch {
		case before != nil:
			n := outermost(j.cell, before, gast.Node.FirstChild)
			p := n.Parent()
			p.InsertBefore(p, n, separatorFor(p, j, i, source, sep))
		case after != nil:
			n := outermost(j.cell, after, gast.Node.LastChild)
			p := n.Parent()
			p.InsertAfter(p, n, separatorFor(p, j, i, source, sep))
		default:
			j.cell.AppendChild(j.cell, sep())
		}
	}
	splitEscapedPipes(j, source)
}

// outermost climbs from n while n sits at the edge of its parent, stopping
// below cell.
func outermost(cell, n gast.Node, edge func(gast.Node) gast.Node) gast.Node {
	for {
		p := n.Parent()
		if p == nil || p == cell || edge(p) != n {
			return n
		}
		n = p
	}
}

// separatorFor returns the node placed between two entries under parent. A
// code span only renders text, so inside one the separator is the line end
// that ends the earlier row.
func separatorFor(parent gast.Node, j cellJoin, i int, source []byte, sep func() gast.Node) gast.Node {
	if parent.Kind() != gast.KindCodeSpan {
		return sep()
	}
	if k := bytes.IndexByte(source[j.stops[i]:j.starts[i]], '\n'); k >= 0 {
		at := j.stops[i] + k
		return gast.NewRawTextSegment(text.NewSegment(at, at+1))
	}
	return gast.NewRawTextSegment(text.NewSegment(j.stops[i], j.stops[i]))
}

// splitEscapedPipes drops the backslash of every \| inside code spans taken
// from folded rows, the way the table extension does for the rows it keeps.
func splitEscapedPipes(j cellJoin, source []byte) {
	var texts []*gast.Text
	_ = gast.Walk(j.cell, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering || n.Kind() != gast.KindCodeSpan {
			return gast.WalkContinue, nil
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*gast.Text); ok && t.Segment.Start >= j.tail {
				texts = append(texts, t)
			}
		}
		return gast.WalkSkipChildren, nil
	})
	for _, t := range texts {
		seg := t.Segment
		var cur gast.Node = t
		for {
			k := bytes.Index(seg.Value(source), []byte(`\|`))
			if k < 0 {
				break
			}
			p := cur.Parent()
			head := gast.NewRawTextSegment(seg.WithStop(seg.Start + k))
			rest := gast.NewRawTextSegment(seg.WithStart(seg.Start + k + 1))
			p.InsertBefore(p, cur, head)
			p.InsertBefore(p, cur, rest)
			p.RemoveChild(p, cur)
			cur, seg = rest, rest.Segment
		}
	}
}
