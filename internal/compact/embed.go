package compact

import (
	"regexp"
	"strconv"

	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// Classes set on the cell that replaces an embed row.
const (
	ContainerClass  = "compact-container"
	EmbedErrorClass = "compact-embed-error"
)

var referencePattern = regexp.MustCompile(`(?:^|\s)#([A-Za-z0-9_][\w\-:.]*)`)

type embedRequest struct {
	table *extast.Table
	row   *extast.TableRow
	line  int
}

// idIndex maps document ids to the element carrying them.
type idIndex struct {
	nodes map[string]gast.Node
	dups  map[string]bool
}

func buildIDIndex(doc gast.Node) *idIndex {
	idx := &idIndex{nodes: map[string]gast.Node{}, dups: map[string]bool{}}
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering || n.Attributes() == nil {
			return gast.WalkContinue, nil
		}
		v, ok := n.AttributeString("id")
		if !ok {
			return gast.WalkContinue, nil
		}
		id := attributeText(v)
		if id == "" {
			return gast.WalkContinue, nil
		}
		if _, seen := idx.nodes[id]; seen {
			idx.dups[id] = true
		} else {
			idx.nodes[id] = n
		}
		return gast.WalkContinue, nil
	})
	return idx
}

func attributeText(v interface{}) string {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case string:
		return t
	}
	return ""
}

// findReference returns the first #identifier found in the row's cells.
func findReference(row *extast.TableRow, source []byte) string {
	for _, cell := range rowCells(row) {
		if m := referencePattern.FindSubmatch(cell.Lines().Value(source)); m != nil {
			return string(m[1])
		}
	}
	return ""
}

// isAncestorOrSelf reports whether n is node or one of its ancestors.
func isAncestorOrSelf(n, node gast.Node) bool {
	for p := node; p != nil; p = p.Parent() {
		if p == n {
			return true
		}
	}
	return false
}

type resolver struct {
	index    *idIndex
	consumed map[string]bool
	source   []byte
}

func newResolver(doc gast.Node, source []byte) *resolver {
	return &resolver{
		index:    buildIDIndex(doc),
		consumed: map[string]bool{},
		source:   source,
	}
}

// resolve moves the referenced element into a spanning cell replacing the
// embed row. On failure the row is left untouched and a Diagnostic returned.
func (r *resolver) resolve(req embedRequest) *Diagnostic {
	ref := findReference(req.row, r.source)
	diag := func(err error, msg string) *Diagnostic {
		return &Diagnostic{Line: req.line, Ref: ref, Err: err, Msg: msg}
	}
	if ref == "" {
		return diag(ErrUnresolvedReference, "embed row has no #id reference")
	}
	if r.consumed[ref] {
		return diag(ErrDuplicateEmbed, "")
	}
	if r.index.dups[ref] {
		return diag(ErrDuplicateID, "")
	}
	target, ok := r.index.nodes[ref]
	if !ok || target.Parent() == nil {
		return diag(ErrUnresolvedReference, "")
	}
	if isAncestorOrSelf(target, req.table) {
		return diag(ErrCyclicEmbed, "")
	}

	parent := target.Parent()
	parent.RemoveChild(parent, target)
	cell := spanningCell(req.table, ContainerClass)
	cell.AppendChild(cell, target)
	replaceCells(req.row, cell)
	r.consumed[ref] = true
	return nil
}

// markFailed replaces the embed row with a visible diagnostic.
func markFailed(req embedRequest, d *Diagnostic) {
	cell := spanningCell(req.table, EmbedErrorClass)
	cell.AppendChild(cell, gast.NewString([]byte(d.Error())))
	replaceCells(req.row, cell)
}

func spanningCell(table *extast.Table, class string) *extast.TableCell {
	columns := len(table.Alignments)
	if columns < 1 {
		columns = 1
	}
	cell := extast.NewTableCell()
	cell.SetAttributeString("colspan", []byte(strconv.Itoa(columns)))
	cell.SetAttributeString("class", []byte(class))
	return cell
}

func replaceCells(row *extast.TableRow, cell *extast.TableCell) {
	row.RemoveChildren(row)
	row.AppendChild(row, cell)
}
