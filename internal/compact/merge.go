package compact

import (
	"bytes"

	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// groupRows partitions body rows into logical rows. Each group lists row
// indexes; the first one is the lead row. An embed row is always a group of
// its own, and a continuation row can never fold into it.
func groupRows(markers []RowMarker) [][]int {
	var groups [][]int
	absorbs := false
	for i, m := range markers {
		if m == MarkerContinuation && absorbs {
			last := len(groups) - 1
			groups[last] = append(groups[last], i)
			continue
		}
		groups = append(groups, []int{i})
		absorbs = m != MarkerEmbed
	}
	return groups
}

func bodyRows(table *extast.Table) []*extast.TableRow {
	var rows []*extast.TableRow
	for c := table.FirstChild(); c != nil; c = c.NextSibling() {
		if row, ok := c.(*extast.TableRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func rowCells(row gast.Node) []*extast.TableCell {
	var cells []*extast.TableCell
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*extast.TableCell); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// isBlankCell reports whether a cell holds nothing but whitespace.
func isBlankCell(cell *extast.TableCell, source []byte) bool {
	if cell.Lines().Len() == 0 {
		return !cell.HasChildren()
	}
	return len(bytes.TrimSpace(cell.Lines().Value(source))) == 0
}

// cellJoin describes one merged cell. Entry i+1 begins at starts[i] and the
// entry before it ends at stops[i]; a separator goes between the two once
// the cell has inline content. Source from tail onwards belongs to folded
// rows.
type cellJoin struct {
	cell   *extast.TableCell
	stops  []int
	starts []int
	tail   int
}

// mergeRows folds members[1:] into members[0] column by column and removes
// them from the table. It works on raw cell lines, so inline markup may open
// in one row and close in the next. Source from tail onwards belongs to
// members[1:].
func mergeRows(members []*extast.TableRow, columns, tail int, source []byte) []cellJoin {
	grid := make([][]*extast.TableCell, len(members))
	for i, row := range members {
		grid[i] = rowCells(row)
	}
	lead := grid[0]
	var joins []cellJoin
	for c := 0; c < columns && c < len(lead); c++ {
		var entries []*extast.TableCell
		for _, cells := range grid {
			if c < len(cells) && !isBlankCell(cells[c], source) {
				entries = append(entries, cells[c])
			}
		}
		if j, ok := joinLines(lead[c], entries, tail); ok {
			joins = append(joins, j)
		}
	}
	for _, row := range members[1:] {
		if p := row.Parent(); p != nil {
			p.RemoveChild(p, row)
		}
	}
	return joins
}

// joinLines sets the lines of target to the lines of entries, in order. It
// reports false when target keeps its own content.
func joinLines(target *extast.TableCell, entries []*extast.TableCell, tail int) (cellJoin, bool) {
	j := cellJoin{cell: target, tail: tail}
	lines := text.NewSegments()
	for i, e := range entries {
		segs := e.Lines()
		if segs.Len() == 0 {
			continue
		}
		if i > 0 && lines.Len() > 0 {
			last := lines.At(lines.Len() - 1)
			j.stops = append(j.stops, last.Stop)
			j.starts = append(j.starts, segs.At(0).Start)
		}
		lines.AppendAll(segs.Sliced(0, segs.Len()))
	}
	target.SetLines(lines)
	moved := len(entries) > 0 && entries[0] != target
	return j, moved || len(j.starts) > 0
}

// mergeTable applies markers to a freshly built table. It returns the cells
// that now span several rows and the embed rows left for later.
func mergeTable(table *extast.Table, markers []RowMarker, rowStarts []int, source []byte) ([]cellJoin, []embedRequest) {
	rows := bodyRows(table)
	columns := len(table.Alignments)
	var joins []cellJoin
	var embeds []embedRequest
	for _, g := range groupRows(markers) {
		lead := g[0]
		if markers[lead] == MarkerEmbed {
			embeds = append(embeds, embedRequest{
				table: table,
				row:   rows[lead],
				line:  lineOf(source, rowStarts[lead]),
			})
			continue
		}
		if len(g) == 1 {
			continue
		}
		members := make([]*extast.TableRow, len(g))
		for i, idx := range g {
			members[i] = rows[idx]
		}
		joins = append(joins, mergeRows(members, columns, rowStarts[g[1]], source)...)
	}
	return joins, embeds
}
