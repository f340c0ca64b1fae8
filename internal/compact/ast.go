package compact

import (
	gast "github.com/yuin/goldmark/ast"
)

// KindTableCaption is the NodeKind of TableCaption.
var KindTableCaption = gast.NewNodeKind("TableCaption")

// TableCaption is the caption of a table. Its lines hold the caption source
// so the inline parser processes it like any other block.
type TableCaption struct {
	gast.BaseBlock
}

// Kind implements Node.Kind.
func (n *TableCaption) Kind() gast.NodeKind {
	return KindTableCaption
}

// Dump implements Node.Dump.
func (n *TableCaption) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

// NewTableCaption returns an empty TableCaption.
func NewTableCaption() *TableCaption {
	return &TableCaption{}
}

// KindCellBreak is the NodeKind of CellBreak.
var KindCellBreak = gast.NewNodeKind("CellBreak")

// CellBreak is a bare line break joining merged cell contents.
type CellBreak struct {
	gast.BaseInline
}

// Kind implements Node.Kind.
func (n *CellBreak) Kind() gast.NodeKind {
	return KindCellBreak
}

// Dump implements Node.Dump.
func (n *CellBreak) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

// NewCellBreak returns a CellBreak.
func NewCellBreak() *CellBreak {
	return &CellBreak{}
}
