// Package compact implements compact tables for goldmark.
//
// Compact tables keep wide Markdown tables readable in source form:
//
//	| name   | breed    | description                    |
//	|--------|----------|--------------------------------|
//	| Aria   | Labrador | She loves to play.  Constantly |
//	|        |          | begs for attention.            |^
//	| #sched                                              |+
//	{ #dogs .wide data-owner="kennel" } Dogs \| 2024
//
// A row ending in `|^` is folded column by column into the row above it.
// A row ending in `|+` is replaced by a single cell spanning every column
// that holds the element whose id is referenced in the row (`#sched`), moved
// from wherever it appears in the document. A line `{ ... }` right after the
// table sets the table id, classes and attributes; text after `}` becomes the
// table caption.
//
// Processing happens in two stages. While the block parser closes a
// paragraph, the scanner classifies rows, strips the sentinels and the
// attribute line, delegates to goldmark's table transformer, and folds
// continuation rows into their lead row. Folding joins the raw cell lines,
// so inline markup such as `*emphasis*` or a link may open in one row and
// close in a continuation row. Once the whole document is parsed, an AST
// transformer places the separators between folded entries, applies
// attributes, then resolves embeds against a document-wide id index, so an
// embed may reference an element defined later in the source.
//
// The extension renders the <table> element itself. Besides the id and
// classes, every custom attribute from the attribute line is written out,
// except event handlers (names starting with "on"), which are dropped.
//
// Problems are never fatal. Malformed blocks are rendered as ordinary
// content; failed embeds are replaced by a diagnostic cell. Every problem is
// recorded and can be read back with Diagnostics.
package compact
