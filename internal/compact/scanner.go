package compact

import (
	"fmt"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// tableRecord is what the scanner remembers about one annotated table until
// the document-wide rewrite runs.
type tableRecord struct {
	joins   []cellJoin
	embeds  []embedRequest
	spec    *AttributeSpec
	caption *TableCaption
	line    int // header line
}

var recordsKey = parser.NewContextKey()

func tableRecords(pc parser.Context) map[*extast.Table]*tableRecord {
	v := pc.Get(recordsKey)
	if v == nil {
		return nil
	}
	return v.(map[*extast.Table]*tableRecord)
}

func addTableRecord(pc parser.Context, table *extast.Table, rec *tableRecord) {
	recs := pc.ComputeIfAbsent(recordsKey, func() interface{} {
		return map[*extast.Table]*tableRecord{}
	}).(map[*extast.Table]*tableRecord)
	recs[table] = rec
}

// scanner classifies table rows and strips annotations before handing the
// paragraph to the stock table transformer, then folds continuation rows
// while the cells still hold raw lines.
type scanner struct {
	tables parser.ParagraphTransformer
}

func newScanner() *scanner {
	return &scanner{tables: extension.NewTableParagraphTransformer()}
}

// blockLayout locates the parts of a candidate table inside a paragraph.
type blockLayout struct {
	header   int // index of the header line
	end      int // exclusive end of row lines
	attr     int // attribute line, -1 if none
	caption  int // separate caption line, -1 if none
	lines    int
	startOff int
}

func locateBlock(lines *text.Segments, source []byte) (blockLayout, bool) {
	l := blockLayout{header: -1, attr: -1, caption: -1, lines: lines.Len()}
	for i := 1; i < l.lines; i++ {
		seg := lines.At(i)
		if isDelimiterRow(seg.Value(source)) {
			l.header = i - 1
			break
		}
	}
	if l.header < 0 {
		return l, false
	}
	l.end = l.lines
	l.startOff = lines.At(l.header).Start
	last := lines.At(l.lines - 1)
	switch {
	case l.lines-1 > l.header+1 && looksLikeAttributeBlock(last.Value(source)):
		l.attr = l.lines - 1
		l.end = l.attr
	case l.lines-2 > l.header+1 && looksLikeAttributeBlock(valueAt(lines, l.lines-2, source)) &&
		!isPipeRow(last.Value(source)):
		l.attr = l.lines - 2
		l.caption = l.lines - 1
		l.end = l.attr
	}
	return l, true
}

func valueAt(lines *text.Segments, i int, source []byte) []byte {
	seg := lines.At(i)
	return seg.Value(source)
}

// Transform implements parser.ParagraphTransformer.
func (s *scanner) Transform(node *gast.Paragraph, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	lines := node.Lines()
	if lines.Len() < 2 {
		return
	}
	layout, ok := locateBlock(lines, source)
	if !ok {
		return
	}
	headerLine := lineOf(source, layout.startOff)

	spec, captionSeg, err := parseTrailer(lines, layout, source)
	if err != nil {
		report(pc, &Diagnostic{Line: headerLine, Err: err})
		return
	}

	if m, _ := classifySegment(lines.At(layout.header), source); m != MarkerNone {
		report(pc, &Diagnostic{Line: headerLine, Err: ErrMalformedBlock, Msg: fmt.Sprintf("header row is marked %s", m)})
		return
	}

	var markers []RowMarker
	var stripped []text.Segment
	var starts []int
	annotated := spec != nil
	for i := layout.header + 2; i < layout.end; i++ {
		marker, seg := classifySegment(lines.At(i), source)
		if len(markers) == 0 && marker != MarkerNone {
			report(pc, &Diagnostic{
				Line: lineOf(source, seg.Start),
				Err:  ErrMalformedBlock,
				Msg:  fmt.Sprintf("first row is marked %s", marker),
			})
			return
		}
		annotated = annotated || marker != MarkerNone
		markers = append(markers, marker)
		stripped = append(stripped, seg)
		starts = append(starts, seg.Start)
	}
	if !annotated {
		return
	}

	original := lines.Sliced(0, lines.Len())
	for i, seg := range stripped {
		lines.Set(layout.header+2+i, seg)
	}
	lines.SetSliced(0, layout.end)

	table := s.renderTable(node, reader, pc)
	if table == nil || countBodyRows(table) != len(markers) {
		if table == nil {
			lines.Clear()
			lines.AppendAll(original)
		}
		report(pc, &Diagnostic{Line: headerLine, Err: ErrMalformedBlock, Msg: "rows do not form a table"})
		return
	}

	joins, embeds := mergeTable(table, markers, starts, source)
	rec := &tableRecord{
		joins:  joins,
		embeds: embeds,
		spec:   spec,
		line:   headerLine,
	}
	if spec != nil && spec.ID != "" {
		pc.IDs().Put([]byte(spec.ID))
	}
	if spec != nil && spec.HasCaption {
		rec.caption = NewTableCaption()
		rec.caption.Lines().Append(captionSeg)
		table.InsertBefore(table, table.FirstChild(), rec.caption)
	}
	addTableRecord(pc, table, rec)
}

// parseTrailer parses the attribute block, if any, and returns the source
// segment of its caption.
func parseTrailer(lines *text.Segments, l blockLayout, source []byte) (*AttributeSpec, text.Segment, error) {
	var captionSeg text.Segment
	if l.attr < 0 {
		return nil, captionSeg, nil
	}
	attrSeg := lines.At(l.attr)
	spec, off, err := ParseAttributeSpec(string(attrSeg.Value(source)))
	if err != nil {
		return nil, captionSeg, err
	}
	if l.caption >= 0 {
		if spec.HasCaption {
			return nil, captionSeg, fmt.Errorf("%w: caption given twice", ErrMalformedBlock)
		}
		seg := lines.At(l.caption)
		captionSeg = seg.TrimLeftSpace(source)
		captionSeg = captionSeg.TrimRightSpace(source)
		spec.Caption = UnescapePipes(string(captionSeg.Value(source)))
		spec.HasCaption = spec.Caption != ""
		return spec, captionSeg, nil
	}
	if spec.HasCaption {
		captionSeg = attrSeg.WithStart(attrSeg.Start + off)
		captionSeg = captionSeg.TrimRightSpace(source)
	}
	return spec, captionSeg, nil
}

// renderTable runs the stock table transformer and returns the table it
// produced, if any. The table is inserted right after the paragraph, and the
// paragraph is removed when the table consumed all of its lines.
func (s *scanner) renderTable(node *gast.Paragraph, reader text.Reader, pc parser.Context) *extast.Table {
	parent := node.Parent()
	next := node.NextSibling()
	s.tables.Transform(node, reader, pc)

	var produced gast.Node
	switch {
	case node.Parent() != nil:
		produced = node.NextSibling()
	case next != nil:
		produced = next.PreviousSibling()
	default:
		produced = parent.LastChild()
	}
	if produced == next {
		return nil
	}
	table, _ := produced.(*extast.Table)
	return table
}

func countBodyRows(table *extast.Table) int {
	n := 0
	for c := table.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*extast.TableRow); ok {
			n++
		}
	}
	return n
}

var _ parser.ParagraphTransformer = (*scanner)(nil)
