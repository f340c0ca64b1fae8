package compact

import (
	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// tableTransformer finishes annotated tables once inline parsing is done:
// separators in merged cells, attributes, then embeds.
type tableTransformer struct {
	autoInsertBreak bool
}

func (t *tableTransformer) separator() gast.Node {
	if t.autoInsertBreak {
		return NewCellBreak()
	}
	return gast.NewString([]byte(" "))
}

// Transform implements parser.ASTTransformer.
func (t *tableTransformer) Transform(doc *gast.Document, reader text.Reader, pc parser.Context) {
	recs := tableRecords(pc)
	if len(recs) == 0 {
		return
	}
	pc.Set(recordsKey, nil)
	source := reader.Source()

	var tables []*extast.Table
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		if table, ok := n.(*extast.Table); ok {
			if _, ok := recs[table]; ok {
				tables = append(tables, table)
			}
		}
		return gast.WalkContinue, nil
	})

	var requests []embedRequest
	for _, table := range tables {
		rec := recs[table]
		for _, j := range rec.joins {
			insertSeparators(j, source, t.separator)
		}
		applyAttributes(table, rec)
		requests = append(requests, rec.embeds...)
	}
	if len(requests) == 0 {
		return
	}

	r := newResolver(doc, source)
	for _, req := range requests {
		if d := r.resolve(req); d != nil {
			markFailed(req, d)
			report(pc, d)
		}
	}
}

var _ parser.ASTTransformer = (*tableTransformer)(nil)
