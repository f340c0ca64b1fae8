package compact

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Priorities relative to goldmark's table extension, whose paragraph
// transformer runs at 200, AST transformer at 0 and renderer at 500. The
// renderer with the lower priority wins a node kind.
const (
	scannerPriority     = 199
	transformerPriority = 100
	rendererPriority    = 499
)

// Option configures the extension.
type Option func(*config)

type config struct {
	autoInsertBreak bool
}

// WithAutoInsertBreak joins merged cell contents with a line break instead
// of a single space.
func WithAutoInsertBreak(v bool) Option {
	return func(c *config) {
		c.autoInsertBreak = v
	}
}

type compactTables struct {
	cfg config
}

// Extension is the compact table extension with default options.
var Extension = New()

// New returns the compact table extension. It must be combined with
// goldmark's table extension (extension.Table or extension.GFM), which
// parses the tables and renders rows and cells.
func New(opts ...Option) goldmark.Extender {
	e := &compactTables{}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *compactTables) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithParagraphTransformers(
			util.Prioritized(newScanner(), scannerPriority),
		),
		parser.WithASTTransformers(
			util.Prioritized(&tableTransformer{autoInsertBreak: e.cfg.autoInsertBreak}, transformerPriority),
		),
	)
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewHTMLRenderer(), rendererPriority),
	))
}
