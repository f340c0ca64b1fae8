package compact

import (
	"bytes"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// HTMLRenderer renders table captions and merged-cell line breaks. It also
// takes over the <table> element so that custom attributes from the
// attribute line reach the output.
type HTMLRenderer struct {
	html.Config
}

// NewHTMLRenderer returns a new HTMLRenderer.
func NewHTMLRenderer(opts ...html.Option) renderer.NodeRenderer {
	r := &HTMLRenderer{Config: html.NewConfig()}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

// RegisterFuncs implements renderer.NodeRenderer.RegisterFuncs.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(extast.KindTable, r.renderTable)
	reg.Register(KindTableCaption, r.renderTableCaption)
	reg.Register(KindCellBreak, r.renderCellBreak)
}

func (r *HTMLRenderer) renderTable(
	w util.BufWriter, source []byte, n gast.Node, entering bool) (gast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<table")
		if n.Attributes() != nil {
			renderTableAttributes(w, n)
		}
		_, _ = w.WriteString(">\n")
	} else {
		_, _ = w.WriteString("</table>\n")
	}
	return gast.WalkContinue, nil
}

// renderTableAttributes writes every attribute of a table except event
// handlers. Names are already restricted by the attribute line grammar.
func renderTableAttributes(w util.BufWriter, n gast.Node) {
	for _, attr := range n.Attributes() {
		if !tableAttributeAllowed(attr.Name) {
			continue
		}
		_ = w.WriteByte(' ')
		_, _ = w.Write(attr.Name)
		_, _ = w.WriteString(`="`)
		var value []byte
		switch v := attr.Value.(type) {
		case []byte:
			value = v
		case string:
			value = []byte(v)
		}
		_, _ = w.Write(util.EscapeHTML(value))
		_ = w.WriteByte('"')
	}
}

func tableAttributeAllowed(name []byte) bool {
	if extension.TableAttributeFilter.Contains(name) {
		return true
	}
	return len(name) > 0 && !bytes.HasPrefix(bytes.ToLower(name), []byte("on"))
}

func (r *HTMLRenderer) renderTableCaption(
	w util.BufWriter, source []byte, n gast.Node, entering bool) (gast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<caption")
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.GlobalAttributeFilter)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</caption>\n")
	}
	return gast.WalkContinue, nil
}

func (r *HTMLRenderer) renderCellBreak(
	w util.BufWriter, source []byte, n gast.Node, entering bool) (gast.WalkStatus, error) {
	if !entering {
		return gast.WalkContinue, nil
	}
	if r.XHTML {
		_, _ = w.WriteString("<br />")
	} else {
		_, _ = w.WriteString("<br>")
	}
	return gast.WalkContinue, nil
}
