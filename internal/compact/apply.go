package compact

import (
	"strings"

	extast "github.com/yuin/goldmark/extension/ast"
)

// applyAttributes sets the recorded id, classes and custom attributes on the
// table and keeps the caption as its first child.
func applyAttributes(table *extast.Table, rec *tableRecord) {
	spec := rec.spec
	if spec.IsEmpty() {
		return
	}
	if spec.ID != "" {
		table.SetAttributeString("id", []byte(spec.ID))
	}
	if len(spec.Classes) > 0 {
		table.SetAttributeString("class", []byte(strings.Join(spec.Classes, " ")))
	}
	for _, a := range spec.Attrs {
		table.SetAttributeString(a.Name, []byte(a.Value))
	}
	if rec.caption == nil || table.FirstChild() == rec.caption {
		return
	}
	if p := rec.caption.Parent(); p != nil {
		p.RemoveChild(p, rec.caption)
	}
	table.InsertBefore(table, table.FirstChild(), rec.caption)
}
