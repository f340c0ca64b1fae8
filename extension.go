package mdtables

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-mdtables/internal/compact"
)

// TableExtension returns the compact table extension for use with a custom
// goldmark instance. It must be combined with extension.Table or
// extension.GFM:
//
//	md := goldmark.New(goldmark.WithExtensions(
//	    extension.GFM,
//	    mdtables.TableExtension(false),
//	))
//
// When autoInsertBreak is true, merged cells are joined with a line break.
func TableExtension(autoInsertBreak bool) goldmark.Extender {
	return compact.New(compact.WithAutoInsertBreak(autoInsertBreak))
}

// TableDiagnostics returns the compact table diagnostics recorded while
// converting with pc (passed through parser.WithContext). Each entry is a
// *Diagnostic.
func TableDiagnostics(pc parser.Context) []error {
	return compact.Diagnostics(pc)
}
