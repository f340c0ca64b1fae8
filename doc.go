// Package mdtables converts Markdown documents with compact tables to HTML
// and PDF.
//
// # Compact Tables
//
// Compact tables extend GitHub tables with three annotations:
//
//	| name | notes             |
//	|------|-------------------|
//	| Aria | loves to play and |
//	|      | begs for walks    |^
//	| #sched                   |+
//	{ #dogs .wide } Dogs \| 2024
//
// A row ending in `|^` continues the row above: cell contents are joined
// column by column. A row ending in `|+` embeds the element with the given
// id (here a table declared elsewhere with `{ #sched }`), moving it into a
// cell spanning every column. The line in braces after a table sets its id,
// classes and attributes, and the text after the closing brace becomes the
// table caption.
//
// Problems never stop a conversion. They are reported as diagnostics:
//
//	result, err := conv.Convert(ctx, mdtables.Input{Markdown: src, HTMLOnly: true})
//	for _, d := range result.Diagnostics {
//	    var diag *mdtables.Diagnostic
//	    if errors.As(d, &diag) {
//	        fmt.Printf("line %d: %v\n", diag.Line, diag.Err)
//	    }
//	}
//
// WithStrictTables turns unresolved embeds into a conversion error
// (ErrTableDiagnostics).
//
// # Quick Start
//
//	conv, err := mdtables.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdtables.Input{
//	    Markdown: src,
//	    HTMLOnly: true,
//	})
//
// Without HTMLOnly the HTML is also rendered to PDF with headless Chrome
// (go-rod), which downloads a managed Chromium on first run. Set
// ROD_BROWSER_BIN to use an installed browser and ROD_NO_SANDBOX=1 in
// containers.
//
// # Using the Extension Directly
//
// TableExtension plugs compact tables into any goldmark instance that
// enables extension.Table or extension.GFM. Pass a parser.Context to read
// the diagnostics back with TableDiagnostics.
//
// # Parallel Processing
//
// A Converter must not be shared between goroutines. ConverterPool hands
// out one converter per worker:
//
//	pool := mdtables.NewConverterPool(mdtables.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
package mdtables
