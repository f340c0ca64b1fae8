// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The stages run in this order:
//   - Markdown preprocessing (line endings, ==highlight== syntax)
//   - Markdown to HTML conversion via goldmark, with GFM and compact tables
//   - Relative path rewriting for images and links
//   - CSS injection and the optional list of tables
//
// PDF generation is handled separately by the root mdtables package using
// headless Chrome (go-rod).
package pipeline
