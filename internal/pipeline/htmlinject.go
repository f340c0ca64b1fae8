package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, after <body>, or at the
// start of the content, whichever is found first.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	if idx := strings.Index(strings.ToLower(htmlContent), "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}
	return insertAfterBody(htmlContent, styleBlock)
}

// sanitizeCSS escapes "</" so the CSS cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// TableListData configures the list of tables.
type TableListData struct {
	Title string // empty = no heading
}

// TableEntry is a table that can be linked from the list of tables.
type TableEntry struct {
	ID      string
	Caption string
}

// TableListInjector defines the contract for list-of-tables injection.
type TableListInjector interface {
	InjectTableList(ctx context.Context, htmlContent string, data *TableListData) (string, error)
}

// TableListInjection implements TableListInjector.
type TableListInjection struct{}

// NewTableListInjection creates a TableListInjection.
func NewTableListInjection() *TableListInjection {
	return &TableListInjection{}
}

// ListTables returns the tables of htmlContent that carry both an id and a
// caption, in document order. Tables embedded in other tables are included.
func ListTables(htmlContent string) ([]TableEntry, error) {
	doc, _, err := parseHTML(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	var entries []TableEntry
	walkElements(doc, func(n *html.Node) {
		if n.DataAtom != atom.Table {
			return
		}
		id := attrValue(n, "id")
		caption := firstChildElement(n, atom.Caption)
		if id == "" || caption == nil {
			return
		}
		entries = append(entries, TableEntry{ID: id, Caption: textContent(caption)})
	})
	return entries, nil
}

// InjectTableList injects a numbered list of captioned tables after <body>.
// A nil data or a document without captioned tables is returned unchanged.
func (t *TableListInjection) InjectTableList(ctx context.Context, htmlContent string, data *TableListData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entries, err := ListTables(htmlContent)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return htmlContent, nil
	}
	return insertAfterBody(htmlContent, renderTableList(entries, data.Title)), nil
}

// renderTableList builds the <nav> element listing entries.
func renderTableList(entries []TableEntry, title string) string {
	var sb strings.Builder
	sb.WriteString(`<nav class="table-list">`)
	if title != "" {
		sb.WriteString(`<h2 class="table-list-title">`)
		sb.WriteString(html.EscapeString(title))
		sb.WriteString(`</h2>`)
	}
	sb.WriteString(`<ol>`)
	for i, e := range entries {
		fmt.Fprintf(&sb, `<li><a href="#%s">Table %d. %s</a></li>`,
			html.EscapeString(e.ID), i+1, html.EscapeString(e.Caption))
	}
	sb.WriteString(`</ol></nav>`)
	return sb.String()
}
