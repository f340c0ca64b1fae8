package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdtables/internal/compact"
)

const compactMarkdown = `# Kennel

| name | notes        |
|------|--------------|
| Aria | loves        |
|      | to play      |^
| #sched |+
{ #dogs .wide } Dogs \| 2024

| time | task |
|------|------|
| 9am  | feed |
{ #sched } Schedule
`

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         GoldmarkOptions
		input        string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:  "standalone document",
			input: "# Title\n\nText.",
			wantContains: []string{
				"<!DOCTYPE html>",
				`<h1 id="title">Title</h1>`,
				"<p>Text.</p>",
			},
		},
		{
			name:  "compact table",
			input: compactMarkdown,
			wantContains: []string{
				`<table id="dogs" class="wide">`,
				"<caption>Dogs | 2024</caption>",
				"<td>loves to play</td>",
				`<td colspan="2" class="compact-container"><table id="sched">`,
			},
			wantExcludes: []string{"|^", "|+", "{ #dogs"},
		},
		{
			name:         "merged cells with line break",
			opts:         GoldmarkOptions{AutoInsertBreak: true},
			input:        compactMarkdown,
			wantContains: []string{"<td>loves<br />to play</td>"},
		},
		{
			name:         "strikethrough from GFM",
			input:        "~~old~~",
			wantContains: []string{"<del>old</del>"},
		},
		{
			name:         "footnote",
			input:        "See[^1].\n\n[^1]: note",
			wantContains: []string{`class="footnote-ref"`},
		},
		{
			name:         "highlighted code uses classes",
			opts:         GoldmarkOptions{HighlightStyle: "github"},
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
		},
		{
			name:         "raw HTML is not rendered",
			input:        "<script>alert(1)</script>",
			wantExcludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := NewGoldmarkConverter(tt.opts)
			doc, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(doc.HTML, want) {
					t.Errorf("ToHTML() missing %q:\n%s", want, doc.HTML)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(doc.HTML, exclude) {
					t.Errorf("ToHTML() should not contain %q:\n%s", exclude, doc.HTML)
				}
			}
		})
	}
}

func TestGoldmarkConverter_Diagnostics(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter(GoldmarkOptions{})
	doc, err := conv.ToHTML(context.Background(), "| a |\n|---|\n| 1 |\n| #missing |+\n")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if len(doc.Diagnostics) != 1 || !errors.Is(doc.Diagnostics[0], compact.ErrUnresolvedReference) {
		t.Errorf("Diagnostics = %v, want one ErrUnresolvedReference", doc.Diagnostics)
	}
	if !strings.Contains(doc.HTML, `class="compact-embed-error"`) {
		t.Errorf("ToHTML() missing diagnostic cell:\n%s", doc.HTML)
	}

	// Diagnostics do not leak between conversions.
	doc, err = conv.ToHTML(context.Background(), "plain")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if len(doc.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none", doc.Diagnostics)
	}
}

func TestGoldmarkConverter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGoldmarkConverter(GoldmarkOptions{}).ToHTML(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS("github")
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() should style .chroma:\n%s", css)
	}

	if _, err := HighlightCSS("no-such-style"); !errors.Is(err, ErrUnknownHighlightStyle) {
		t.Errorf("HighlightCSS(unknown) error = %v, want ErrUnknownHighlightStyle", err)
	}
}
