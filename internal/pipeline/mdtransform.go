package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They pass
// through goldmark unchanged and are turned into <mark> tags afterwards.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	trailingBlanks   = regexp.MustCompile(`[ \t]+\n`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor normalizes Markdown before conversion.
type CommonMarkPreprocessor struct{}

// preprocessSteps run in order. Line endings come first so that a row
// sentinel is never followed by a stray \r. No step adds or removes lines:
// table diagnostics report source line numbers.
var preprocessSteps = []func(string) string{
	normalizeLineEndings,
	trimTrailingBlanks,
	convertHighlights,
}

// PreprocessMarkdown applies every preprocessing step to content.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	for _, step := range preprocessSteps {
		if ctx.Err() != nil {
			return content
		}
		content = step(content)
	}
	return content
}

func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// trimTrailingBlanks drops spaces and tabs at line ends, except for a hard
// line break (two or more trailing spaces after text).
func trimTrailingBlanks(content string) string {
	return trailingBlanks.ReplaceAllStringFunc(content, func(m string) string {
		if strings.HasPrefix(m, "  ") && !strings.ContainsRune(m, '\t') {
			return m
		}
		return "\n"
	})
}

// convertHighlights transforms ==text== into placeholders.
func convertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// ConvertMarkPlaceholders turns highlight placeholders into <mark> tags once
// the HTML has been generated.
func ConvertMarkPlaceholders(content string) string {
	return strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	).Replace(content)
}
