package mdtables

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mdtables/internal/assets"
	"github.com/alnah/go-mdtables/internal/fileutil"
	"github.com/alnah/go-mdtables/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TableListInjector    = (*pipeline.TableListInjection)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// Converter orchestrates the Markdown to HTML and PDF conversion pipeline.
// Create with NewConverter, use Convert for conversion, and Close when done.
//
// A Converter may be used by one goroutine at a time. Use ConverterPool to
// convert in parallel.
type Converter struct {
	cfg               converterConfig
	styleLoader       assets.StyleLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector
	tableListInjector pipeline.TableListInjector
	pdfConverter      pdfConverter
}

// NewConverter creates a Converter. Compact tables are always enabled.
// Returns an error if the style or highlight style cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:               converterConfig{timeout: defaultTimeout},
		preprocessor:      &pipeline.CommonMarkPreprocessor{},
		cssInjector:       &pipeline.CSSInjection{},
		tableListInjector: pipeline.NewTableListInjection(),
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.styleLoader = resolver

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.GoldmarkOptions{
			AutoInsertBreak: c.cfg.autoInsertBreak,
			HighlightStyle:  c.cfg.highlightStyle,
		})
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing HTML,
// PDF and table diagnostics.
// If input.HTMLOnly is true, PDF generation is skipped.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	if c.cfg.strictTables {
		if err := blockingDiagnostics(doc.Diagnostics); err != nil {
			return nil, err
		}
	}
	htmlContent := doc.HTML

	if input.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	// Done after goldmark so that html.WithUnsafe() is not needed.
	htmlContent = pipeline.ConvertMarkPlaceholders(htmlContent)

	// Converter style first, user CSS last so it can override.
	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if input.TableList != nil {
		htmlContent, err = c.tableListInjector.InjectTableList(ctx, htmlContent, &pipeline.TableListData{
			Title: input.TableList.Title,
		})
		if err != nil {
			return nil, fmt.Errorf("injecting table list: %w", err)
		}
	}

	res := &ConvertResult{
		HTML:        []byte(htmlContent),
		Diagnostics: doc.Diagnostics,
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content and appends the highlight stylesheet.
func (c *Converter) resolveStyle() error {
	css, err := c.loadStyle()
	if err != nil {
		return err
	}
	if c.cfg.highlightStyle != "" {
		hl, err := pipeline.HighlightCSS(c.cfg.highlightStyle)
		if err != nil {
			return err
		}
		css += "\n" + hl
	}
	c.cfg.resolvedStyle = css
	return nil
}

func (c *Converter) loadStyle() (string, error) {
	if c.cfg.noStyle {
		return "", nil
	}
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyle
	}

	if fileutil.IsCSS(input) {
		return input, nil
	}
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	css, err := c.styleLoader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}

// validateInput checks that required fields are present and valid.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Page.Validate()
}

// blockingDiagnostics joins the diagnostics that fail a strict conversion.
// Malformed blocks are rendered as ordinary content and never block.
func blockingDiagnostics(diags []error) error {
	var blocking []error
	for _, d := range diags {
		if !errors.Is(d, ErrMalformedBlock) {
			blocking = append(blocking, d)
		}
	}
	if len(blocking) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTableDiagnostics, errors.Join(blocking...))
}
