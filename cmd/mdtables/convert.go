package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdtables"
	"github.com/alnah/go-mdtables/internal/config"
)

// Sentinel errors for CLI usage.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
)

// stdinName labels diagnostics for Markdown read from stdin.
const stdinName = "<stdin>"

// maxStdinSize caps Markdown read from stdin.
const maxStdinSize = 32 << 20

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	css       string
	format    string
	page      *mdtables.PageSettings
	tableList *mdtables.TableList
}

// input builds the conversion input for one document.
func (p *conversionParams) input(markdown, sourceDir string) mdtables.Input {
	return mdtables.Input{
		Markdown:  markdown,
		SourceDir: sourceDir,
		CSS:       p.css,
		Page:      p.page,
		TableList: p.tableList,
		HTMLOnly:  p.format == config.FormatHTML,
	}
}

// output selects the bytes written for a result.
func (p *conversionParams) output(res *mdtables.ConvertResult) []byte {
	if p.format == config.FormatPDF {
		return res.PDF
	}
	return res.HTML
}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrUsage, flags.timeout)
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI wins over the config file
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	params, err := buildParams(flags, cfg)
	if err != nil {
		return err
	}
	opts := buildConverterOptions(flags, cfg)

	if useStdin(positionalArgs, cfg, env) {
		return convertStdin(ctx, env, params, opts, flags.common.quiet)
	}

	inputs, err := resolveInputs(positionalArgs, cfg)
	if err != nil {
		return err
	}
	files, err := discoverFiles(inputs, resolveOutputDir(flags.output, cfg), params.format)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	poolSize := min(mdtables.ResolvePoolSize(flags.workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := env.NewPool(poolSize, opts...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, params)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// mergeFlags copies the flags given on the command line into cfg.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	set := flags.changed
	if set["output"] && !isOutputFile(flags.output, config.FormatHTML) && !isOutputFile(flags.output, config.FormatPDF) {
		cfg.Output.DefaultDir = flags.output
	}
	if set["format"] {
		cfg.Output.Format = flags.format
	}
	if set["auto-break"] {
		cfg.Tables.AutoInsertBreak = flags.tables.autoBreak
	}
	if set["strict"] {
		cfg.Tables.Strict = flags.tables.strict
	}
	if set["list-tables"] {
		cfg.Tables.ListOfTables = flags.tables.listTables
	}
	if set["list-title"] {
		cfg.Tables.ListTitle = flags.tables.listTitle
		cfg.Tables.ListOfTables = true
	}
	if set["page-size"] {
		cfg.Page.Size = flags.page.size
	}
	if set["orientation"] {
		cfg.Page.Orientation = flags.page.orientation
	}
	if set["margin"] {
		cfg.Page.Margin = flags.page.margin
	}
	if set["style"] {
		cfg.CSS.Style = flags.style.style
	}
	if set["asset-path"] {
		cfg.Assets.BasePath = flags.style.assetPath
	}
}

// buildParams derives the per-document parameters from the merged config.
func buildParams(flags *convertFlags, cfg *config.Config) (*conversionParams, error) {
	params := &conversionParams{format: strings.ToLower(cfg.Output.Format)}
	if params.format == "" {
		params.format = config.FormatHTML
	}

	if flags.style.css != "" {
		css, err := os.ReadFile(flags.style.css) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		params.css = string(css)
	}

	if params.format == config.FormatPDF {
		page := buildPageSettings(cfg)
		if err := page.Validate(); err != nil {
			return nil, err
		}
		params.page = page
	}

	if cfg.Tables.ListOfTables {
		params.tableList = &mdtables.TableList{Title: cfg.Tables.ListTitle}
	}
	return params, nil
}

// buildPageSettings fills unset page fields with defaults.
func buildPageSettings(cfg *config.Config) *mdtables.PageSettings {
	page := mdtables.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		page.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}
	return page
}

// buildConverterOptions maps the merged config to converter options.
func buildConverterOptions(flags *convertFlags, cfg *config.Config) []mdtables.Option {
	opts := []mdtables.Option{
		mdtables.WithAutoInsertBreak(cfg.Tables.AutoInsertBreak),
		mdtables.WithStrictTables(cfg.Tables.Strict),
	}
	if flags.style.noStyle {
		opts = append(opts, mdtables.WithoutStyle())
	} else if cfg.CSS.Style != "" {
		opts = append(opts, mdtables.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, mdtables.WithAssetPath(cfg.Assets.BasePath))
	}
	if flags.style.highlight != "" {
		opts = append(opts, mdtables.WithHighlighting(flags.style.highlight))
	}
	if flags.timeout > 0 {
		opts = append(opts, mdtables.WithTimeout(flags.timeout))
	}
	return opts
}

// useStdin reports whether Markdown comes from stdin: input "-", or no
// input at all while stdin is piped.
func useStdin(args []string, cfg *config.Config, env *Environment) bool {
	if len(args) == 1 && args[0] == "-" {
		return true
	}
	return len(args) == 0 && cfg.Input.DefaultDir == "" && !env.StdinIsTerminal()
}

// convertStdin converts Markdown read from stdin and writes the result to stdout.
func convertStdin(ctx context.Context, env *Environment, params *conversionParams, opts []mdtables.Option, quiet bool) error {
	content, err := io.ReadAll(io.LimitReader(env.Stdin, maxStdinSize+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	if len(content) > maxStdinSize {
		return fmt.Errorf("%w: stdin exceeds %d bytes", ErrReadMarkdown, maxStdinSize)
	}

	pool := env.NewPool(1, opts...)
	defer pool.Close()
	conv, err := pool.Acquire()
	if err != nil {
		return err
	}
	defer pool.Release(conv)

	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	res, err := conv.Convert(ctx, params.input(string(content), wd))
	if err != nil {
		return err
	}
	if !quiet {
		printWarnings(env, stdinName, res.Diagnostics)
	}
	if _, err := env.Stdout.Write(params.output(res)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resolveInputs returns the positional inputs, or the configured default
// directory when none is given.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, ErrNoInput
}

// resolveOutputDir returns the output flag, or the configured default
// directory when the flag is empty.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
