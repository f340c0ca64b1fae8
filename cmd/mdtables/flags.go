package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// tableFlags holds compact table flags.
type tableFlags struct {
	autoBreak  bool
	strict     bool
	listTables bool
	listTitle  string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// styleFlags holds styling flags.
type styleFlags struct {
	style     string // name or path
	css       string // extra CSS file
	assetPath string
	highlight string // chroma style
	noStyle   bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      string
	format      string
	workers     int
	timeout     time.Duration
	printConfig bool
	tables      tableFlags
	page        pageFlags
	style       styleFlags

	// changed records the flags given on the command line, so that only
	// those override the config file.
	changed map[string]bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

func addTableFlags(fs *flag.FlagSet, f *tableFlags) {
	fs.BoolVar(&f.autoBreak, "auto-break", false, "join merged cells with a line break")
	fs.BoolVar(&f.strict, "strict", false, "fail when an embed cannot be resolved")
	fs.BoolVar(&f.listTables, "list-tables", false, "insert a list of captioned tables")
	fs.StringVar(&f.listTitle, "list-title", "", "heading of the list of tables")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file applied after the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{changed: make(map[string]bool)}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, pdf")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")

	addCommonFlags(fs, &f.common)
	addTableFlags(fs, &f.tables)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)

	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}
