package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-mdtables/internal/assets"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtables <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files with compact tables to HTML or PDF")
	fmt.Fprintln(w, "  styles     List built-in styles")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdtables help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtables convert [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files or directories. With no input and piped stdin,")
	fmt.Fprintln(w, "or with input \"-\", read markdown from stdin and write to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: html, pdf (default: html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tables:")
	fmt.Fprintln(w, "      --auto-break          Join merged cells with a line break")
	fmt.Fprintln(w, "      --strict              Fail when an embed cannot be resolved")
	fmt.Fprintln(w, "      --list-tables         Insert a list of captioned tables")
	fmt.Fprintln(w, "      --list-title <s>      Heading of the list of tables")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (PDF):")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name or CSS file path")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file applied after the style")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles (styles/*.css)")
	fmt.Fprintln(w, "      --highlight <s>       Chroma style for code blocks (e.g., github)")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "styles":
		fmt.Fprintln(env.Stdout, "Usage: mdtables styles")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List built-in styles usable with --style.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdtables version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdtables help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return nil
}

// runStyles lists the built-in styles.
func runStyles(env *Environment) error {
	for _, name := range assets.StyleNames() {
		marker := ""
		if name == assets.DefaultStyle {
			marker = " (default)"
		}
		fmt.Fprintf(env.Stdout, "%s%s\n", name, marker)
	}
	return nil
}
