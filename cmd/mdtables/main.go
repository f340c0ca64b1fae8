package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdtables"
	"github.com/alnah/go-mdtables/internal/assets"
	"github.com/alnah/go-mdtables/internal/config"
	"github.com/alnah/go-mdtables/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(os.Args[1:], env)))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], env)
	stop()
	os.Exit(code)
}

// runMain runs the CLI and maps the outcome to an exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, mdtables.ErrTableDiagnostics):
		return hints.ForTableDiagnostics()
	case errors.Is(err, mdtables.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, mdtables.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		dir, dirErr := os.UserConfigDir()
		if dirErr != nil {
			return hints.ForConfigNotFound("")
		}
		return hints.ForConfigNotFound(filepath.Join(dir, "go-mdtables"))
	case errors.Is(err, mdtables.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	}
	return ""
}

// run dispatches to the requested command.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrUsage
	}

	switch args[0] {
	case "convert":
		return runConvertCmd(ctx, args[1:], env)
	case "styles":
		return runStyles(env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdtables %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(args[1:], env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

// maxprocsLogger reports the GOMAXPROCS adjustment in verbose mode only.
func maxprocsLogger(args []string, env *Environment) func(string, ...interface{}) {
	if !hasVerboseFlag(args) {
		return func(string, ...interface{}) {}
	}
	return func(format string, a ...interface{}) {
		fmt.Fprintf(env.Stderr, format+"\n", a...)
	}
}

func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
