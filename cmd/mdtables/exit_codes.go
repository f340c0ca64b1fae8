package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdtables"
	"github.com/alnah/go-mdtables/internal/config"
)

// Exit codes for the mdtables CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitTables  = 5 // Table errors in strict mode
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, mdtables.ErrTableDiagnostics) {
		return ExitTables
	}

	if errors.Is(err, mdtables.ErrBrowserConnect) ||
		errors.Is(err, mdtables.ErrPageCreate) ||
		errors.Is(err, mdtables.ErrPageLoad) ||
		errors.Is(err, mdtables.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdtables.ErrEmptyMarkdown) ||
		errors.Is(err, mdtables.ErrInvalidPageSize) ||
		errors.Is(err, mdtables.ErrInvalidOrientation) ||
		errors.Is(err, mdtables.ErrInvalidMargin) ||
		errors.Is(err, mdtables.ErrStyleNotFound) ||
		errors.Is(err, mdtables.ErrInvalidAssetPath) ||
		errors.Is(err, mdtables.ErrUnknownHighlightStyle) {
		return ExitUsage
	}

	return ExitGeneral
}
