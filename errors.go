package mdtables

import (
	"errors"

	"github.com/alnah/go-mdtables/internal/assets"
	"github.com/alnah/go-mdtables/internal/compact"
	"github.com/alnah/go-mdtables/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound         = assets.ErrStyleNotFound
	ErrInvalidAssetPath      = errors.New("invalid asset path")
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlightStyle

	// ErrTableDiagnostics is returned in strict mode when an embed could not
	// be resolved. It wraps every offending diagnostic.
	ErrTableDiagnostics = errors.New("compact table errors")
)

// Compact table errors. Diagnostics returned in ConvertResult wrap one of
// these.
var (
	ErrMalformedBlock      = compact.ErrMalformedBlock
	ErrUnresolvedReference = compact.ErrUnresolvedReference
	ErrDuplicateEmbed      = compact.ErrDuplicateEmbed
	ErrCyclicEmbed         = compact.ErrCyclicEmbed
	ErrDuplicateID         = compact.ErrDuplicateID
)

// Diagnostic attributes a compact table error to a source line.
type Diagnostic = compact.Diagnostic
