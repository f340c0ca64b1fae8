package compact

import (
	"errors"
	"fmt"

	"github.com/yuin/goldmark/parser"
)

// Sentinel errors for table processing.
var (
	// ErrMalformedBlock indicates a table block whose annotations could not be
	// applied. The block is rendered as ordinary content.
	ErrMalformedBlock = errors.New("malformed compact table block")

	// ErrUnresolvedReference indicates an embed row referencing an id that
	// does not exist in the document.
	ErrUnresolvedReference = errors.New("unresolved embed reference")

	// ErrDuplicateEmbed indicates an id that was already consumed by an
	// earlier embed row.
	ErrDuplicateEmbed = errors.New("element already embedded")

	// ErrCyclicEmbed indicates an embed target that contains the embedding table.
	ErrCyclicEmbed = errors.New("embed would create a cycle")

	// ErrDuplicateID indicates an embed target id shared by several elements.
	ErrDuplicateID = errors.New("duplicate element id")
)

// Diagnostic attributes a table processing error to a source line.
type Diagnostic struct {
	Line int    // 1-based source line of the offending row or block
	Ref  string // referenced id, empty for scan-phase diagnostics
	Err  error  // one of the sentinel errors above
	Msg  string // optional detail
}

func (d *Diagnostic) Error() string {
	msg := d.Err.Error()
	if d.Ref != "" {
		msg = fmt.Sprintf("%s #%s", msg, d.Ref)
	}
	if d.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, d.Msg)
	}
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, msg)
	}
	return msg
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

var diagnosticsKey = parser.NewContextKey()

// Diagnostics returns every table diagnostic recorded while parsing with pc,
// in the order they were found.
func Diagnostics(pc parser.Context) []error {
	v := pc.Get(diagnosticsKey)
	if v == nil {
		return nil
	}
	return v.([]error)
}

func report(pc parser.Context, d *Diagnostic) {
	list := Diagnostics(pc)
	pc.Set(diagnosticsKey, append(list, d))
}

// lineOf converts a byte offset into a 1-based line number.
func lineOf(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	line := 1
	for _, b := range source[:offset] {
		if b == '\n' {
			line++
		}
	}
	return line
}
