package mdtables_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-mdtables"
)

func TestTableExtension(t *testing.T) {
	t.Parallel()

	md := goldmark.New(goldmark.WithExtensions(extension.GFM, mdtables.TableExtension(true)))

	src := "| a |\n|---|\n| x |\n| y |^\n| #nowhere |+\n"
	pc := parser.NewContext()
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf, parser.WithContext(pc)); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	if want := "<td>x<br>y</td>"; !strings.Contains(buf.String(), want) {
		t.Errorf("output missing %q:\n%s", want, buf.String())
	}

	diags := mdtables.TableDiagnostics(pc)
	if len(diags) != 1 || !errors.Is(diags[0], mdtables.ErrUnresolvedReference) {
		t.Errorf("TableDiagnostics() = %v, want one ErrUnresolvedReference", diags)
	}
}
