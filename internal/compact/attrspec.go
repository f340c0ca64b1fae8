package compact

import (
	"fmt"
	"regexp"
	"strings"
)

// Attr is a custom attribute declared as key="value".
type Attr struct {
	Name  string
	Value string
}

// AttributeSpec holds the attributes and caption declared after a table.
type AttributeSpec struct {
	ID         string
	Classes    []string
	Attrs      []Attr // declaration order
	Caption    string // escaped pipes already resolved
	HasCaption bool
}

// IsEmpty reports whether the spec carries nothing to apply.
func (s *AttributeSpec) IsEmpty() bool {
	return s == nil || (s.ID == "" && len(s.Classes) == 0 && len(s.Attrs) == 0 && !s.HasCaption)
}

var (
	attrBlockStart = regexp.MustCompile(`^\s*\{`)
	attrIDToken    = regexp.MustCompile(`^#([A-Za-z0-9_][\w\-:.]*)`)
	attrClassToken = regexp.MustCompile(`^\.([A-Za-z0-9_][\w\-]*)`)
	attrKeyToken   = regexp.MustCompile(`^([A-Za-z_:][\w\-:.]*)="([^"]*)"`)
)

// looksLikeAttributeBlock reports whether line opens an attribute block.
func looksLikeAttributeBlock(line []byte) bool {
	return attrBlockStart.Match(line)
}

// ParseAttributeSpec parses `{ #id .class key="value" } caption`.
// It returns the spec, the byte offset in line where the caption starts
// (len(line) when there is none) and an error wrapping ErrMalformedBlock.
func ParseAttributeSpec(line string) (*AttributeSpec, int, error) {
	loc := attrBlockStart.FindStringIndex(line)
	if loc == nil {
		return nil, 0, fmt.Errorf("%w: attribute block must start with '{'", ErrMalformedBlock)
	}
	pos := loc[1]
	spec := &AttributeSpec{}
	tokens := 0
	for {
		for pos < len(line) && isBlank(line[pos]) {
			pos++
		}
		if pos >= len(line) {
			return nil, 0, fmt.Errorf("%w: attribute block is missing '}'", ErrMalformedBlock)
		}
		if line[pos] == '}' {
			pos++
			break
		}
		rest := line[pos:]
		if m := attrIDToken.FindStringSubmatch(rest); m != nil {
			spec.ID = m[1]
			pos += len(m[0])
		} else if m := attrClassToken.FindStringSubmatch(rest); m != nil {
			spec.Classes = append(spec.Classes, m[1])
			pos += len(m[0])
		} else if m := attrKeyToken.FindStringSubmatch(rest); m != nil {
			spec.setAttr(m[1], m[2])
			pos += len(m[0])
		} else {
			return nil, 0, fmt.Errorf("%w: invalid attribute token %q", ErrMalformedBlock, firstField(rest))
		}
		if pos < len(line) && !isBlank(line[pos]) && line[pos] != '}' {
			return nil, 0, fmt.Errorf("%w: attribute tokens must be separated by spaces", ErrMalformedBlock)
		}
		tokens++
	}
	if tokens == 0 {
		return nil, 0, fmt.Errorf("%w: attribute block has no attributes", ErrMalformedBlock)
	}
	for pos < len(line) && isBlank(line[pos]) {
		pos++
	}
	if caption := strings.TrimRight(line[pos:], " \t\r\n"); caption != "" {
		spec.Caption = UnescapePipes(caption)
		spec.HasCaption = true
	}
	return spec, pos, nil
}

func (s *AttributeSpec) setAttr(name, value string) {
	switch name {
	case "id":
		s.ID = value
	case "class":
		s.Classes = append(s.Classes, strings.Fields(value)...)
	default:
		s.Attrs = append(s.Attrs, Attr{Name: name, Value: value})
	}
}

// UnescapePipes turns `\|` into a literal pipe.
func UnescapePipes(s string) string {
	return strings.ReplaceAll(s, `\|`, "|")
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}
