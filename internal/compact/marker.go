package compact

import (
	"bytes"

	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// RowMarker classifies a physical table row by its trailing sentinel.
type RowMarker int

const (
	// MarkerNone is an ordinary row that starts a new logical row.
	MarkerNone RowMarker = iota
	// MarkerContinuation folds the row into the preceding logical row.
	MarkerContinuation
	// MarkerEmbed replaces the row with a spanning cell holding another element.
	MarkerEmbed
)

// Row sentinels, written immediately after the closing pipe.
const (
	ContinuationSentinel = '^'
	EmbedSentinel        = '+'
)

func (m RowMarker) String() string {
	switch m {
	case MarkerContinuation:
		return "continuation"
	case MarkerEmbed:
		return "embed"
	default:
		return "none"
	}
}

// ClassifyRow returns the marker of a physical row and the length of the row
// text without its sentinel run. Any '+' in the run wins over '^'.
func ClassifyRow(line []byte) (RowMarker, int) {
	line = util.TrimRightSpace(line)
	end := len(line)
	i := end
	for i > 0 && end-i < 2 && (line[i-1] == ContinuationSentinel || line[i-1] == EmbedSentinel) {
		i--
	}
	if i == end || i == 0 || line[i-1] != '|' {
		return MarkerNone, end
	}
	run := line[i:end]
	if bytes.IndexByte(run, EmbedSentinel) >= 0 {
		return MarkerEmbed, i
	}
	return MarkerContinuation, i
}

// classifySegment classifies a paragraph line and returns the segment with
// its sentinel run cut off.
func classifySegment(seg text.Segment, source []byte) (RowMarker, text.Segment) {
	seg = seg.TrimLeftSpace(source)
	marker, n := ClassifyRow(seg.Value(source))
	if marker == MarkerNone {
		return marker, seg
	}
	return marker, seg.WithStop(seg.Start + n)
}

// isDelimiterRow reports whether line looks like a table delimiter row
// (`|---|:--:|`). The table renderer makes the final decision.
func isDelimiterRow(line []byte) bool {
	line = util.TrimLeftSpace(util.TrimRightSpace(line))
	if len(line) == 0 || bytes.IndexByte(line, '-') < 0 {
		return false
	}
	for _, b := range line {
		if !(util.IsSpace(b) || b == '-' || b == '|' || b == ':') {
			return false
		}
	}
	return true
}

// isPipeRow reports whether line starts like a pipe-delimited row.
func isPipeRow(line []byte) bool {
	line = util.TrimLeftSpace(line)
	return len(line) > 0 && line[0] == '|'
}
