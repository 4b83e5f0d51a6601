package minifier

import "strings"

type segmentKind int

const (
	codeSegment segmentKind = iota
	literalSegment
)

// segment is a run of source text that is either rewritable code or a
// literal that must be copied through untouched.
type segment struct {
	kind segmentKind
	text string
}

// Source is comment-free source text produced by Strip. It remembers which
// spans are string literals so the normalizer can leave them alone.
type Source struct {
	segments []segment
}

// String returns the text of the source with all segments joined
func (s Source) String() string {
	var b strings.Builder
	for _, seg := range s.segments {
		b.WriteString(seg.text)
	}
	return b.String()
}

// Lines returns the source split on line breaks
func (s Source) Lines() []string {
	text := s.String()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func codeSource(text string) Source {
	if text == "" {
		return Source{}
	}
	return Source{segments: []segment{{kind: codeSegment, text: text}}}
}

// isBlank reports whether s has no non-whitespace characters
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// dropBlankLines removes whitespace-only lines from code segments. A line
// piece that touches a literal on the same line is kept, since it is part of
// a line that has content.
func dropBlankLines(segs []segment) []segment {
	out := make([]segment, 0, len(segs))
	for i, seg := range segs {
		if seg.kind != codeSegment {
			out = append(out, seg)
			continue
		}

		pieces := strings.Split(seg.text, "\n")
		last := len(pieces) - 1
		kept := pieces[:0]
		for j, piece := range pieces {
			ownsStart := j > 0 || i == 0
			ownsEnd := j < last || i == len(segs)-1
			if ownsStart && ownsEnd && isBlank(piece) {
				continue
			}
			kept = append(kept, piece)
		}

		if text := strings.Join(kept, "\n"); text != "" {
			out = append(out, segment{kind: codeSegment, text: text})
		}
	}
	return out
}
