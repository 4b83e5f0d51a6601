package minifier

import (
	"regexp"
	"strings"
)

// rule is one whitespace rewrite. Rules run in order and later rules rely on
// the output of earlier ones.
type rule struct {
	name  string
	apply func(string) string
}

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	semicolonSpace = regexp.MustCompile(`;\s+`)
	operatorSpace  = regexp.MustCompile(`[ \t]*([=+\-*/<>()])[ \t]*`)
	statementEnd   = regexp.MustCompile(`[;\n]\s*`)
)

var rules = []rule{
	{"collapse whitespace", collapseWhitespace},
	{"tighten semicolons", func(s string) string {
		return semicolonSpace.ReplaceAllString(s, ";")
	}},
	{"tighten operators", tightenOperators},
	{"break statements", breakStatements},
}

// Normalize collapses the whitespace of comment-free source and trims both
// ends. Literal segments are copied through untouched.
func Normalize(src Source) string {
	segs := src.segments

	var b strings.Builder
	for i, seg := range segs {
		if seg.kind != codeSegment {
			b.WriteString(seg.text)
			continue
		}

		text := seg.text
		for _, r := range rules {
			text = r.apply(text)
		}
		if i == 0 {
			text = strings.TrimLeftFunc(text, isSpace)
		}
		if i == len(segs)-1 {
			text = strings.TrimRightFunc(text, isSpace)
		}
		b.WriteString(text)
	}

	return b.String()
}

// collapseWhitespace turns each whitespace run into a single character: a
// line break if the run crossed a line, a space otherwise.
func collapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllStringFunc(s, func(run string) string {
		if strings.ContainsAny(run, "\n\r") {
			return "\n"
		}
		return " "
	})
}

// tightenOperators drops spaces around operators and parentheses. Line
// breaks are left for breakStatements. Two minus signs keep a space between
// them so they never read as a comment.
func tightenOperators(s string) string {
	matches := operatorSpace.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		op := s[m[2]:m[3]]

		b.WriteString(s[last:start])
		b.WriteString(op)
		if op == "-" && end > m[3] && end < len(s) && s[end] == '-' {
			b.WriteByte(' ')
		}
		last = end
	}
	b.WriteString(s[last:])

	return b.String()
}

// breakStatements leaves exactly one line break after every semicolon and
// every line break.
func breakStatements(s string) string {
	return statementEnd.ReplaceAllStringFunc(s, func(m string) string {
		if m[0] == ';' {
			return ";\n"
		}
		return "\n"
	})
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
