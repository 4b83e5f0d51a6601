package minifier

import (
	"strings"
)

type scanState int

const (
	stateCode scanState = iota
	stateLineComment
	stateBlockComment
	stateShortString
	stateLongString
)

// scanner walks Lua source one byte at a time, splitting it into code and
// literal segments and dropping comments along the way.
type scanner struct {
	src   string
	pos   int
	state scanState

	// level is the number of '=' in the long bracket that opened the
	// current block comment or long string.
	level int
	// quote is the delimiter of the current short string.
	quote byte
	// start is the offset where the current literal began.
	start int

	code     strings.Builder
	segments []segment
}

// stripLiteralAware removes comments while honoring string literals, so
// comment markers inside literals are left alone. A leading shebang line is
// kept verbatim.
func stripLiteralAware(content string) Source {
	s := &scanner{src: content}

	if strings.HasPrefix(content, "#!") {
		end := strings.IndexByte(content, '\n')
		if end == -1 {
			end = len(content)
		}
		s.emitLiteral(0, end)
		s.pos = end
	}

	for s.pos < len(s.src) {
		switch s.state {
		case stateCode:
			s.scanCode()
		case stateLineComment:
			s.scanLineComment()
		case stateBlockComment:
			s.scanBlockComment()
		case stateShortString:
			s.scanShortString()
		case stateLongString:
			s.scanLongString()
		}
	}

	// An opener on the last byte leaves a literal that never started scanning
	if s.state == stateShortString || s.state == stateLongString {
		s.endLiteral()
	}
	s.flushCode()

	return Source{segments: dropBlankLines(s.segments)}
}

func (s *scanner) scanCode() {
	ch := s.src[s.pos]

	switch {
	case strings.HasPrefix(s.src[s.pos:], lineCommentMarker):
		s.pos += len(lineCommentMarker)
		if level, ok := longBracketAt(s.src, s.pos); ok {
			s.level = level
			s.pos += level + 2
			s.state = stateBlockComment
		} else {
			s.state = stateLineComment
		}

	case ch == '"' || ch == '\'':
		s.flushCode()
		s.start = s.pos
		s.quote = ch
		s.pos++
		s.state = stateShortString

	case ch == '[':
		level, ok := longBracketAt(s.src, s.pos)
		if !ok {
			s.code.WriteByte(ch)
			s.pos++
			return
		}
		s.flushCode()
		s.start = s.pos
		s.level = level
		s.pos += level + 2
		s.state = stateLongString

	default:
		s.code.WriteByte(ch)
		s.pos++
	}
}

// scanLineComment skips to the end of the line. The line break itself
// belongs to the code that follows.
func (s *scanner) scanLineComment() {
	if idx := strings.IndexByte(s.src[s.pos:], '\n'); idx != -1 {
		s.pos += idx
	} else {
		s.pos = len(s.src)
	}
	s.state = stateCode
}

// scanBlockComment skips to the matching closer. An unterminated block
// comment runs to the end of the input.
func (s *scanner) scanBlockComment() {
	closer := longBracketCloser(s.level)
	idx := strings.Index(s.src[s.pos:], closer)
	if idx == -1 {
		s.pos = len(s.src)
		s.state = stateCode
		return
	}

	// The comment still separates the tokens around it.
	if strings.Contains(s.src[s.pos:s.pos+idx], "\n") {
		s.code.WriteByte('\n')
	} else {
		s.code.WriteByte(' ')
	}

	s.pos += idx + len(closer)
	s.state = stateCode
}

// scanShortString consumes a quoted string. Backslash escapes the next byte,
// or a whole line break (\n, \r, \r\n or \n\r). An unescaped line break ends
// an unterminated string.
func (s *scanner) scanShortString() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 1 + lineBreakLen(s.src, s.pos+1)
		case s.quote:
			s.pos++
			s.endLiteral()
			return
		case '\n':
			s.endLiteral()
			return
		default:
			s.pos++
		}
	}
	s.pos = len(s.src)
	s.endLiteral()
}

func (s *scanner) scanLongString() {
	closer := longBracketCloser(s.level)
	if idx := strings.Index(s.src[s.pos:], closer); idx != -1 {
		s.pos += idx + len(closer)
	} else {
		s.pos = len(s.src)
	}
	s.endLiteral()
}

func (s *scanner) endLiteral() {
	s.emitLiteral(s.start, s.pos)
	s.state = stateCode
}

func (s *scanner) emitLiteral(start, end int) {
	s.segments = append(s.segments, segment{kind: literalSegment, text: s.src[start:end]})
}

func (s *scanner) flushCode() {
	if s.code.Len() == 0 {
		return
	}
	s.segments = append(s.segments, segment{kind: codeSegment, text: s.code.String()})
	s.code.Reset()
}

// longBracketAt reports whether an opening long bracket ([[, [=[, [==[, ...)
// starts at offset i, and returns its level.
func longBracketAt(src string, i int) (int, bool) {
	if i >= len(src) || src[i] != '[' {
		return 0, false
	}
	level := 0
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '=':
			level++
		case '[':
			return level, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// lineBreakLen returns the length of the line break at offset i, treating
// \r\n and \n\r as one break. Any other byte counts as 1.
func lineBreakLen(src string, i int) int {
	if i >= len(src) {
		return 1
	}
	ch := src[i]
	if (ch == '\n' || ch == '\r') && i+1 < len(src) {
		if next := src[i+1]; (next == '\n' || next == '\r') && next != ch {
			return 2
		}
	}
	return 1
}

func longBracketCloser(level int) string {
	return "]" + strings.Repeat("=", level) + "]"
}
