package minifier

import (
	"strings"
)

const (
	lineCommentMarker  = "--"
	blockCommentOpener = "--[["
	blockCommentCloser = "]]"
)

// Strip removes comments from content using the given policy and drops
// lines that are blank once their comments are gone.
func Strip(content string, policy Policy) Source {
	if policy == Faithful {
		return stripLines(content)
	}
	return stripLiteralAware(content)
}

// lineState is carried from one line to the next by stripLines
type lineState struct {
	insideBlockComment bool
}

// stripLines is the line-oriented stripper. Markers are found by plain
// substring search, so a marker inside a string literal is treated as a real
// comment.
func stripLines(content string) Source {
	var kept []string
	state := lineState{}

	for _, line := range strings.Split(content, "\n") {
		var keep bool
		line, state, keep = stripLine(line, state)
		if keep {
			kept = append(kept, line)
		}
	}

	return codeSource(strings.Join(kept, "\n"))
}

// stripLine applies one step of the line stripper and reports whether the
// remaining text should be kept.
func stripLine(line string, state lineState) (string, lineState, bool) {
	if state.insideBlockComment {
		idx := strings.Index(line, blockCommentCloser)
		if idx == -1 {
			return "", state, false
		}
		line = line[idx+len(blockCommentCloser):]
		state.insideBlockComment = false
	}

	if start := strings.Index(line, blockCommentOpener); start != -1 {
		if end := strings.Index(line[start:], blockCommentCloser); end != -1 {
			line = line[:start] + line[start+end+len(blockCommentCloser):]
		} else {
			line = line[:start]
			state.insideBlockComment = true
		}
	}

	if !state.insideBlockComment {
		if idx := strings.Index(line, lineCommentMarker); idx != -1 {
			line = line[:idx]
		}
	}

	return line, state, !isBlank(line)
}
