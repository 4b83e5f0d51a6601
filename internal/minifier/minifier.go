package minifier

import (
	"fmt"
	"strings"
)

// Policy selects how comment markers inside string literals are treated
type Policy int

const (
	// LiteralAware skips comment markers that appear inside string
	// literals and leaves literal contents byte for byte.
	LiteralAware Policy = iota
	// Faithful scans each line for markers by plain substring search, so a
	// marker inside a literal is treated as a comment and literal
	// whitespace is collapsed like any other.
	Faithful
)

// String returns the config name of the policy
func (p Policy) String() string {
	switch p {
	case LiteralAware:
		return "literal"
	case Faithful:
		return "faithful"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name as used in config files and flags
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "literal", "literal-aware":
		return LiteralAware, nil
	case "faithful":
		return Faithful, nil
	default:
		return LiteralAware, fmt.Errorf("unknown mode %q (expected literal or faithful)", name)
	}
}

// Options configures a Minifier
type Options struct {
	Policy Policy
}

// Minifier removes comments and redundant whitespace from Lua source.
// It holds no state between calls and is safe for concurrent use.
type Minifier struct {
	opts Options
}

// New creates a Minifier with the given options
func New(opts Options) *Minifier {
	return &Minifier{opts: opts}
}

// Minify strips comments from content and normalizes its whitespace. It
// accepts any input, including empty text and unterminated comments.
func (m *Minifier) Minify(content string) string {
	return Normalize(Strip(content, m.opts.Policy))
}

// Minify minifies content with the literal-aware policy
func Minify(content string) string {
	return New(Options{}).Minify(content)
}
