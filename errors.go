package regexsyntax

import (
	"fmt"
	"unicode/utf16"
)

// SyntaxError reports the first point at which a source failed to match the
// RegExp grammar.
type SyntaxError struct {
	// Source is the literal being checked, in /pattern/flags form.
	// It is empty when only flags were validated.
	Source string
	// Index is the UTF-16 code unit offset where recognition failed.
	Index   int
	Message string
}

func (e SyntaxError) Error() string {
	if e.Source == "" {
		return "Invalid regular expression: " + e.Message
	}
	return fmt.Sprintf("Invalid regular expression: %s: %s", e.Source, e.Message)
}

var _ error = (*SyntaxError)(nil)

// newSyntaxError wraps a bare pattern source in slashes so every message
// quotes a literal.
func newSyntaxError(src []uint16, uFlag bool, index int, message string) *SyntaxError {
	source := string(utf16.Decode(src))
	if source != "" && source[0] != '/' {
		source = "/" + source + "/"
		if uFlag {
			source += "u"
		}
	}
	return &SyntaxError{
		Source:  source,
		Index:   index,
		Message: message,
	}
}
