// Package regexsyntax validates and parses ECMAScript regular expression
// literals into syntax trees.
//
// It implements the RegExp grammar from ES5 up to ES2022, including the
// Annex B web-compatibility grammar, the u flag, named groups, lookbehind
// assertions and Unicode property escapes. It does not compile or match
// regular expressions.
//
// Offsets in the tree and in errors are UTF-16 code unit indices, as in
// ECMAScript. For ASCII sources they equal byte offsets.
package regexsyntax

// ParseRegExpLiteral parses a literal such as /ab+c/gi.
func ParseRegExpLiteral(source string, opts Options) (*RegExpLiteral, error) {
	return NewParser(opts).ParseLiteral(source)
}

// ValidateRegExpLiteral reports the first syntax error in a literal, if any.
func ValidateRegExpLiteral(source string, opts Options) error {
	return NewValidator(opts, nil).ValidateLiteral(source)
}

// MustParseRegExpLiteral is like [ParseRegExpLiteral] but panics if the
// literal is invalid. It simplifies initialization of tables of known-good
// literals.
func MustParseRegExpLiteral(source string, opts Options) *RegExpLiteral {
	literal, err := ParseRegExpLiteral(source, opts)
	if err != nil {
		panic("regexsyntax: MustParseRegExpLiteral: " + err.Error())
	}
	return literal
}
