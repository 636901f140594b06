package regexsyntax

// AssertionKind distinguishes the assertion forms.
type AssertionKind uint8

const (
	AssertionStart AssertionKind = iota
	AssertionEnd
	AssertionWord
	AssertionLookahead
	AssertionLookbehind
)

func (k AssertionKind) String() string {
	switch k {
	case AssertionStart:
		return "start"
	case AssertionEnd:
		return "end"
	case AssertionWord:
		return "word"
	case AssertionLookahead:
		return "lookahead"
	case AssertionLookbehind:
		return "lookbehind"
	}
	return "unknown"
}

// CharacterSetKind distinguishes ., \d, \s, \w and \p{...}.
type CharacterSetKind uint8

const (
	CharacterSetAny CharacterSetKind = iota
	CharacterSetDigit
	CharacterSetSpace
	CharacterSetWord
	CharacterSetProperty
)

func (k CharacterSetKind) String() string {
	switch k {
	case CharacterSetAny:
		return "any"
	case CharacterSetDigit:
		return "digit"
	case CharacterSetSpace:
		return "space"
	case CharacterSetWord:
		return "word"
	case CharacterSetProperty:
		return "property"
	}
	return "unknown"
}

// FlagSet is the decoded flags part of a literal.
// The zero value corresponds to no flags.
type FlagSet struct {
	Global     bool // g
	IgnoreCase bool // i
	Multiline  bool // m
	Unicode    bool // u
	Sticky     bool // y
	DotAll     bool // s
	HasIndices bool // d
}

// Handler receives the constructs recognized by a Validator, in source
// order. Offsets are UTF-16 code unit offsets into the validated source
// and every range is half-open.
//
// When a pattern without the u flag declares a named group, the pattern is
// read a second time and the events from OnPatternEnter onwards are
// delivered again.
type Handler interface {
	OnLiteralEnter(start int)
	OnLiteralLeave(start, end int)
	OnFlags(start, end int, flags FlagSet)
	OnPatternEnter(start int)
	OnPatternLeave(start, end int)
	OnDisjunctionEnter(start int)
	OnDisjunctionLeave(start, end int)
	OnAlternativeEnter(start, index int)
	OnAlternativeLeave(start, end, index int)
	OnGroupEnter(start int)
	OnGroupLeave(start, end int)
	// name is empty for unnamed groups.
	OnCapturingGroupEnter(start int, name string)
	OnCapturingGroupLeave(start, end int, name string)
	OnQuantifier(start, end, min, max int, greedy bool)
	OnLookaroundAssertionEnter(start int, kind AssertionKind, negate bool)
	OnLookaroundAssertionLeave(start, end int, kind AssertionKind, negate bool)
	OnEdgeAssertion(start, end int, kind AssertionKind)
	OnWordBoundaryAssertion(start, end int, kind AssertionKind, negate bool)
	OnAnyCharacterSet(start, end int, kind CharacterSetKind)
	OnEscapeCharacterSet(start, end int, kind CharacterSetKind, negate bool)
	// value is empty for lone property names such as \p{ASCII}.
	OnUnicodePropertyCharacterSet(start, end int, kind CharacterSetKind, key, value string, negate bool)
	OnCharacter(start, end int, value rune)
	// ref is zero for named references.
	OnBackreference(start, end int, ref int, name string)
	OnCharacterClassEnter(start int, negate bool)
	OnCharacterClassLeave(start, end int, negate bool)
	OnCharacterClassRange(start, end int, min, max rune)
}

// NopHandler implements Handler by ignoring every event.
// Embed it to override only the events of interest.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) OnLiteralEnter(int)                                                             {}
func (NopHandler) OnLiteralLeave(int, int)                                                        {}
func (NopHandler) OnFlags(int, int, FlagSet)                                                      {}
func (NopHandler) OnPatternEnter(int)                                                             {}
func (NopHandler) OnPatternLeave(int, int)                                                        {}
func (NopHandler) OnDisjunctionEnter(int)                                                         {}
func (NopHandler) OnDisjunctionLeave(int, int)                                                    {}
func (NopHandler) OnAlternativeEnter(int, int)                                                    {}
func (NopHandler) OnAlternativeLeave(int, int, int)                                               {}
func (NopHandler) OnGroupEnter(int)                                                               {}
func (NopHandler) OnGroupLeave(int, int)                                                          {}
func (NopHandler) OnCapturingGroupEnter(int, string)                                              {}
func (NopHandler) OnCapturingGroupLeave(int, int, string)                                         {}
func (NopHandler) OnQuantifier(int, int, int, int, bool)                                          {}
func (NopHandler) OnLookaroundAssertionEnter(int, AssertionKind, bool)                            {}
func (NopHandler) OnLookaroundAssertionLeave(int, int, AssertionKind, bool)                       {}
func (NopHandler) OnEdgeAssertion(int, int, AssertionKind)                                        {}
func (NopHandler) OnWordBoundaryAssertion(int, int, AssertionKind, bool)                          {}
func (NopHandler) OnAnyCharacterSet(int, int, CharacterSetKind)                                   {}
func (NopHandler) OnEscapeCharacterSet(int, int, CharacterSetKind, bool)                          {}
func (NopHandler) OnCharacter(int, int, rune)                                                     {}
func (NopHandler) OnBackreference(int, int, int, string)                                          {}
func (NopHandler) OnCharacterClassEnter(int, bool)                                                {}
func (NopHandler) OnCharacterClassLeave(int, int, bool)                                           {}
func (NopHandler) OnCharacterClassRange(int, int, rune, rune)                                     {}
func (NopHandler) OnUnicodePropertyCharacterSet(int, int, CharacterSetKind, string, string, bool) {}
