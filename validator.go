package regexsyntax

import (
	"fmt"
	"unicode/utf16"
)

// classSetValue is returned by class atoms that denote a set of characters
// rather than a single one, such as \d or \p{L}.
const classSetValue rune = -1

var characterSetEscapes = [...]struct {
	letter rune
	kind   CharacterSetKind
	negate bool
}{
	{'d', CharacterSetDigit, false},
	{'D', CharacterSetDigit, true},
	{'s', CharacterSetSpace, false},
	{'S', CharacterSetSpace, true},
	{'w', CharacterSetWord, false},
	{'W', CharacterSetWord, true},
}

var controlEscapes = [...]rune{
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

// Validator checks RegExp literals, flags and patterns against the grammar
// of one ECMAScript edition and reports every recognized construct to its
// Handler.
//
// A Validator keeps the cursor state of the call in progress, so it must not
// be used by several goroutines at once. Construction is cheap.
type Validator struct {
	opts     Options
	features features
	handler  Handler

	r         reader
	errSource []uint16
	uFlag     bool
	nFlag     bool

	numCapturingParens int
	groupNames         map[string]struct{}
	backreferenceNames map[string]struct{}
}

// NewValidator returns a Validator reporting to handler.
// A nil handler is replaced with NopHandler.
func NewValidator(opts Options, handler Handler) *Validator {
	if handler == nil {
		handler = NopHandler{}
	}
	return &Validator{
		opts:               opts,
		features:           newFeatures(opts.version()),
		handler:            handler,
		groupNames:         map[string]struct{}{},
		backreferenceNames: map[string]struct{}{},
	}
}

func encodeSource(source string) []uint16 {
	return utf16.Encode([]rune(source))
}

// ValidateLiteral validates a whole literal such as /ab+c/gi.
func (v *Validator) ValidateLiteral(source string) error {
	src := encodeSource(source)
	return v.ValidateLiteralUTF16(src, 0, len(src))
}

// ValidateLiteralUTF16 validates the literal in src[start:end]. Offsets
// passed to the handler and reported in errors are indices into src.
func (v *Validator) ValidateLiteralUTF16(src []uint16, start, end int) error {
	v.errSource = src[start:end]
	v.uFlag = false
	v.nFlag = false
	v.r.reset(src, start, end, false)

	v.handler.OnLiteralEnter(start)
	if v.r.eat('/') {
		ok, err := v.eatRegExpBody()
		if err != nil {
			return err
		}
		if ok && v.r.eat('/') {
			flagStart := v.r.pos
			uFlag := false
			for _, c := range src[flagStart:end] {
				if c == 'u' {
					uFlag = true
					break
				}
			}
			if err := v.validateFlags(src, flagStart, end); err != nil {
				return err
			}
			if err := v.validatePattern(src, start+1, flagStart-1, uFlag); err != nil {
				return err
			}
			v.handler.OnLiteralLeave(start, end)
			return nil
		}
	}
	if start >= end {
		return v.raise("Empty")
	}
	return v.raise(fmt.Sprintf("Unexpected character '%s'", codePointString(v.r.cp1)))
}

// ValidateFlags validates the flags part of a literal, such as "gimsuy".
func (v *Validator) ValidateFlags(source string) error {
	src := encodeSource(source)
	return v.ValidateFlagsUTF16(src, 0, len(src))
}

// ValidateFlagsUTF16 validates the flags in src[start:end].
func (v *Validator) ValidateFlagsUTF16(src []uint16, start, end int) error {
	v.errSource = nil
	v.uFlag = false
	return v.validateFlags(src, start, end)
}

// ValidatePattern validates a pattern without the surrounding slashes.
// unicode selects the grammar used when the literal carries the u flag.
func (v *Validator) ValidatePattern(source string, unicode bool) error {
	src := encodeSource(source)
	return v.ValidatePatternUTF16(src, 0, len(src), unicode)
}

// ValidatePatternUTF16 validates the pattern in src[start:end].
func (v *Validator) ValidatePatternUTF16(src []uint16, start, end int, unicode bool) error {
	v.errSource = src[start:end]
	return v.validatePattern(src, start, end, unicode)
}

func (v *Validator) strict() bool {
	return v.opts.Strict || v.uFlag
}

func (v *Validator) raise(message string) error {
	return v.raiseAt(v.r.pos, message)
}

func (v *Validator) raiseAt(index int, message string) error {
	return newSyntaxError(v.errSource, v.uFlag, index, message)
}

func (v *Validator) validateFlags(src []uint16, start, end int) error {
	var flags FlagSet
	seen := map[rune]struct{}{}
	for i := start; i < end; i++ {
		c := rune(src[i])
		if _, dup := seen[c]; dup {
			return v.raiseAt(i, fmt.Sprintf("Duplicated flag '%s'", codePointString(c)))
		}
		seen[c] = struct{}{}

		switch {
		case c == 'g':
			flags.Global = true
		case c == 'i':
			flags.IgnoreCase = true
		case c == 'm':
			flags.Multiline = true
		case c == 'u' && v.features.unicodeFlag:
			flags.Unicode = true
		case c == 'y' && v.features.stickyFlag:
			flags.Sticky = true
		case c == 's' && v.features.dotAllFlag:
			flags.DotAll = true
		case c == 'd' && v.features.hasIndicesFlag:
			flags.HasIndices = true
		default:
			return v.raiseAt(i, fmt.Sprintf("Invalid flag '%s'", codePointString(c)))
		}
	}
	v.handler.OnFlags(start, end, flags)
	return nil
}

// validatePattern reads the pattern once. In the Annex B grammar it reads
// it a second time with named groups enabled when the first pass found a
// group name.
func (v *Validator) validatePattern(src []uint16, start, end int, uFlag bool) error {
	v.uFlag = uFlag && v.features.unicodeFlag
	v.nFlag = uFlag && v.features.namedGroups
	v.r.reset(src, start, end, v.uFlag)
	if err := v.consumePattern(); err != nil {
		return err
	}

	if !v.nFlag && v.features.namedGroups && len(v.groupNames) > 0 {
		v.nFlag = true
		v.r.rewind(start)
		return v.consumePattern()
	}
	return nil
}

// eatRegExpBody scans to the closing slash of a literal without
// interpreting the pattern.
func (v *Validator) eatRegExpBody() (bool, error) {
	start := v.r.pos
	inClass, escaped := false, false
Scan:
	for {
		cp := v.r.cp1
		if cp == eof || isLineTerminator(cp) {
			if inClass {
				return false, v.raise("Unterminated character class")
			}
			return false, v.raise("Unterminated regular expression")
		}
		switch {
		case escaped:
			escaped = false
		case cp == '\\':
			escaped = true
		case cp == '[':
			inClass = true
		case cp == ']':
			inClass = false
		case cp == '/' && !inClass, cp == '*' && v.r.pos == start:
			break Scan
		}
		v.r.advance()
	}
	return v.r.pos != start, nil
}

func (v *Validator) consumePattern() error {
	start := v.r.pos
	count, named := v.countCapturingParens()
	v.numCapturingParens = count
	// Strict grammar has no identity escape for \k, so named backreferences
	// must be enabled before the first pass.
	if named && v.strict() && v.features.namedGroups {
		v.nFlag = true
	}
	clear(v.groupNames)
	clear(v.backreferenceNames)

	v.handler.OnPatternEnter(start)
	if err := v.consumeDisjunction(); err != nil {
		return err
	}

	if cp := v.r.cp1; cp != eof {
		switch cp {
		case ')':
			return v.raise("Unmatched ')'")
		case '\\':
			return v.raise(`\ at end of pattern`)
		case ']', '}':
			return v.raise("Lone quantifier brackets")
		}
		return v.raise(fmt.Sprintf("Unexpected character '%s'", codePointString(cp)))
	}
	for name := range v.backreferenceNames {
		if _, ok := v.groupNames[name]; !ok {
			return v.raise("Invalid named capture referenced")
		}
	}
	v.handler.OnPatternLeave(start, v.r.pos)
	return nil
}

// countCapturingParens counts the capturing groups of the whole pattern
// ahead of the real pass so that \N can tell backreferences from escapes.
// It also reports whether any of them is named.
func (v *Validator) countCapturingParens() (int, bool) {
	start := v.r.pos
	inClass, escaped, named := false, false, false
	count := 0
	for cp := v.r.cp1; cp != eof; cp = v.r.cp1 {
		switch {
		case escaped:
			escaped = false
		case cp == '\\':
			escaped = true
		case cp == '[':
			inClass = true
		case cp == ']':
			inClass = false
		case cp == '(' && !inClass &&
			(v.r.cp2 != '?' || (v.r.cp3 == '<' && v.r.cp4 != '=' && v.r.cp4 != '!')):
			count++
			named = named || v.r.cp2 == '?'
		}
		v.r.advance()
	}
	v.r.rewind(start)
	return count, named
}

func (v *Validator) consumeDisjunction() error {
	start := v.r.pos
	v.handler.OnDisjunctionEnter(start)
	for i := 0; ; i++ {
		if err := v.consumeAlternative(i); err != nil {
			return err
		}
		if !v.r.eat('|') {
			break
		}
	}

	ok, err := v.consumeQuantifier(true)
	if err != nil {
		return err
	}
	if ok {
		return v.raise("Nothing to repeat")
	}
	if v.r.eat('{') {
		return v.raise("Lone quantifier brackets")
	}
	v.handler.OnDisjunctionLeave(start, v.r.pos)
	return nil
}

func (v *Validator) consumeAlternative(i int) error {
	start := v.r.pos
	v.handler.OnAlternativeEnter(start, i)
	for v.r.cp1 != eof {
		ok, err := v.consumeTerm()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	v.handler.OnAlternativeLeave(start, v.r.pos, i)
	return nil
}

func (v *Validator) consumeTerm() (bool, error) {
	if v.uFlag || v.strict() {
		ok, _, err := v.consumeAssertion()
		if err != nil || ok {
			return ok, err
		}
		ok, err = v.consumeAtom()
		if err != nil || !ok {
			return ok, err
		}
		return v.consumeOptionalQuantifier()
	}

	ok, quantifiable, err := v.consumeAssertion()
	if err != nil {
		return false, err
	}
	if ok {
		if quantifiable {
			return v.consumeOptionalQuantifier()
		}
		return true, nil
	}
	ok, err = v.consumeExtendedAtom()
	if err != nil || !ok {
		return ok, err
	}
	return v.consumeOptionalQuantifier()
}

func (v *Validator) consumeOptionalQuantifier() (bool, error) {
	if _, err := v.consumeQuantifier(false); err != nil {
		return false, err
	}
	return true, nil
}

// consumeAssertion reports whether an assertion was found and, for Annex B
// lookaheads, whether it may be quantified.
func (v *Validator) consumeAssertion() (bool, bool, error) {
	start := v.r.pos

	switch {
	case v.r.eat('^'):
		v.handler.OnEdgeAssertion(start, v.r.pos, AssertionStart)
		return true, false, nil
	case v.r.eat('$'):
		v.handler.OnEdgeAssertion(start, v.r.pos, AssertionEnd)
		return true, false, nil
	case v.r.eat2('\\', 'B'):
		v.handler.OnWordBoundaryAssertion(start, v.r.pos, AssertionWord, true)
		return true, false, nil
	case v.r.eat2('\\', 'b'):
		v.handler.OnWordBoundaryAssertion(start, v.r.pos, AssertionWord, false)
		return true, false, nil
	}

	if v.r.eat2('(', '?') {
		lookbehind := v.features.lookbehind && v.r.eat('<')
		positive := v.r.eat('=')
		negate := !positive && v.r.eat('!')
		if positive || negate {
			kind := AssertionLookahead
			if lookbehind {
				kind = AssertionLookbehind
			}
			v.handler.OnLookaroundAssertionEnter(start, kind, negate)
			if err := v.consumeDisjunction(); err != nil {
				return false, false, err
			}
			if !v.r.eat(')') {
				return false, false, v.raise("Unterminated group")
			}
			quantifiable := !lookbehind && !v.strict()
			v.handler.OnLookaroundAssertionLeave(start, v.r.pos, kind, negate)
			return true, quantifiable, nil
		}
		v.r.rewind(start)
	}
	return false, false, nil
}

// consumeQuantifier reads *, +, ?, {n}, {n,} or {n,m} with an optional lazy
// suffix. With noConsume the handler is not told about it.
func (v *Validator) consumeQuantifier(noConsume bool) (bool, error) {
	start := v.r.pos
	var min, max int

	switch {
	case v.r.eat('*'):
		min, max = 0, Infinity
	case v.r.eat('+'):
		min, max = 1, Infinity
	case v.r.eat('?'):
		min, max = 0, 1
	default:
		var ok bool
		var err error
		min, max, ok, err = v.eatBracedQuantifier(noConsume)
		if err != nil || !ok {
			return false, err
		}
	}

	greedy := !v.r.eat('?')
	if !noConsume {
		v.handler.OnQuantifier(start, v.r.pos, min, max, greedy)
	}
	return true, nil
}

func (v *Validator) eatBracedQuantifier(noError bool) (int, int, bool, error) {
	start := v.r.pos
	if !v.r.eat('{') {
		return 0, 0, false, nil
	}
	if min, ok := v.eatDecimalDigits(); ok {
		max := min
		if v.r.eat(',') {
			max = Infinity
			if n, ok := v.eatDecimalDigits(); ok {
				max = n
			}
		}
		if v.r.eat('}') {
			if !noError && max < min {
				return 0, 0, false, v.raise("numbers out of order in {} quantifier")
			}
			return min, max, true, nil
		}
	}
	if !noError && v.strict() {
		return 0, 0, false, v.raise("Incomplete quantifier")
	}
	v.r.rewind(start)
	return 0, 0, false, nil
}

func (v *Validator) consumeAtom() (bool, error) {
	if v.consumePatternCharacter() || v.consumeDot() {
		return true, nil
	}
	if ok, err := v.consumeReverseSolidusAtomEscape(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeCharacterClass(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeUncapturingGroup(); err != nil || ok {
		return ok, err
	}
	return v.consumeCapturingGroup()
}

func (v *Validator) consumeDot() bool {
	start := v.r.pos
	if v.r.eat('.') {
		v.handler.OnAnyCharacterSet(start, v.r.pos, CharacterSetAny)
		return true
	}
	return false
}

func (v *Validator) consumeReverseSolidusAtomEscape() (bool, error) {
	start := v.r.pos
	if v.r.eat('\\') {
		ok, err := v.consumeAtomEscape()
		if err != nil || ok {
			return ok, err
		}
		v.r.rewind(start)
	}
	return false, nil
}

func (v *Validator) consumeUncapturingGroup() (bool, error) {
	start := v.r.pos
	if !v.r.eat3('(', '?', ':') {
		return false, nil
	}
	v.handler.OnGroupEnter(start)
	if err := v.consumeDisjunction(); err != nil {
		return false, err
	}
	if !v.r.eat(')') {
		return false, v.raise("Unterminated group")
	}
	v.handler.OnGroupLeave(start, v.r.pos)
	return true, nil
}

func (v *Validator) consumeCapturingGroup() (bool, error) {
	start := v.r.pos
	if !v.r.eat('(') {
		return false, nil
	}

	name := ""
	if v.features.namedGroups {
		n, _, err := v.consumeGroupSpecifier()
		if err != nil {
			return false, err
		}
		name = n
	} else if v.r.cp1 == '?' {
		return false, v.raise("Invalid group")
	}

	v.handler.OnCapturingGroupEnter(start, name)
	if err := v.consumeDisjunction(); err != nil {
		return false, err
	}
	if !v.r.eat(')') {
		return false, v.raise("Unterminated group")
	}
	v.handler.OnCapturingGroupLeave(start, v.r.pos, name)
	return true, nil
}

// consumeExtendedAtom is the Annex B counterpart of consumeAtom.
func (v *Validator) consumeExtendedAtom() (bool, error) {
	if v.consumeDot() {
		return true, nil
	}
	if ok, err := v.consumeReverseSolidusAtomEscape(); err != nil || ok {
		return ok, err
	}
	if v.consumeReverseSolidusFollowedByC() {
		return true, nil
	}
	if ok, err := v.consumeCharacterClass(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeUncapturingGroup(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeCapturingGroup(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeInvalidBracedQuantifier(); err != nil || ok {
		return ok, err
	}
	return v.consumeExtendedPatternCharacter(), nil
}

// consumeReverseSolidusFollowedByC reads the backslash of \c not followed by
// a control letter as a literal backslash.
func (v *Validator) consumeReverseSolidusFollowedByC() bool {
	start := v.r.pos
	if v.r.cp1 == '\\' && v.r.cp2 == 'c' {
		v.r.advance()
		v.handler.OnCharacter(start, v.r.pos, '\\')
		return true
	}
	return false
}

func (v *Validator) consumeInvalidBracedQuantifier() (bool, error) {
	if _, _, ok, _ := v.eatBracedQuantifier(true); ok {
		return false, v.raise("Nothing to repeat")
	}
	return false, nil
}

func (v *Validator) consumePatternCharacter() bool {
	start := v.r.pos
	cp := v.r.cp1
	if cp != eof && !isSyntaxCharacter(cp) {
		v.r.advance()
		v.handler.OnCharacter(start, v.r.pos, cp)
		return true
	}
	return false
}

func (v *Validator) consumeExtendedPatternCharacter() bool {
	start := v.r.pos
	cp := v.r.cp1
	switch cp {
	case eof, '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', '|':
		return false
	}
	v.r.advance()
	v.handler.OnCharacter(start, v.r.pos, cp)
	return true
}

// consumeGroupSpecifier reads the ?<name> part of a named group and records
// the name.
func (v *Validator) consumeGroupSpecifier() (string, bool, error) {
	if !v.r.eat('?') {
		return "", false, nil
	}
	name, ok, err := v.eatGroupName()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, v.raise("Invalid group")
	}
	if _, dup := v.groupNames[name]; dup {
		return "", false, v.raise("Duplicate capture group name")
	}
	v.groupNames[name] = struct{}{}
	return name, true, nil
}

func (v *Validator) consumeAtomEscape() (bool, error) {
	if ok, err := v.consumeBackreference(); err != nil || ok {
		return ok, err
	}
	if ok, err := v.consumeCharacterClassEscape(); err != nil || ok {
		return ok, err
	}
	if _, ok, err := v.consumeCharacterEscape(); err != nil || ok {
		return ok, err
	}
	if v.nFlag {
		if ok, err := v.consumeKGroupName(); err != nil || ok {
			return ok, err
		}
	}
	if v.strict() {
		return false, v.raise("Invalid escape")
	}
	return false, nil
}

func (v *Validator) consumeBackreference() (bool, error) {
	start := v.r.pos
	n, ok := v.eatDecimalEscape()
	if !ok {
		return false, nil
	}
	if n <= v.numCapturingParens {
		v.handler.OnBackreference(start-1, v.r.pos, n, "")
		return true, nil
	}
	if v.strict() {
		return false, v.raise("Invalid escape")
	}
	v.r.rewind(start)
	return false, nil
}

func (v *Validator) consumeCharacterClassEscape() (bool, error) {
	start := v.r.pos

	for _, e := range characterSetEscapes {
		if v.r.eat(e.letter) {
			v.handler.OnEscapeCharacterSet(start-1, v.r.pos, e.kind, e.negate)
			return true, nil
		}
	}

	if !v.uFlag || !v.features.propertyEscapes {
		return false, nil
	}
	var negate bool
	switch {
	case v.r.eat('p'):
	case v.r.eat('P'):
		negate = true
	default:
		return false, nil
	}
	if v.r.eat('{') {
		key, value, ok, err := v.eatUnicodePropertyValueExpression()
		if err != nil {
			return false, err
		}
		if ok && v.r.eat('}') {
			v.handler.OnUnicodePropertyCharacterSet(start-1, v.r.pos, CharacterSetProperty, key, value, negate)
			return true, nil
		}
	}
	return false, v.raise("Invalid property name")
}

func (v *Validator) consumeCharacterEscape() (rune, bool, error) {
	start := v.r.pos
	cp, ok, err := v.eatCharacterEscape()
	if err != nil || !ok {
		return 0, false, err
	}
	v.handler.OnCharacter(start-1, v.r.pos, cp)
	return cp, true, nil
}

// eatCharacterEscape tries the character escapes in the order the grammar
// gives them precedence.
func (v *Validator) eatCharacterEscape() (rune, bool, error) {
	if cp, ok := v.eatControlEscape(); ok {
		return cp, true, nil
	}
	if cp, ok := v.eatCControlLetter(); ok {
		return cp, true, nil
	}
	if v.eatZero() {
		return 0, true, nil
	}
	if cp, ok, err := v.eatHexEscapeSequence(); err != nil || ok {
		return cp, ok, err
	}
	if cp, ok, err := v.eatRegExpUnicodeEscapeSequence(false); err != nil || ok {
		return cp, ok, err
	}
	if !v.strict() {
		if cp, ok := v.eatLegacyOctalEscapeSequence(); ok {
			return cp, true, nil
		}
	}
	if cp, ok := v.eatIdentityEscape(); ok {
		return cp, true, nil
	}
	return 0, false, nil
}

func (v *Validator) consumeKGroupName() (bool, error) {
	start := v.r.pos
	if !v.r.eat('k') {
		return false, nil
	}
	name, ok, err := v.eatGroupName()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, v.raise("Invalid named reference")
	}
	v.backreferenceNames[name] = struct{}{}
	v.handler.OnBackreference(start-1, v.r.pos, 0, name)
	return true, nil
}

func (v *Validator) consumeCharacterClass() (bool, error) {
	start := v.r.pos
	if !v.r.eat('[') {
		return false, nil
	}
	negate := v.r.eat('^')
	v.handler.OnCharacterClassEnter(start, negate)
	if err := v.consumeClassRanges(); err != nil {
		return false, err
	}
	if !v.r.eat(']') {
		return false, v.raise("Unterminated character class")
	}
	v.handler.OnCharacterClassLeave(start, v.r.pos, negate)
	return true, nil
}

// consumeClassRanges reads the body of a character class. A dash between
// two atoms forms a range unless one of them is a set, which is an error in
// strict mode and three plain elements otherwise.
func (v *Validator) consumeClassRanges() error {
	strict := v.strict()
	for {
		rangeStart := v.r.pos
		min, ok, err := v.consumeClassAtom()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !v.r.eat('-') {
			continue
		}
		v.handler.OnCharacter(v.r.pos-1, v.r.pos, '-')

		max, ok, err := v.consumeClassAtom()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if min == classSetValue || max == classSetValue {
			if strict {
				return v.raise("Invalid character class")
			}
			continue
		}
		if min > max {
			return v.raise("Range out of order in character class")
		}
		v.handler.OnCharacterClassRange(rangeStart, v.r.pos, min, max)
	}
}

func (v *Validator) consumeClassAtom() (rune, bool, error) {
	start := v.r.pos
	cp := v.r.cp1
	if cp != eof && cp != '\\' && cp != ']' {
		v.r.advance()
		v.handler.OnCharacter(start, v.r.pos, cp)
		return cp, true, nil
	}

	if v.r.eat('\\') {
		cp, ok, err := v.consumeClassEscape()
		if err != nil || ok {
			return cp, ok, err
		}
		if !v.strict() && v.r.cp1 == 'c' {
			v.handler.OnCharacter(start, v.r.pos, '\\')
			return '\\', true, nil
		}
		if v.strict() {
			return 0, false, v.raise("Invalid escape")
		}
		v.r.rewind(start)
	}
	return 0, false, nil
}

func (v *Validator) consumeClassEscape() (rune, bool, error) {
	start := v.r.pos

	if v.r.eat('b') {
		v.handler.OnCharacter(start-1, v.r.pos, '\b')
		return '\b', true, nil
	}
	if v.uFlag && v.r.eat('-') {
		v.handler.OnCharacter(start-1, v.r.pos, '-')
		return '-', true, nil
	}
	if !v.strict() && !v.uFlag && v.r.cp1 == 'c' {
		if c := v.r.cp2; isDecimalDigit(c) || c == '_' {
			v.r.advance()
			v.r.advance()
			v.handler.OnCharacter(start-1, v.r.pos, c%0x20)
			return c % 0x20, true, nil
		}
	}

	if ok, err := v.consumeCharacterClassEscape(); err != nil || ok {
		return classSetValue, ok, err
	}
	return v.consumeCharacterEscape()
}

func (v *Validator) eatGroupName() (string, bool, error) {
	if !v.r.eat('<') {
		return "", false, nil
	}
	name, ok, err := v.eatRegExpIdentifierName()
	if err != nil {
		return "", false, err
	}
	if ok && v.r.eat('>') {
		return name, true, nil
	}
	return "", false, v.raise("Invalid capture group name")
}

func (v *Validator) eatRegExpIdentifierName() (string, bool, error) {
	c, ok, err := v.eatRegExpIdentifierChar(isRegExpIdentifierStart)
	if err != nil || !ok {
		return "", false, err
	}
	name := []rune{c}
	for {
		c, ok, err := v.eatRegExpIdentifierChar(isRegExpIdentifierPart)
		if err != nil {
			return "", false, err
		}
		if !ok {
			break
		}
		name = append(name, c)
	}
	return string(name), true, nil
}

// eatRegExpIdentifierChar reads one code point of a group name, decoding
// \u escapes. Since ES2020 surrogate pairs and \u{...} are accepted even
// without the u flag.
func (v *Validator) eatRegExpIdentifierChar(valid func(rune) bool) (rune, bool, error) {
	start := v.r.pos
	forceU := !v.uFlag && v.features.identifierSurrogates
	cp := v.r.cp1
	v.r.advance()

	if cp == '\\' {
		c, ok, err := v.eatRegExpUnicodeEscapeSequence(forceU)
		if err != nil {
			return 0, false, err
		}
		if ok {
			cp = c
		}
	} else if forceU && isHighSurrogate(cp) && isLowSurrogate(v.r.cp1) {
		cp = combineSurrogatePair(cp, v.r.cp1)
		v.r.advance()
	}

	if valid(cp) {
		return cp, true, nil
	}
	if v.r.pos != start {
		v.r.rewind(start)
	}
	return 0, false, nil
}

func (v *Validator) eatCControlLetter() (rune, bool) {
	start := v.r.pos
	if v.r.eat('c') {
		if cp, ok := v.eatControlLetter(); ok {
			return cp, true
		}
		v.r.rewind(start)
	}
	return 0, false
}

func (v *Validator) eatZero() bool {
	if v.r.cp1 == '0' && !isDecimalDigit(v.r.cp2) {
		v.r.advance()
		return true
	}
	return false
}

func (v *Validator) eatControlEscape() (rune, bool) {
	cp := v.r.cp1
	if cp >= 0 && int(cp) < len(controlEscapes) && controlEscapes[cp] != 0 {
		v.r.advance()
		return controlEscapes[cp], true
	}
	return 0, false
}

func (v *Validator) eatControlLetter() (rune, bool) {
	cp := v.r.cp1
	if isLatinLetter(cp) {
		v.r.advance()
		return cp % 0x20, true
	}
	return 0, false
}

func (v *Validator) eatRegExpUnicodeEscapeSequence(forceU bool) (rune, bool, error) {
	start := v.r.pos
	uFlag := forceU || v.uFlag
	if !v.r.eat('u') {
		return 0, false, nil
	}

	if uFlag {
		if cp, ok := v.eatRegExpUnicodeSurrogatePairEscape(); ok {
			return cp, true, nil
		}
	}
	if cp, ok := v.eatFixedHexDigits(4); ok {
		return cp, true, nil
	}
	if uFlag {
		if cp, ok := v.eatRegExpUnicodeCodePointEscape(); ok {
			return cp, true, nil
		}
	}
	if v.strict() || uFlag {
		return 0, false, v.raise("Invalid unicode escape")
	}
	v.r.rewind(start)
	return 0, false, nil
}

func (v *Validator) eatRegExpUnicodeSurrogatePairEscape() (rune, bool) {
	start := v.r.pos
	lead, ok := v.eatFixedHexDigits(4)
	if !ok {
		return 0, false
	}
	if isHighSurrogate(lead) && v.r.eat('\\') && v.r.eat('u') {
		if trail, ok := v.eatFixedHexDigits(4); ok && isLowSurrogate(trail) {
			return combineSurrogatePair(lead, trail), true
		}
	}
	v.r.rewind(start)
	return 0, false
}

func (v *Validator) eatRegExpUnicodeCodePointEscape() (rune, bool) {
	start := v.r.pos
	if v.r.eat('{') {
		if n, ok := v.eatHexDigits(); ok && v.r.eat('}') && isValidUnicode(n) {
			return rune(n), true
		}
	}
	v.r.rewind(start)
	return 0, false
}

func (v *Validator) eatIdentityEscape() (rune, bool) {
	cp := v.r.cp1
	if v.isValidIdentityEscape(cp) {
		v.r.advance()
		return cp, true
	}
	return 0, false
}

func (v *Validator) isValidIdentityEscape(cp rune) bool {
	switch {
	case cp == eof:
		return false
	case v.uFlag:
		return isSyntaxCharacter(cp) || cp == '/'
	case v.strict():
		return !isIDContinue(cp)
	case v.nFlag:
		return cp != 'c' && cp != 'k'
	}
	return cp != 'c'
}

func (v *Validator) eatDecimalEscape() (int, bool) {
	cp := v.r.cp1
	if cp < '1' || cp > '9' {
		return 0, false
	}
	n := 0
	for isDecimalDigit(cp) {
		n = appendDigit(n, 10, int(cp-'0'))
		v.r.advance()
		cp = v.r.cp1
	}
	return n, true
}

// eatUnicodePropertyValueExpression reads the inside of \p{...} and returns
// its property name and value. A lone name is either a General_Category
// value or a binary property, whose value is empty.
func (v *Validator) eatUnicodePropertyValueExpression() (string, string, bool, error) {
	start := v.r.pos
	version := v.features.version

	if name, ok := v.eatUnicodePropertyName(); ok && v.r.eat('=') {
		if value, ok := v.eatUnicodePropertyValue(); ok {
			if isValidUnicodeProperty(version, name, value) {
				return name, value, true, nil
			}
			return "", "", false, v.raise("Invalid property name")
		}
	}
	v.r.rewind(start)

	nameOrValue, ok := v.eatUnicodePropertyValue()
	if !ok {
		return "", "", false, nil
	}
	if isValidUnicodeProperty(version, "General_Category", nameOrValue) {
		return "General_Category", nameOrValue, true, nil
	}
	if isValidLoneUnicodeProperty(version, nameOrValue) {
		return nameOrValue, "", true, nil
	}
	return "", "", false, v.raise("Invalid property name")
}

func (v *Validator) eatUnicodePropertyName() (string, bool) {
	return v.eatWhile(isUnicodePropertyNameCharacter)
}

func (v *Validator) eatUnicodePropertyValue() (string, bool) {
	return v.eatWhile(isUnicodePropertyValueCharacter)
}

func (v *Validator) eatWhile(valid func(rune) bool) (string, bool) {
	var s []rune
	for valid(v.r.cp1) {
		s = append(s, v.r.cp1)
		v.r.advance()
	}
	return string(s), len(s) > 0
}

func (v *Validator) eatHexEscapeSequence() (rune, bool, error) {
	start := v.r.pos
	if !v.r.eat('x') {
		return 0, false, nil
	}
	if cp, ok := v.eatFixedHexDigits(2); ok {
		return cp, true, nil
	}
	if v.strict() {
		return 0, false, v.raise("Invalid escape")
	}
	v.r.rewind(start)
	return 0, false, nil
}

func (v *Validator) eatDecimalDigits() (int, bool) {
	start := v.r.pos
	n := 0
	for isDecimalDigit(v.r.cp1) {
		n = appendDigit(n, 10, int(v.r.cp1-'0'))
		v.r.advance()
	}
	return n, v.r.pos != start
}

func (v *Validator) eatHexDigits() (int, bool) {
	start := v.r.pos
	n := 0
	for isHexDigit(v.r.cp1) {
		// Anything past the last code point is invalid anyway.
		if n <= maxCodePoint {
			n = n*16 + digitToInt(v.r.cp1)
		}
		v.r.advance()
	}
	return n, v.r.pos != start
}

// eatLegacyOctalEscapeSequence reads up to three octal digits, the third
// only when the value stays below 0o400.
func (v *Validator) eatLegacyOctalEscapeSequence() (rune, bool) {
	n1, ok := v.eatOctalDigit()
	if !ok {
		return 0, false
	}
	n2, ok := v.eatOctalDigit()
	if !ok {
		return n1, true
	}
	if n1 <= 3 {
		if n3, ok := v.eatOctalDigit(); ok {
			return n1*64 + n2*8 + n3, true
		}
	}
	return n1*8 + n2, true
}

func (v *Validator) eatOctalDigit() (rune, bool) {
	cp := v.r.cp1
	if isOctalDigit(cp) {
		v.r.advance()
		return cp - '0', true
	}
	return 0, false
}

func (v *Validator) eatFixedHexDigits(length int) (rune, bool) {
	start := v.r.pos
	var n rune
	for i := 0; i < length; i++ {
		cp := v.r.cp1
		if !isHexDigit(cp) {
			v.r.rewind(start)
			return 0, false
		}
		n = n*16 + rune(digitToInt(cp))
		v.r.advance()
	}
	return n, true
}

// maxBound is where decimal digits saturate. It stays below Infinity so an
// explicit quantifier bound is never read as unbounded.
const maxBound = Infinity - 1

// appendDigit saturates at maxBound instead of overflowing.
func appendDigit(n, base, d int) int {
	if n > (maxBound-d)/base {
		return maxBound
	}
	return n*base + d
}
