package regexsyntax

import "math"

// Infinity is the Max of a quantifier without an upper bound.
const Infinity = math.MaxInt

// NodeType identifies the kind of a Node.
type NodeType uint8

const (
	NodeRegExpLiteral NodeType = iota
	NodePattern
	NodeAlternative
	NodeGroup
	NodeCapturingGroup
	NodeQuantifier
	NodeCharacterClass
	NodeCharacterClassRange
	NodeAssertion
	NodeCharacterSet
	NodeCharacter
	NodeBackreference
	NodeFlags
)

var nodeTypeNames = [...]string{
	NodeRegExpLiteral:       "RegExpLiteral",
	NodePattern:             "Pattern",
	NodeAlternative:         "Alternative",
	NodeGroup:               "Group",
	NodeCapturingGroup:      "CapturingGroup",
	NodeQuantifier:          "Quantifier",
	NodeCharacterClass:      "CharacterClass",
	NodeCharacterClassRange: "CharacterClassRange",
	NodeAssertion:           "Assertion",
	NodeCharacterSet:        "CharacterSet",
	NodeCharacter:           "Character",
	NodeBackreference:       "Backreference",
	NodeFlags:               "Flags",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "Unknown"
}

// Node is implemented by every syntax tree node. The set of implementations
// is closed.
type Node interface {
	Type() NodeType
	// Parent returns nil for the root of a tree.
	Parent() Node
	// Range returns the half-open UTF-16 code unit offsets of the node.
	Range() (start, end int)
	// Text returns the source text of the node.
	Text() string

	base() *Base
}

// Element is a node that may appear in an Alternative.
type Element interface {
	Node
	element()
}

// QuantifiableElement is an element that a Quantifier may wrap.
type QuantifiableElement interface {
	Element
	quantifiable()
}

// CharacterClassElement is a node that may appear in a CharacterClass.
type CharacterClassElement interface {
	Node
	classElement()
}

// Base holds the fields shared by all nodes.
type Base struct {
	Start int
	End   int
	Raw   string

	parent Node
}

func (b *Base) Parent() Node            { return b.parent }
func (b *Base) Range() (start, end int) { return b.Start, b.End }
func (b *Base) Text() string            { return b.Raw }
func (b *Base) base() *Base             { return b }

// RegExpLiteral is the root of a parsed /pattern/flags literal.
type RegExpLiteral struct {
	Base
	Pattern *Pattern
	Flags   *Flags
}

// Pattern is the part of a literal between the slashes.
type Pattern struct {
	Base
	Alternatives []*Alternative
}

// Alternative is one branch of a disjunction.
type Alternative struct {
	Base
	Elements []Element
}

// Group is a non-capturing group (?:...).
type Group struct {
	Base
	Alternatives []*Alternative
}

// CapturingGroup is (...) or (?<name>...).
type CapturingGroup struct {
	Base
	// Name is empty for unnamed groups.
	Name         string
	Alternatives []*Alternative
	// References lists the backreferences resolved to this group in source
	// order.
	References []*Backreference
}

// Quantifier wraps an element repeated between Min and Max times.
type Quantifier struct {
	Base
	Min    int
	Max    int // Infinity when unbounded
	Greedy bool

	Element QuantifiableElement
}

// CharacterClass is [...] or [^...].
type CharacterClass struct {
	Base
	Negate   bool
	Elements []CharacterClassElement
}

// CharacterClassRange is a-z inside a character class.
type CharacterClassRange struct {
	Base
	Min *Character
	Max *Character
}

// Assertion is ^, $, \b, \B or a lookaround.
type Assertion struct {
	Base
	Kind AssertionKind
	// Negate is set for \B, (?!...) and (?<!...).
	Negate bool
	// Alternatives is only used by lookarounds.
	Alternatives []*Alternative
}

// IsLookaround reports whether the assertion has a body.
func (a *Assertion) IsLookaround() bool {
	return a.Kind == AssertionLookahead || a.Kind == AssertionLookbehind
}

// CharacterSet is ., \d, \s, \w, their negations, or \p{...}.
type CharacterSet struct {
	Base
	Kind   CharacterSetKind
	Negate bool
	// Key and Value are only set for property sets. Value is empty for lone
	// binary properties.
	Key   string
	Value string
}

// Character is a single code point, written literally or as an escape.
type Character struct {
	Base
	Value rune
}

// Backreference is \N or \k<name>.
type Backreference struct {
	Base
	// Ref is the group number, zero for named references.
	Ref int
	// Name is the group name, empty for numbered references.
	Name     string
	Resolved *CapturingGroup
}

// Flags is the part of a literal after the closing slash.
type Flags struct {
	Base
	FlagSet
}

func (*RegExpLiteral) Type() NodeType       { return NodeRegExpLiteral }
func (*Pattern) Type() NodeType             { return NodePattern }
func (*Alternative) Type() NodeType         { return NodeAlternative }
func (*Group) Type() NodeType               { return NodeGroup }
func (*CapturingGroup) Type() NodeType      { return NodeCapturingGroup }
func (*Quantifier) Type() NodeType          { return NodeQuantifier }
func (*CharacterClass) Type() NodeType      { return NodeCharacterClass }
func (*CharacterClassRange) Type() NodeType { return NodeCharacterClassRange }
func (*Assertion) Type() NodeType           { return NodeAssertion }
func (*CharacterSet) Type() NodeType        { return NodeCharacterSet }
func (*Character) Type() NodeType           { return NodeCharacter }
func (*Backreference) Type() NodeType       { return NodeBackreference }
func (*Flags) Type() NodeType               { return NodeFlags }

func (*Group) element()          {}
func (*CapturingGroup) element() {}
func (*Quantifier) element()     {}
func (*CharacterClass) element() {}
func (*Assertion) element()      {}
func (*CharacterSet) element()   {}
func (*Character) element()      {}
func (*Backreference) element()  {}

// Only lookaheads are quantifiable, and only under Annex B. The parser
// enforces that through the validator.
func (*Group) quantifiable()          {}
func (*CapturingGroup) quantifiable() {}
func (*CharacterClass) quantifiable() {}
func (*Assertion) quantifiable()      {}
func (*CharacterSet) quantifiable()   {}
func (*Character) quantifiable()      {}
func (*Backreference) quantifiable()  {}

func (*CharacterSet) classElement()        {}
func (*Character) classElement()           {}
func (*CharacterClassRange) classElement() {}
