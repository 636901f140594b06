package regexsyntax

import (
	"fmt"
	"unicode/utf16"
)

// Parser builds syntax trees. It drives a Validator and assembles the tree
// from the constructs it reports.
//
// A Parser must not be used by several goroutines at once. The trees it
// returns are independent of it and of each other.
type Parser struct {
	state     *builder
	validator *Validator
}

// NewParser returns a Parser for the given options.
func NewParser(opts Options) *Parser {
	b := &builder{}
	return &Parser{
		state:     b,
		validator: NewValidator(opts, b),
	}
}

// ParseLiteral parses a whole literal such as /ab+c/gi.
func (p *Parser) ParseLiteral(source string) (*RegExpLiteral, error) {
	src := encodeSource(source)
	return p.ParseLiteralUTF16(src, 0, len(src))
}

// ParseLiteralUTF16 parses the literal in src[start:end]. Node offsets are
// indices into src.
func (p *Parser) ParseLiteralUTF16(src []uint16, start, end int) (*RegExpLiteral, error) {
	p.state.reset(src)
	defer p.state.reset(nil)
	if err := p.validator.ValidateLiteralUTF16(src, start, end); err != nil {
		return nil, err
	}

	literal := &RegExpLiteral{
		Base:    Base{Start: start, End: end, Raw: p.state.raw(start, end)},
		Pattern: p.state.pattern,
		Flags:   p.state.flags,
	}
	literal.Pattern.parent = literal
	literal.Flags.parent = literal
	return literal, nil
}

// ParseFlags parses the flags part of a literal.
func (p *Parser) ParseFlags(source string) (*Flags, error) {
	src := encodeSource(source)
	return p.ParseFlagsUTF16(src, 0, len(src))
}

// ParseFlagsUTF16 parses the flags in src[start:end].
func (p *Parser) ParseFlagsUTF16(src []uint16, start, end int) (*Flags, error) {
	p.state.reset(src)
	defer p.state.reset(nil)
	if err := p.validator.ValidateFlagsUTF16(src, start, end); err != nil {
		return nil, err
	}
	return p.state.flags, nil
}

// ParsePattern parses a pattern without the surrounding slashes.
func (p *Parser) ParsePattern(source string, unicode bool) (*Pattern, error) {
	src := encodeSource(source)
	return p.ParsePatternUTF16(src, 0, len(src), unicode)
}

// ParsePatternUTF16 parses the pattern in src[start:end].
func (p *Parser) ParsePatternUTF16(src []uint16, start, end int, unicode bool) (*Pattern, error) {
	p.state.reset(src)
	defer p.state.reset(nil)
	if err := p.validator.ValidatePatternUTF16(src, start, end, unicode); err != nil {
		return nil, err
	}
	return p.state.pattern, nil
}

// builder assembles the tree. node is the innermost node still open, and
// leave events move it back to the parent.
type builder struct {
	NopHandler

	src     []uint16
	node    Node
	pattern *Pattern
	flags   *Flags

	backreferences  []*Backreference
	capturingGroups []*CapturingGroup
}

func (b *builder) reset(src []uint16) {
	b.src = src
	b.node = nil
	if src == nil {
		b.pattern = nil
		b.flags = nil
		b.backreferences = nil
		b.capturingGroups = nil
	}
}

func (b *builder) raw(start, end int) string {
	return string(utf16.Decode(b.src[start:end]))
}

func unexpectedNode(event string, n Node) string {
	return fmt.Sprintf("regexsyntax: %s inside %T", event, n)
}

func (b *builder) alternative(event string) *Alternative {
	a, ok := b.node.(*Alternative)
	if !ok {
		panic(unexpectedNode(event, b.node))
	}
	return a
}

func (b *builder) appendElement(event string, e Element) {
	a := b.alternative(event)
	e.base().parent = a
	a.Elements = append(a.Elements, e)
}

type leafElement interface {
	Element
	CharacterClassElement
}

// appendLeaf appends a node that may appear both in alternatives and in
// character classes.
func (b *builder) appendLeaf(event string, e leafElement) {
	switch parent := b.node.(type) {
	case *Alternative:
		e.base().parent = parent
		parent.Elements = append(parent.Elements, e)
	case *CharacterClass:
		e.base().parent = parent
		parent.Elements = append(parent.Elements, e)
	default:
		panic(unexpectedNode(event, b.node))
	}
}

// open appends n to the current alternative and makes it the current node.
func (b *builder) open(event string, n Element) {
	b.appendElement(event, n)
	b.node = n
}

// closeNode finishes the current node, which must have type T.
func closeNode[T Node](b *builder, event string, start, end int) T {
	n, ok := b.node.(T)
	if !ok {
		panic(unexpectedNode(event, b.node))
	}
	base := n.base()
	base.End = end
	base.Raw = b.raw(start, end)
	b.node = base.parent
	return n
}

func (b *builder) OnFlags(start, end int, flags FlagSet) {
	b.flags = &Flags{
		Base:    Base{Start: start, End: end, Raw: b.raw(start, end)},
		FlagSet: flags,
	}
}

func (b *builder) OnPatternEnter(start int) {
	b.pattern = &Pattern{Base: Base{Start: start, End: start}}
	b.node = b.pattern
	b.backreferences = b.backreferences[:0]
	b.capturingGroups = b.capturingGroups[:0]
}

// OnPatternLeave resolves the backreferences collected while parsing.
// Forward references are legal, so this can only happen at the end.
func (b *builder) OnPatternLeave(start, end int) {
	closeNode[*Pattern](b, "pattern leave", start, end)

	for _, ref := range b.backreferences {
		var group *CapturingGroup
		if ref.Name == "" {
			group = b.capturingGroups[ref.Ref-1]
		} else {
			for _, g := range b.capturingGroups {
				if g.Name == ref.Name {
					group = g
					break
				}
			}
		}
		ref.Resolved = group
		group.References = append(group.References, ref)
	}
}

func (b *builder) OnAlternativeEnter(start, _ int) {
	alt := &Alternative{Base: Base{Start: start, End: start, parent: b.node}}
	switch parent := b.node.(type) {
	case *Pattern:
		parent.Alternatives = append(parent.Alternatives, alt)
	case *Group:
		parent.Alternatives = append(parent.Alternatives, alt)
	case *CapturingGroup:
		parent.Alternatives = append(parent.Alternatives, alt)
	case *Assertion:
		parent.Alternatives = append(parent.Alternatives, alt)
	default:
		panic(unexpectedNode("alternative", b.node))
	}
	b.node = alt
}

func (b *builder) OnAlternativeLeave(start, end, _ int) {
	closeNode[*Alternative](b, "alternative leave", start, end)
}

func (b *builder) OnGroupEnter(start int) {
	b.open("group", &Group{Base: Base{Start: start, End: start}})
}

func (b *builder) OnGroupLeave(start, end int) {
	closeNode[*Group](b, "group leave", start, end)
}

func (b *builder) OnCapturingGroupEnter(start int, name string) {
	g := &CapturingGroup{Base: Base{Start: start, End: start}, Name: name}
	b.open("capturing group", g)
	b.capturingGroups = append(b.capturingGroups, g)
}

func (b *builder) OnCapturingGroupLeave(start, end int, _ string) {
	closeNode[*CapturingGroup](b, "capturing group leave", start, end)
}

// OnQuantifier wraps the element that was appended last.
func (b *builder) OnQuantifier(_, end, min, max int, greedy bool) {
	a := b.alternative("quantifier")
	if len(a.Elements) == 0 {
		panic("regexsyntax: quantifier without element")
	}
	last := a.Elements[len(a.Elements)-1]
	element, ok := last.(QuantifiableElement)
	if assertion, isAssertion := last.(*Assertion); isAssertion && assertion.Kind != AssertionLookahead {
		ok = false
	}
	if !ok {
		panic(unexpectedNode("quantifier", last))
	}

	start := element.base().Start
	q := &Quantifier{
		Base:    Base{Start: start, End: end, Raw: b.raw(start, end), parent: a},
		Min:     min,
		Max:     max,
		Greedy:  greedy,
		Element: element,
	}
	element.base().parent = q
	a.Elements[len(a.Elements)-1] = q
}

func (b *builder) OnLookaroundAssertionEnter(start int, kind AssertionKind, negate bool) {
	b.open("lookaround", &Assertion{
		Base:   Base{Start: start, End: start},
		Kind:   kind,
		Negate: negate,
	})
}

func (b *builder) OnLookaroundAssertionLeave(start, end int, _ AssertionKind, _ bool) {
	closeNode[*Assertion](b, "lookaround leave", start, end)
}

func (b *builder) OnEdgeAssertion(start, end int, kind AssertionKind) {
	b.appendElement("edge assertion", &Assertion{
		Base: Base{Start: start, End: end, Raw: b.raw(start, end)},
		Kind: kind,
	})
}

func (b *builder) OnWordBoundaryAssertion(start, end int, kind AssertionKind, negate bool) {
	b.appendElement("word boundary", &Assertion{
		Base:   Base{Start: start, End: end, Raw: b.raw(start, end)},
		Kind:   kind,
		Negate: negate,
	})
}

func (b *builder) OnAnyCharacterSet(start, end int, kind CharacterSetKind) {
	b.appendElement("dot", &CharacterSet{
		Base: Base{Start: start, End: end, Raw: b.raw(start, end)},
		Kind: kind,
	})
}

func (b *builder) OnEscapeCharacterSet(start, end int, kind CharacterSetKind, negate bool) {
	b.appendLeaf("character set", &CharacterSet{
		Base:   Base{Start: start, End: end, Raw: b.raw(start, end)},
		Kind:   kind,
		Negate: negate,
	})
}

func (b *builder) OnUnicodePropertyCharacterSet(start, end int, kind CharacterSetKind, key, value string, negate bool) {
	b.appendLeaf("property", &CharacterSet{
		Base:   Base{Start: start, End: end, Raw: b.raw(start, end)},
		Kind:   kind,
		Negate: negate,
		Key:    key,
		Value:  value,
	})
}

func (b *builder) OnCharacter(start, end int, value rune) {
	b.appendLeaf("character", &Character{
		Base:  Base{Start: start, End: end, Raw: b.raw(start, end)},
		Value: value,
	})
}

func (b *builder) OnBackreference(start, end int, ref int, name string) {
	r := &Backreference{
		Base: Base{Start: start, End: end, Raw: b.raw(start, end)},
		Ref:  ref,
		Name: name,
	}
	b.appendElement("backreference", r)
	b.backreferences = append(b.backreferences, r)
}

func (b *builder) OnCharacterClassEnter(start int, negate bool) {
	b.open("character class", &CharacterClass{
		Base:   Base{Start: start, End: start},
		Negate: negate,
	})
}

func (b *builder) OnCharacterClassLeave(start, end int, _ bool) {
	closeNode[*CharacterClass](b, "character class leave", start, end)
}

// OnCharacterClassRange replaces the min, hyphen and max characters that
// were appended last with a single range.
func (b *builder) OnCharacterClassRange(start, end int, _, _ rune) {
	class, ok := b.node.(*CharacterClass)
	if !ok || len(class.Elements) < 3 {
		panic(unexpectedNode("character class range", b.node))
	}
	n := len(class.Elements)
	min, okMin := class.Elements[n-3].(*Character)
	hyphen, okHyphen := class.Elements[n-2].(*Character)
	max, okMax := class.Elements[n-1].(*Character)
	if !okMin || !okHyphen || !okMax || hyphen.Value != '-' {
		panic("regexsyntax: character class range without endpoints")
	}

	r := &CharacterClassRange{
		Base: Base{Start: start, End: end, Raw: b.raw(start, end), parent: class},
		Min:  min,
		Max:  max,
	}
	min.parent = r
	max.parent = r
	class.Elements = append(class.Elements[:n-3], r)
}
