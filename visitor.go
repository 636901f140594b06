package regexsyntax

// VisitorHandlers holds the callbacks of a traversal. Nil callbacks are
// skipped.
type VisitorHandlers struct {
	OnAlternativeEnter         func(*Alternative)
	OnAlternativeLeave         func(*Alternative)
	OnAssertionEnter           func(*Assertion)
	OnAssertionLeave           func(*Assertion)
	OnBackreferenceEnter       func(*Backreference)
	OnBackreferenceLeave       func(*Backreference)
	OnCapturingGroupEnter      func(*CapturingGroup)
	OnCapturingGroupLeave      func(*CapturingGroup)
	OnCharacterEnter           func(*Character)
	OnCharacterLeave           func(*Character)
	OnCharacterClassEnter      func(*CharacterClass)
	OnCharacterClassLeave      func(*CharacterClass)
	OnCharacterClassRangeEnter func(*CharacterClassRange)
	OnCharacterClassRangeLeave func(*CharacterClassRange)
	OnCharacterSetEnter        func(*CharacterSet)
	OnCharacterSetLeave        func(*CharacterSet)
	OnFlagsEnter               func(*Flags)
	OnFlagsLeave               func(*Flags)
	OnGroupEnter               func(*Group)
	OnGroupLeave               func(*Group)
	OnPatternEnter             func(*Pattern)
	OnPatternLeave             func(*Pattern)
	OnQuantifierEnter          func(*Quantifier)
	OnQuantifierLeave          func(*Quantifier)
	OnRegExpLiteralEnter       func(*RegExpLiteral)
	OnRegExpLiteralLeave       func(*RegExpLiteral)
}

// Visitor walks a tree depth first, calling the enter handler of a node,
// then visiting its children in source order, then calling its leave
// handler. The tree is not modified.
type Visitor struct {
	Handlers VisitorHandlers
	// TrackAncestors makes Ancestors available to the handlers.
	TrackAncestors bool

	ancestors []Node
}

// Visit walks the tree rooted at n.
func Visit(n Node, handlers VisitorHandlers) {
	v := Visitor{Handlers: handlers}
	v.Visit(n)
}

// VisitWithAncestors walks the tree rooted at n and passes every handler
// call the chain of nodes above the visited one, outermost first. The slice
// is only valid during the call.
func VisitWithAncestors(n Node, handlers func(v *Visitor) VisitorHandlers) {
	v := &Visitor{TrackAncestors: true}
	v.Handlers = handlers(v)
	v.Visit(n)
}

// Ancestors returns the nodes enclosing the node being visited, outermost
// first. It is empty unless TrackAncestors is set.
func (v *Visitor) Ancestors() []Node {
	return v.ancestors
}

func (v *Visitor) push(n Node) {
	if v.TrackAncestors {
		v.ancestors = append(v.ancestors, n)
	}
}

func (v *Visitor) pop() {
	if v.TrackAncestors {
		v.ancestors = v.ancestors[:len(v.ancestors)-1]
	}
}

func call[T Node](f func(T), n T) {
	if f != nil {
		f(n)
	}
}

// Visit walks the tree rooted at n.
func (v *Visitor) Visit(n Node) {
	h := &v.Handlers
	switch n := n.(type) {
	case *Alternative:
		call(h.OnAlternativeEnter, n)
		v.push(n)
		for _, e := range n.Elements {
			v.Visit(e)
		}
		v.pop()
		call(h.OnAlternativeLeave, n)
	case *Assertion:
		call(h.OnAssertionEnter, n)
		if n.IsLookaround() {
			v.visitAlternatives(n, n.Alternatives)
		}
		call(h.OnAssertionLeave, n)
	case *Backreference:
		call(h.OnBackreferenceEnter, n)
		call(h.OnBackreferenceLeave, n)
	case *CapturingGroup:
		call(h.OnCapturingGroupEnter, n)
		v.visitAlternatives(n, n.Alternatives)
		call(h.OnCapturingGroupLeave, n)
	case *Character:
		call(h.OnCharacterEnter, n)
		call(h.OnCharacterLeave, n)
	case *CharacterClass:
		call(h.OnCharacterClassEnter, n)
		v.push(n)
		for _, e := range n.Elements {
			v.Visit(e)
		}
		v.pop()
		call(h.OnCharacterClassLeave, n)
	case *CharacterClassRange:
		call(h.OnCharacterClassRangeEnter, n)
		v.push(n)
		v.Visit(n.Min)
		v.Visit(n.Max)
		v.pop()
		call(h.OnCharacterClassRangeLeave, n)
	case *CharacterSet:
		call(h.OnCharacterSetEnter, n)
		call(h.OnCharacterSetLeave, n)
	case *Flags:
		call(h.OnFlagsEnter, n)
		call(h.OnFlagsLeave, n)
	case *Group:
		call(h.OnGroupEnter, n)
		v.visitAlternatives(n, n.Alternatives)
		call(h.OnGroupLeave, n)
	case *Pattern:
		call(h.OnPatternEnter, n)
		v.visitAlternatives(n, n.Alternatives)
		call(h.OnPatternLeave, n)
	case *Quantifier:
		call(h.OnQuantifierEnter, n)
		v.push(n)
		v.Visit(n.Element)
		v.pop()
		call(h.OnQuantifierLeave, n)
	case *RegExpLiteral:
		call(h.OnRegExpLiteralEnter, n)
		v.push(n)
		v.Visit(n.Pattern)
		v.Visit(n.Flags)
		v.pop()
		call(h.OnRegExpLiteralLeave, n)
	default:
		panic("regexsyntax: unknown node type " + n.Type().String())
	}
}

func (v *Visitor) visitAlternatives(parent Node, alternatives []*Alternative) {
	v.push(parent)
	for _, a := range alternatives {
		v.Visit(a)
	}
	v.pop()
}
