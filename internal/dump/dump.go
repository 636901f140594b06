// Package dump renders syntax trees as ordered YAML documents and as flat
// visitor traces, for the command line tool and for fixtures.
package dump

import (
	"gopkg.in/yaml.v2"

	"github.com/auvred/regexsyntax"
)

// Infinity is how an unbounded quantifier maximum is written.
const Infinity = "$$Infinity"

func item(key string, value interface{}) yaml.MapItem {
	return yaml.MapItem{Key: key, Value: value}
}

// Node returns the tree rooted at n as an ordered mapping. Every node starts
// with its type, offsets and source text, followed by its own fields.
// Parent pointers are left out and backreference targets are summarized, so
// the result is a tree.
func Node(n regexsyntax.Node) yaml.MapSlice {
	start, end := n.Range()
	out := yaml.MapSlice{
		item("type", n.Type().String()),
		item("start", start),
		item("end", end),
		item("raw", n.Text()),
	}

	switch n := n.(type) {
	case *regexsyntax.RegExpLiteral:
		out = append(out, item("pattern", Node(n.Pattern)), item("flags", Node(n.Flags)))
	case *regexsyntax.Pattern:
		out = append(out, item("alternatives", alternatives(n.Alternatives)))
	case *regexsyntax.Alternative:
		elements := make([]yaml.MapSlice, 0, len(n.Elements))
		for _, e := range n.Elements {
			elements = append(elements, Node(e))
		}
		out = append(out, item("elements", elements))
	case *regexsyntax.Group:
		out = append(out, item("alternatives", alternatives(n.Alternatives)))
	case *regexsyntax.CapturingGroup:
		var name interface{}
		if n.Name != "" {
			name = n.Name
		}
		refs := make([]yaml.MapSlice, 0, len(n.References))
		for _, r := range n.References {
			refs = append(refs, summary(r))
		}
		out = append(out,
			item("name", name),
			item("alternatives", alternatives(n.Alternatives)),
			item("references", refs),
		)
	case *regexsyntax.Quantifier:
		var max interface{} = n.Max
		if n.Max == regexsyntax.Infinity {
			max = Infinity
		}
		out = append(out,
			item("min", n.Min),
			item("max", max),
			item("greedy", n.Greedy),
			item("element", Node(n.Element)),
		)
	case *regexsyntax.CharacterClass:
		elements := make([]yaml.MapSlice, 0, len(n.Elements))
		for _, e := range n.Elements {
			elements = append(elements, Node(e))
		}
		out = append(out, item("negate", n.Negate), item("elements", elements))
	case *regexsyntax.CharacterClassRange:
		out = append(out, item("min", Node(n.Min)), item("max", Node(n.Max)))
	case *regexsyntax.Assertion:
		out = append(out, item("kind", n.Kind.String()))
		switch {
		case n.IsLookaround():
			out = append(out,
				item("negate", n.Negate),
				item("alternatives", alternatives(n.Alternatives)),
			)
		case n.Kind == regexsyntax.AssertionWord:
			out = append(out, item("negate", n.Negate))
		}
	case *regexsyntax.CharacterSet:
		out = append(out, item("kind", n.Kind.String()))
		switch n.Kind {
		case regexsyntax.CharacterSetAny:
		case regexsyntax.CharacterSetProperty:
			var value interface{}
			if n.Value != "" {
				value = n.Value
			}
			out = append(out, item("negate", n.Negate), item("key", n.Key), item("value", value))
		default:
			out = append(out, item("negate", n.Negate))
		}
	case *regexsyntax.Character:
		out = append(out, item("value", int(n.Value)))
	case *regexsyntax.Backreference:
		var ref interface{} = n.Ref
		if n.Name != "" {
			ref = n.Name
		}
		var resolved interface{}
		if n.Resolved != nil {
			resolved = summary(n.Resolved)
		}
		out = append(out, item("ref", ref), item("resolved", resolved))
	case *regexsyntax.Flags:
		out = append(out,
			item("dotAll", n.DotAll),
			item("global", n.Global),
			item("hasIndices", n.HasIndices),
			item("ignoreCase", n.IgnoreCase),
			item("multiline", n.Multiline),
			item("sticky", n.Sticky),
			item("unicode", n.Unicode),
		)
	}
	return out
}

func alternatives(as []*regexsyntax.Alternative) []yaml.MapSlice {
	out := make([]yaml.MapSlice, 0, len(as))
	for _, a := range as {
		out = append(out, Node(a))
	}
	return out
}

// summary identifies a node without descending into it.
func summary(n regexsyntax.Node) yaml.MapSlice {
	start, _ := n.Range()
	return yaml.MapSlice{
		item("type", n.Type().String()),
		item("start", start),
		item("raw", n.Text()),
	}
}

// YAML marshals the tree rooted at n.
func YAML(n regexsyntax.Node) ([]byte, error) {
	return yaml.Marshal(Node(n))
}

func adapt[T regexsyntax.Node](f func(regexsyntax.Node)) func(T) {
	return func(n T) { f(n) }
}

// Events returns the enter and leave calls of a traversal of n, one
// "enter:Type:raw" or "leave:Type:raw" entry per call.
func Events(n regexsyntax.Node) []string {
	var events []string
	record := func(prefix string) func(regexsyntax.Node) {
		return func(n regexsyntax.Node) {
			events = append(events, prefix+":"+n.Type().String()+":"+n.Text())
		}
	}
	enter, leave := record("enter"), record("leave")

	regexsyntax.Visit(n, regexsyntax.VisitorHandlers{
		OnAlternativeEnter:         adapt[*regexsyntax.Alternative](enter),
		OnAlternativeLeave:         adapt[*regexsyntax.Alternative](leave),
		OnAssertionEnter:           adapt[*regexsyntax.Assertion](enter),
		OnAssertionLeave:           adapt[*regexsyntax.Assertion](leave),
		OnBackreferenceEnter:       adapt[*regexsyntax.Backreference](enter),
		OnBackreferenceLeave:       adapt[*regexsyntax.Backreference](leave),
		OnCapturingGroupEnter:      adapt[*regexsyntax.CapturingGroup](enter),
		OnCapturingGroupLeave:      adapt[*regexsyntax.CapturingGroup](leave),
		OnCharacterEnter:           adapt[*regexsyntax.Character](enter),
		OnCharacterLeave:           adapt[*regexsyntax.Character](leave),
		OnCharacterClassEnter:      adapt[*regexsyntax.CharacterClass](enter),
		OnCharacterClassLeave:      adapt[*regexsyntax.CharacterClass](leave),
		OnCharacterClassRangeEnter: adapt[*regexsyntax.CharacterClassRange](enter),
		OnCharacterClassRangeLeave: adapt[*regexsyntax.CharacterClassRange](leave),
		OnCharacterSetEnter:        adapt[*regexsyntax.CharacterSet](enter),
		OnCharacterSetLeave:        adapt[*regexsyntax.CharacterSet](leave),
		OnFlagsEnter:               adapt[*regexsyntax.Flags](enter),
		OnFlagsLeave:               adapt[*regexsyntax.Flags](leave),
		OnGroupEnter:               adapt[*regexsyntax.Group](enter),
		OnGroupLeave:               adapt[*regexsyntax.Group](leave),
		OnPatternEnter:             adapt[*regexsyntax.Pattern](enter),
		OnPatternLeave:             adapt[*regexsyntax.Pattern](leave),
		OnQuantifierEnter:          adapt[*regexsyntax.Quantifier](enter),
		OnQuantifierLeave:          adapt[*regexsyntax.Quantifier](leave),
		OnRegExpLiteralEnter:       adapt[*regexsyntax.RegExpLiteral](enter),
		OnRegExpLiteralLeave:       adapt[*regexsyntax.RegExpLiteral](leave),
	})
	return events
}
