package regexsyntax

import (
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
)

func mustParse(t *testing.T, source string, opts Options) *RegExpLiteral {
	t.Helper()
	literal, err := ParseRegExpLiteral(source, opts)
	assert.NilError(t, err, source)
	return literal
}

func elements(literal *RegExpLiteral) []Element {
	return literal.Pattern.Alternatives[0].Elements
}

func children(n Node) []Node {
	var out []Node
	alternatives := func(as []*Alternative) {
		for _, a := range as {
			out = append(out, a)
		}
	}
	switch n := n.(type) {
	case *RegExpLiteral:
		out = append(out, n.Pattern, n.Flags)
	case *Pattern:
		alternatives(n.Alternatives)
	case *Alternative:
		for _, e := range n.Elements {
			out = append(out, e)
		}
	case *Group:
		alternatives(n.Alternatives)
	case *CapturingGroup:
		alternatives(n.Alternatives)
	case *Assertion:
		alternatives(n.Alternatives)
	case *Quantifier:
		out = append(out, n.Element)
	case *CharacterClass:
		for _, e := range n.Elements {
			out = append(out, e)
		}
	case *CharacterClassRange:
		out = append(out, n.Min, n.Max)
	}
	return out
}

// checkTree verifies that every node's text is its source slice and that
// children are ordered, nested within their parent and point back to it.
func checkTree(t *testing.T, src []uint16, n Node) {
	t.Helper()
	start, end := n.Range()
	assert.Assert(t, start <= end)
	assert.Equal(t, n.Text(), string(utf16.Decode(src[start:end])), "%s at %d", n.Type(), start)

	prevEnd := start
	for _, c := range children(n) {
		assert.Assert(t, c.Parent() == n, "%s at %d", c.Type(), start)
		cs, ce := c.Range()
		assert.Assert(t, cs >= prevEnd && ce <= end, "%s %d-%d inside %s %d-%d", c.Type(), cs, ce, n.Type(), start, end)
		prevEnd = ce
		checkTree(t, src, c)
	}
}

func TestParseAlternatives(t *testing.T) {
	got := mustParse(t, "/a|b/", Options{})
	want := &RegExpLiteral{
		Base: Base{Start: 0, End: 5, Raw: "/a|b/"},
		Pattern: &Pattern{
			Base: Base{Start: 1, End: 4, Raw: "a|b"},
			Alternatives: []*Alternative{
				{
					Base: Base{Start: 1, End: 2, Raw: "a"},
					Elements: []Element{
						&Character{Base: Base{Start: 1, End: 2, Raw: "a"}, Value: 'a'},
					},
				},
				{
					Base: Base{Start: 3, End: 4, Raw: "b"},
					Elements: []Element{
						&Character{Base: Base{Start: 3, End: 4, Raw: "b"}, Value: 'b'},
					},
				},
			},
		},
		Flags: &Flags{Base: Base{Start: 5, End: 5}},
	}
	assert.DeepEqual(t, got, want, cmpopts.IgnoreUnexported(Base{}))
	assert.Assert(t, got.Parent() == nil)
}

func TestParseEmptyAlternatives(t *testing.T) {
	literal := mustParse(t, "/|/", Options{})
	assert.Equal(t, len(literal.Pattern.Alternatives), 2)
	for _, a := range literal.Pattern.Alternatives {
		assert.Equal(t, len(a.Elements), 0)
	}

	literal = mustParse(t, "/(?:)/", Options{})
	group := elements(literal)[0].(*Group)
	assert.Equal(t, group.Raw, "(?:)")
	assert.Equal(t, len(group.Alternatives), 1)
}

func TestParseBackreferences(t *testing.T) {
	t.Run("Numbered", func(t *testing.T) {
		literal := mustParse(t, `/(a)\1/`, Options{})
		es := elements(literal)
		assert.Equal(t, len(es), 2)
		group := es[0].(*CapturingGroup)
		ref := es[1].(*Backreference)
		assert.Equal(t, ref.Ref, 1)
		assert.Equal(t, ref.Name, "")
		assert.Equal(t, ref.Raw, `\1`)
		assert.Assert(t, ref.Resolved == group)
		assert.Equal(t, len(group.References), 1)
		assert.Assert(t, group.References[0] == ref)
	})
	t.Run("Forward", func(t *testing.T) {
		literal := mustParse(t, `/\1(a)/`, Options{Strict: true})
		es := elements(literal)
		ref := es[0].(*Backreference)
		group := es[1].(*CapturingGroup)
		assert.Assert(t, ref.Resolved == group)
	})
	t.Run("Named", func(t *testing.T) {
		literal := mustParse(t, `/(?<x>a)\k<x>/`, Options{})
		es := elements(literal)
		assert.Equal(t, len(es), 2)
		group := es[0].(*CapturingGroup)
		ref := es[1].(*Backreference)
		assert.Equal(t, group.Name, "x")
		assert.Equal(t, ref.Name, "x")
		assert.Equal(t, ref.Ref, 0)
		assert.Equal(t, ref.Raw, `\k<x>`)
		assert.Assert(t, ref.Resolved == group)
		assert.Equal(t, len(group.References), 1)
	})
	t.Run("Several", func(t *testing.T) {
		literal := mustParse(t, `/(a)(b)\2(?:\1|\2)/`, Options{})
		es := elements(literal)
		first := es[0].(*CapturingGroup)
		second := es[1].(*CapturingGroup)
		assert.Equal(t, len(first.References), 1)
		assert.Equal(t, len(second.References), 2)
		assert.Equal(t, second.References[0].Start, 7)
		inner := es[3].(*Group).Alternatives[0].Elements[0].(*Backreference)
		assert.Assert(t, inner.Resolved == first)
	})
	t.Run("Escape", func(t *testing.T) {
		// Without a group \1 is a legacy octal escape.
		literal := mustParse(t, `/\1/`, Options{})
		c := elements(literal)[0].(*Character)
		assert.Equal(t, c.Value, rune(1))
	})
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		source   string
		raw      string
		min, max int
		greedy   bool
	}{
		{"/a*/", "a*", 0, Infinity, true},
		{"/a+/", "a+", 1, Infinity, true},
		{"/a?/", "a?", 0, 1, true},
		{"/a{3}/", "a{3}", 3, 3, true},
		{"/a{2,}?/", "a{2,}?", 2, Infinity, false},
		{"/a{2,5}/", "a{2,5}", 2, 5, true},
		{"/[ab]+?/", "[ab]+?", 1, Infinity, false},
		{"/(?:ab)*/", "(?:ab)*", 0, Infinity, true},
	}
	for _, tt := range tests {
		literal := mustParse(t, tt.source, Options{})
		q := elements(literal)[0].(*Quantifier)
		assert.Equal(t, q.Raw, tt.raw)
		assert.Equal(t, q.Start, 1)
		assert.Equal(t, q.Min, tt.min)
		assert.Equal(t, q.Max, tt.max)
		assert.Equal(t, q.Greedy, tt.greedy)
		assert.Assert(t, q.Element.Parent() == q)
		assert.Equal(t, q.Element.base().Start, 1)
	}
}

func TestParseCharacterClass(t *testing.T) {
	literal := mustParse(t, `/[^a-z\d-]/`, Options{})
	class := elements(literal)[0].(*CharacterClass)
	assert.Equal(t, class.Raw, `[^a-z\d-]`)
	assert.Equal(t, class.Negate, true)
	assert.Equal(t, len(class.Elements), 3)

	r := class.Elements[0].(*CharacterClassRange)
	assert.Equal(t, r.Raw, "a-z")
	assert.Equal(t, r.Start, 3)
	assert.Equal(t, r.Min.Value, 'a')
	assert.Equal(t, r.Max.Value, 'z')
	assert.Assert(t, r.Min.Parent() == r)
	assert.Assert(t, r.Max.Parent() == r)

	set := class.Elements[1].(*CharacterSet)
	assert.Equal(t, set.Kind, CharacterSetDigit)
	assert.Equal(t, set.Raw, `\d`)

	dash := class.Elements[2].(*Character)
	assert.Equal(t, dash.Value, '-')

	literal = mustParse(t, `/[\w-a]/`, Options{})
	class = elements(literal)[0].(*CharacterClass)
	assert.Equal(t, len(class.Elements), 3)
	_, isSet := class.Elements[0].(*CharacterSet)
	assert.Assert(t, isSet)

	literal = mustParse(t, `/[]/`, Options{})
	class = elements(literal)[0].(*CharacterClass)
	assert.Equal(t, len(class.Elements), 0)
}

func TestParseAssertions(t *testing.T) {
	literal := mustParse(t, `/^\b(?<!a)(?=b)\B$/`, Options{})
	es := elements(literal)
	want := []struct {
		kind   AssertionKind
		negate bool
		raw    string
	}{
		{AssertionStart, false, "^"},
		{AssertionWord, false, `\b`},
		{AssertionLookbehind, true, "(?<!a)"},
		{AssertionLookahead, false, "(?=b)"},
		{AssertionWord, true, `\B`},
		{AssertionEnd, false, "$"},
	}
	assert.Equal(t, len(es), len(want))
	for i, w := range want {
		a := es[i].(*Assertion)
		assert.Equal(t, a.Kind, w.kind)
		assert.Equal(t, a.Negate, w.negate)
		assert.Equal(t, a.Raw, w.raw)
		assert.Equal(t, a.IsLookaround(), len(a.Alternatives) == 1)
	}
	lookbehind := es[2].(*Assertion)
	assert.Equal(t, lookbehind.Alternatives[0].Elements[0].(*Character).Value, 'a')
	assert.Equal(t, AssertionLookbehind.String(), "lookbehind")
}

func TestParseCharacterSets(t *testing.T) {
	literal := mustParse(t, `/.\w\S\p{Script=Greek}\P{ASCII}\p{Lu}/u`, Options{})
	es := elements(literal)
	want := []CharacterSet{
		{Base: Base{Raw: "."}, Kind: CharacterSetAny},
		{Base: Base{Raw: `\w`}, Kind: CharacterSetWord},
		{Base: Base{Raw: `\S`}, Kind: CharacterSetSpace, Negate: true},
		{Base: Base{Raw: `\p{Script=Greek}`}, Kind: CharacterSetProperty, Key: "Script", Value: "Greek"},
		{Base: Base{Raw: `\P{ASCII}`}, Kind: CharacterSetProperty, Negate: true, Key: "ASCII"},
		{Base: Base{Raw: `\p{Lu}`}, Kind: CharacterSetProperty, Key: "General_Category", Value: "Lu"},
	}
	assert.Equal(t, len(es), len(want))
	for i, w := range want {
		set := es[i].(*CharacterSet)
		assert.Equal(t, set.Raw, w.Raw)
		assert.Equal(t, set.Kind, w.Kind)
		assert.Equal(t, set.Negate, w.Negate)
		assert.Equal(t, set.Key, w.Key)
		assert.Equal(t, set.Value, w.Value)
	}
}

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		source string
		opts   Options
		values []rune
	}{
		{`/\n\t\f\v\r/`, Options{}, []rune{'\n', '\t', '\f', '\v', '\r'}},
		{`/\cJ\cj/`, Options{}, []rune{'\n', '\n'}},
		{`/\0/`, Options{}, []rune{0}},
		{`/\07/`, Options{}, []rune{7}},
		{`/\377\400/`, Options{}, []rune{0o377, 0o40, '0'}},
		{`/\x41B/`, Options{}, []rune{'A', 'B'}},
		{`/\u{1F600}/u`, Options{}, []rune{0x1f600}},
		{`/😀/u`, Options{}, []rune{0x1f600}},
		{`/😀/`, Options{}, []rune{0xd83d, 0xde00}},
		{`/\//`, Options{}, []rune{'/'}},
		{`/\c/`, Options{}, []rune{'\\', 'c'}},
		{`/a{/`, Options{}, []rune{'a', '{'}},
		{`/\x/`, Options{}, []rune{'x'}},
		{`/\-/`, Options{Strict: true}, []rune{'-'}},
	}
	for _, tt := range tests {
		literal := mustParse(t, tt.source, tt.opts)
		var values []rune
		for _, e := range elements(literal) {
			values = append(values, e.(*Character).Value)
		}
		assert.DeepEqual(t, values, tt.values)
	}

	literal := mustParse(t, `/[\b\c_\-]/`, Options{})
	class := elements(literal)[0].(*CharacterClass)
	var values []rune
	for _, e := range class.Elements {
		values = append(values, e.(*Character).Value)
	}
	assert.DeepEqual(t, values, []rune{'\b', 0x1f, '-'})

	literal = mustParse(t, `/[\c]/`, Options{})
	class = elements(literal)[0].(*CharacterClass)
	assert.Equal(t, class.Elements[0].(*Character).Raw, `\`)
	assert.Equal(t, class.Elements[1].(*Character).Value, 'c')
}

func TestParseSurrogatePairs(t *testing.T) {
	literal := mustParse(t, "/😀/u", Options{})
	es := elements(literal)
	assert.Equal(t, len(es), 1)
	c := es[0].(*Character)
	assert.Equal(t, c.Value, rune(0x1f600))
	assert.Equal(t, c.Start, 1)
	assert.Equal(t, c.End, 3)
	assert.Equal(t, c.Raw, "😀")
	assert.Equal(t, literal.End, 5)
	assert.Equal(t, literal.Flags.Start, 4)
	assert.Equal(t, literal.Flags.Raw, "u")

	literal = mustParse(t, "/😀/", Options{})
	es = elements(literal)
	assert.Equal(t, len(es), 2)
	assert.Equal(t, es[0].(*Character).Value, rune(0xd83d))
	assert.Equal(t, es[0].(*Character).Raw, "�")
	assert.Equal(t, es[1].(*Character).Value, rune(0xde00))
	assert.Equal(t, literal.Raw, "/😀/")

	// Without u a quantifier only repeats the trailing surrogate.
	literal = mustParse(t, "/😀+/", Options{})
	es = elements(literal)
	assert.Equal(t, len(es), 2)
	assert.Equal(t, es[1].(*Quantifier).Element.(*Character).Value, rune(0xde00))

	literal = mustParse(t, "/(?<𝒜>.)/", Options{})
	assert.Equal(t, elements(literal)[0].(*CapturingGroup).Name, "𝒜")
}

func TestParseAnnexB(t *testing.T) {
	literal := mustParse(t, "/(?=a)*/", Options{})
	q := elements(literal)[0].(*Quantifier)
	assert.Equal(t, q.Raw, "(?=a)*")
	a := q.Element.(*Assertion)
	assert.Equal(t, a.Kind, AssertionLookahead)
	assert.Assert(t, a.Parent() == q)

	_, err := ParseRegExpLiteral("/(?=a)*/", Options{Strict: true})
	assert.Error(t, err, "Invalid regular expression: /(?=a)*/: Nothing to repeat")
	_, err = ParseRegExpLiteral("/(?<=a)*/", Options{})
	assert.Error(t, err, "Invalid regular expression: /(?<=a)*/: Nothing to repeat")
}

func TestParseFlags(t *testing.T) {
	literal := mustParse(t, "/a/dgimsuy", Options{})
	assert.DeepEqual(t, literal.Flags.FlagSet, FlagSet{
		Global:     true,
		IgnoreCase: true,
		Multiline:  true,
		Unicode:    true,
		Sticky:     true,
		DotAll:     true,
		HasIndices: true,
	})
	assert.Equal(t, literal.Flags.Raw, "dgimsuy")
	assert.Assert(t, literal.Flags.Parent() == literal)

	flags, err := NewParser(Options{}).ParseFlags("gy")
	assert.NilError(t, err)
	assert.DeepEqual(t, flags.FlagSet, FlagSet{Global: true, Sticky: true})
	assert.Equal(t, flags.End, 2)

	_, err = NewParser(Options{}).ParseFlags("gz")
	assert.Error(t, err, "Invalid regular expression: Invalid flag 'z'")
}

func TestParsePattern(t *testing.T) {
	p := NewParser(Options{})
	pattern, err := p.ParsePattern("a(b)", false)
	assert.NilError(t, err)
	assert.Equal(t, pattern.Start, 0)
	assert.Equal(t, pattern.End, 4)
	assert.Equal(t, pattern.Raw, "a(b)")
	assert.Assert(t, pattern.Parent() == nil)
	checkTree(t, encodeSource("a(b)"), pattern)

	pattern, err = p.ParsePattern(`\p{L}+`, true)
	assert.NilError(t, err)
	q := pattern.Alternatives[0].Elements[0].(*Quantifier)
	assert.Equal(t, q.Element.(*CharacterSet).Value, "L")

	_, err = p.ParsePattern("(", false)
	assert.Error(t, err, "Invalid regular expression: /(/: Unterminated group")
}

func TestParseLiteralUTF16(t *testing.T) {
	src := utf16.Encode([]rune("x = /a(b)/g;"))
	literal, err := NewParser(Options{}).ParseLiteralUTF16(src, 4, 11)
	assert.NilError(t, err)
	assert.Equal(t, literal.Start, 4)
	assert.Equal(t, literal.End, 11)
	assert.Equal(t, literal.Raw, "/a(b)/g")
	assert.Equal(t, literal.Pattern.Start, 5)
	assert.Equal(t, literal.Pattern.End, 9)
	assert.Equal(t, literal.Flags.Raw, "g")
	checkTree(t, src, literal)
}

func TestParserReuse(t *testing.T) {
	p := NewParser(Options{})
	first, err := p.ParseLiteral(`/(a)\1/`)
	assert.NilError(t, err)
	_, err = p.ParseLiteral("/(/")
	assert.Assert(t, err != nil)
	second, err := p.ParseLiteral("/(b)/")
	assert.NilError(t, err)

	group := elements(first)[0].(*CapturingGroup)
	assert.Equal(t, group.Raw, "(a)")
	assert.Equal(t, len(group.References), 1)
	assert.Equal(t, len(elements(second)[0].(*CapturingGroup).References), 0)
}

var treeSources = []string{
	"/a|b/",
	"/(a)\\1/",
	"/(?<x>a)\\k<x>/",
	"/^(?:ab|c(?=d))*?$/gm",
	"/[^a-z\\d-]+/i",
	"/(?<!a)\\bfoo\\B(?!x|y)/",
	"/\\p{Script=Greek}\\P{L}./su",
	"/😀+(?<𝒜>[😀-😂])/u",
	"/😀+/",
	"/a{2,3}?\\1(b)/",
	"/[\\c]\\c/",
	"/|||/",
	"/[]|[^]/",
	"/\\u{1F600}\\ud83d\\ude00/u",
	"/(((a)|b)c)+\\3/y",
}

func TestTreeInvariants(t *testing.T) {
	for _, source := range treeSources {
		literal := mustParse(t, source, Options{})
		assert.Equal(t, literal.Raw, source)
		checkTree(t, encodeSource(source), literal)
	}
}

// Every capturing group's references point back to it and every
// backreference is resolved.
func TestBackreferencesResolved(t *testing.T) {
	for _, source := range treeSources {
		literal := mustParse(t, source, Options{})
		var groups []*CapturingGroup
		var refs []*Backreference
		Visit(literal, VisitorHandlers{
			OnCapturingGroupEnter: func(g *CapturingGroup) { groups = append(groups, g) },
			OnBackreferenceEnter:  func(r *Backreference) { refs = append(refs, r) },
		})
		for _, r := range refs {
			assert.Assert(t, r.Resolved != nil, source)
			if r.Name == "" {
				assert.Assert(t, r.Resolved == groups[r.Ref-1], source)
			} else {
				assert.Equal(t, r.Resolved.Name, r.Name, source)
			}
		}
		total := 0
		for _, g := range groups {
			for _, r := range g.References {
				assert.Assert(t, r.Resolved == g, source)
			}
			total += len(g.References)
		}
		assert.Equal(t, total, len(refs), source)
	}
}

// A literal accepted by one edition is accepted by every later one.
func TestVersionMonotonic(t *testing.T) {
	sources := append([]string{
		"/a/u",
		"/a/y",
		"/a/s",
		"/a/d",
		"/(?<=a)b/",
		"/\\p{Script=Dogra}/u",
		"/\\p{Script=Toto}/u",
		"/\\p{EBase}/u",
		"/(?<\\u{1d49c}>.)/",
		"/\\k<a>/",
		"/(?=a)*/",
		"/a**/",
	}, treeSources...)
	versions := []EcmaVersion{Ecma5, Ecma2015, Ecma2016, Ecma2017, Ecma2018, Ecma2019, Ecma2020, Ecma2021, Ecma2022}
	for _, strict := range []bool{false, true} {
		for _, source := range sources {
			accepted := false
			for _, version := range versions {
				err := ValidateRegExpLiteral(source, Options{Strict: strict, EcmaVersion: version})
				if accepted {
					assert.NilError(t, err, "%s strict=%t version=%d", source, strict, version)
				}
				accepted = err == nil
			}
		}
	}
}

func TestVersionGating(t *testing.T) {
	for _, tt := range []struct {
		source string
		since  EcmaVersion
	}{
		{"/a/u", Ecma2015},
		{"/a/s", Ecma2018},
		{"/(?<=a)b/u", Ecma2018},
		{"/\\p{Script=Dogra}/u", Ecma2019},
		{"/\\p{Script=Toto}/u", Ecma2022},
		{"/\\p{EBase}/u", Ecma2021},
		{"/a/d", Ecma2022},
	} {
		prev := tt.since - 1
		if tt.since == Ecma2015 {
			prev = Ecma5
		}
		assert.Assert(t, ValidateRegExpLiteral(tt.source, Options{EcmaVersion: prev}) != nil, tt.source)
		assert.NilError(t, ValidateRegExpLiteral(tt.source, Options{EcmaVersion: tt.since}), tt.source)
	}
}

func TestMustParseRegExpLiteral(t *testing.T) {
	shouldPanic := func(cb func()) func(t *testing.T) {
		return func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("did not panic on invalid literal")
				}
			}()

			cb()
		}
	}
	t.Run("Invalid", shouldPanic(func() {
		MustParseRegExpLiteral("/a**/", Options{})
	}))
	t.Run("Valid", func(t *testing.T) {
		literal := MustParseRegExpLiteral("/a/", Options{})
		assert.Equal(t, literal.Pattern.Raw, "a")
	})
}
