package dump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"

	"github.com/auvred/regexsyntax"
)

type fixture struct {
	Source string        `yaml:"source"`
	AST    yaml.MapSlice `yaml:"ast"`
	Events []string      `yaml:"events"`
}

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	assert.NilError(t, err)
	assert.Assert(t, len(paths) > 0)

	for _, path := range paths {
		path := path
		t.Run(strings.TrimSuffix(filepath.Base(path), ".yaml"), func(t *testing.T) {
			data, err := os.ReadFile(path)
			assert.NilError(t, err)
			var f fixture
			assert.NilError(t, yaml.UnmarshalStrict(data, &f))

			literal, err := regexsyntax.ParseRegExpLiteral(f.Source, regexsyntax.Options{})
			assert.NilError(t, err)

			out, err := YAML(literal)
			assert.NilError(t, err)
			var got yaml.MapSlice
			assert.NilError(t, yaml.Unmarshal(out, &got))
			assert.DeepEqual(t, got, f.AST)

			if f.Events != nil {
				assert.DeepEqual(t, Events(literal), f.Events)
			}
		})
	}
}

func TestNode(t *testing.T) {
	literal := regexsyntax.MustParseRegExpLiteral("/a/g", regexsyntax.Options{})
	got := Node(literal.Pattern.Alternatives[0].Elements[0])
	assert.DeepEqual(t, got, yaml.MapSlice{
		{Key: "type", Value: "Character"},
		{Key: "start", Value: 1},
		{Key: "end", Value: 2},
		{Key: "raw", Value: "a"},
		{Key: "value", Value: 97},
	})

	flags := Node(literal.Flags)
	assert.Equal(t, len(flags), 11)
	assert.DeepEqual(t, flags[5], yaml.MapItem{Key: "global", Value: true})
}

func TestNodeQuantifierBounds(t *testing.T) {
	literal := regexsyntax.MustParseRegExpLiteral("/a{2,5}b*/", regexsyntax.Options{})
	es := literal.Pattern.Alternatives[0].Elements

	bounded := Node(es[0])
	assert.DeepEqual(t, bounded[5], yaml.MapItem{Key: "max", Value: 5})
	unbounded := Node(es[1])
	assert.DeepEqual(t, unbounded[5], yaml.MapItem{Key: "max", Value: Infinity})

	huge := regexsyntax.MustParseRegExpLiteral("/a{1,99999999999999999999}/", regexsyntax.Options{})
	explicit := Node(huge.Pattern.Alternatives[0].Elements[0])
	assert.DeepEqual(t, explicit[5], yaml.MapItem{Key: "max", Value: regexsyntax.Infinity - 1})
}

func TestYAMLText(t *testing.T) {
	literal := regexsyntax.MustParseRegExpLiteral(`/(?<year>\d{4})\k<year>/`, regexsyntax.Options{})
	out, err := YAML(literal)
	assert.NilError(t, err)
	text := string(out)
	assert.Assert(t, strings.HasPrefix(text, "type: RegExpLiteral\n"))
	assert.Assert(t, strings.Contains(text, "name: year\n"))
	assert.Assert(t, strings.Contains(text, "ref: year\n"))
}

func TestEvents(t *testing.T) {
	literal := regexsyntax.MustParseRegExpLiteral("/a|/", regexsyntax.Options{})
	assert.DeepEqual(t, Events(literal), []string{
		"enter:RegExpLiteral:/a|/",
		"enter:Pattern:a|",
		"enter:Alternative:a",
		"enter:Character:a",
		"leave:Character:a",
		"leave:Alternative:a",
		"enter:Alternative:",
		"leave:Alternative:",
		"leave:Pattern:a|",
		"enter:Flags:",
		"leave:Flags:",
		"leave:RegExpLiteral:/a|/",
	})
}
