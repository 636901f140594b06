// Package batch parses many literals with one Parser and remembers the
// outcome of recent ones.
package batch

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/auvred/regexsyntax"
)

// Stats counts cache lookups.
type Stats struct {
	Hits   int
	Misses int
}

type result struct {
	literal *regexsyntax.RegExpLiteral
	err     error
}

// Validator parses literals and caches both trees and syntax errors by
// literal text. Returned trees are shared between callers asking for the
// same literal and must not be modified.
//
// A Validator is not safe for concurrent use.
type Validator struct {
	parser *regexsyntax.Parser
	cache  *lru.Cache
	stats  Stats
}

// New returns a Validator remembering up to size literals.
func New(opts regexsyntax.Options, size int) (*Validator, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "creating cache of %d literals", size)
	}
	return &Validator{
		parser: regexsyntax.NewParser(opts),
		cache:  cache,
	}, nil
}

// Parse parses literal, or returns the result of an earlier call with the
// same text.
func (v *Validator) Parse(literal string) (*regexsyntax.RegExpLiteral, error) {
	if cached, ok := v.cache.Get(literal); ok {
		v.stats.Hits++
		r := cached.(result)
		return r.literal, r.err
	}
	v.stats.Misses++

	tree, err := v.parser.ParseLiteral(literal)
	v.cache.Add(literal, result{literal: tree, err: err})
	return tree, err
}

// Result is the outcome of one literal of ParseAll.
type Result struct {
	Literal string
	Tree    *regexsyntax.RegExpLiteral
	Err     error
}

// ParseAll parses every literal in order.
func (v *Validator) ParseAll(literals []string) []Result {
	results := make([]Result, 0, len(literals))
	for _, l := range literals {
		tree, err := v.Parse(l)
		results = append(results, Result{Literal: l, Tree: tree, Err: err})
	}
	return results
}

// Stats returns the cache counters since New.
func (v *Validator) Stats() Stats {
	return v.stats
}

// Len returns the number of cached literals.
func (v *Validator) Len() int {
	return v.cache.Len()
}
