// Package ahocorasick provides multi-keyword matching over flattened doc
// text using an Aho-Corasick automaton. One automaton is compiled per
// query, then every stored doc is scanned in O(len(text)).
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher compiles a set of lowercase keywords and reports which of them
// occur in a given text.
type Matcher struct {
	automaton aho.AhoCorasick
	keywords  []string
	built     bool
}

// Build compiles the automaton from the given keywords.
func (m *Matcher) Build(keywords []string) {
	m.keywords = make([]string, len(keywords))
	copy(m.keywords, keywords)

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(keywords)
	m.built = true
}

// Match returns the distinct keywords found in content, in pattern order.
func (m *Matcher) Match(content string) []string {
	if !m.built || len(m.keywords) == 0 {
		return nil
	}
	matches := m.automaton.FindAll(content)
	if len(matches) == 0 {
		return nil
	}

	found := make(map[int]bool, len(matches))
	for i := range matches {
		found[int(matches[i].Pattern())] = true
	}
	var result []string
	for i, kw := range m.keywords {
		if found[i] {
			result = append(result, kw)
		}
	}
	return result
}

// MatchCount returns how many distinct keywords occur in content.
func (m *Matcher) MatchCount(content string) int {
	return len(m.Match(content))
}
