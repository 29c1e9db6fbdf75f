// Package search normalizes lookup queries for matching against flattened
// doc text. Queries split the way symbol names do, so "getUserToken",
// "get_user_token" and "get user token" all produce the same tokens.
package search

import (
	"strings"
	"unicode"
)

// Tokenize splits a query into normalized tokens:
//  1. split on slash, underscore, hyphen, dot, whitespace
//  2. split each part on CamelCase boundaries
//  3. lowercase
//  4. discard tokens shorter than 2 characters and duplicates
func Tokenize(query string) []string {
	parts := strings.FieldsFunc(query, func(r rune) bool {
		return r == '/' || r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
	})

	var tokens []string
	seen := make(map[string]bool)
	for _, part := range parts {
		for _, sub := range splitCamelCase(part) {
			tok := strings.ToLower(sub)
			if len(tok) < 2 || seen[tok] {
				continue
			}
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// splitCamelCase splits on lower→upper, letter↔digit, and the boundary
// before the last capital of an uppercase run ("APIKey" → "API", "Key").
func splitCamelCase(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		split := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			split = true
		case unicode.IsLetter(prev) && unicode.IsDigit(cur):
			split = true
		case unicode.IsDigit(prev) && unicode.IsLetter(cur):
			split = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur):
			split = i+1 < len(runes) && unicode.IsLower(runes[i+1])
		}
		if split {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}
