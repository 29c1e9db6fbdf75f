// Package scanner implements ports.Extractor with a grammar-free byte scan.
// It finds "/** ... */" blocks while skipping string literals, character
// literals and line comments, so a doc-comment-shaped string inside code
// does not produce a phantom comment. It serves lean builds (no compiled-in
// tree-sitter grammars) and extensions the grammar set doesn't cover.
package scanner

import (
	"path/filepath"
	"strings"

	"github.com/corey/docwiki/internal/ports"
)

// docExtensions are the C-family extensions whose doc comments use the
// "/** ... */" dialect.
var docExtensions = map[string]bool{
	".c":     true,
	".h":     true,
	".cc":    true,
	".cpp":   true,
	".hh":    true,
	".hpp":   true,
	".java":  true,
	".js":    true,
	".jsx":   true,
	".ts":    true,
	".tsx":   true,
	".scala": true,
}

// Extractor is the fallback doc comment extractor.
type Extractor struct{}

// NewExtractor returns a scanner-backed extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// SupportsExtension returns true for C-family source extensions.
func (e *Extractor) SupportsExtension(ext string) bool {
	return docExtensions[strings.ToLower(ext)]
}

// ExtractComments scans source for doc comment blocks. It never fails on
// malformed input; an unterminated block is simply dropped. Files with an
// unsupported extension return nil, nil.
func (e *Extractor) ExtractComments(path string, source []byte) ([]ports.RawComment, error) {
	if !e.SupportsExtension(filepath.Ext(path)) {
		return nil, nil
	}
	return Scan(source), nil
}

// Scan is the state machine behind ExtractComments. It scans any input,
// regardless of the file it came from.
func Scan(source []byte) []ports.RawComment {
	var comments []ports.RawComment
	line := 1
	i := 0
	n := len(source)

	for i < n {
		c := source[i]
		switch {
		case c == '\n':
			line++
			i++

		case c == '"' || c == '\'':
			// String or char literal: skip to the closing quote,
			// honoring backslash escapes.
			quote := c
			i++
			for i < n && source[i] != quote {
				if source[i] == '\\' && i+1 < n {
					i++
				}
				if source[i] == '\n' {
					line++
				}
				i++
			}
			i++

		case c == '/' && i+1 < n && source[i+1] == '/':
			for i < n && source[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < n && source[i+1] == '*':
			start := i
			startLine := line
			isDoc := i+2 < n && source[i+2] == '*'
			i += 2
			for i+1 < n && !(source[i] == '*' && source[i+1] == '/') {
				if source[i] == '\n' {
					line++
				}
				i++
			}
			if i+1 >= n {
				return comments // unterminated block
			}
			i += 2
			if isDoc {
				comments = append(comments, ports.RawComment{
					Text: string(source[start:i]),
					Line: startLine,
				})
			}

		default:
			i++
		}
	}
	return comments
}
