package cmd

import (
	"github.com/corey/docwiki/internal/adapters/treesitter"
	"github.com/corey/docwiki/internal/ports"
)

// newExtractor builds the doc comment extractor: tree-sitter grammars
// (compiled in, unless built with -tags lean) plus the dynamic loader for
// .so/.dylib grammars under .docwiki/grammars/. Files without a grammar
// degrade to the byte scanner inside the extractor.
func newExtractor(root string) ports.Extractor {
	e := treesitter.NewExtractor()
	e.SetLoader(treesitter.NewDynamicLoader(treesitter.DefaultGrammarPaths(root)))
	return e
}
