// Package treesitter implements ports.Extractor using tree-sitter grammars.
// The source file is parsed with the grammar for its language and doc
// comment blocks are collected from the syntax tree, which keeps comment
// lookalikes inside string literals out of the results.
//
// Five doc-comment languages compile in via CGo by default. Building with
// -tags lean drops them; lean binaries load grammars dynamically from
// .so/.dylib files via the purego DynamicLoader, and fall back to the byte
// scanner when no grammar is available.
package treesitter

import (
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/corey/docwiki/internal/adapters/scanner"
	"github.com/corey/docwiki/internal/ports"
)

// Extractor pulls doc comment blocks out of source files.
type Extractor struct {
	languages map[string]*tree_sitter.Language // lang name -> grammar
	extToLang map[string]string                // extension -> lang name
	loader    *DynamicLoader                   // optional: loads grammars from .so/.dylib
	fallback  *scanner.Extractor
}

// NewExtractor creates an extractor with all built-in grammars registered.
func NewExtractor() *Extractor {
	e := &Extractor{
		languages: make(map[string]*tree_sitter.Language),
		extToLang: make(map[string]string),
		fallback:  scanner.NewExtractor(),
	}
	e.registerBuiltinLanguages()
	e.registerExtensions()
	return e
}

// SetLoader attaches a dynamic grammar loader used when a language has no
// compiled-in grammar.
func (e *Extractor) SetLoader(loader *DynamicLoader) {
	e.loader = loader
}

// addLang registers a grammar by language name.
func (e *Extractor) addLang(name string, lang *tree_sitter.Language) {
	if lang != nil {
		e.languages[name] = lang
	}
}

// registerExtensions maps file extensions to language names. Extensions
// are registered even when the grammar isn't compiled in — the dynamic
// loader or the scanner fallback covers those.
func (e *Extractor) registerExtensions() {
	add := func(lang string, exts ...string) {
		for _, ext := range exts {
			e.extToLang[ext] = lang
		}
	}
	add("c", ".c", ".h")
	add("cpp", ".cc", ".cpp", ".hh", ".hpp")
	add("java", ".java")
	add("javascript", ".js", ".jsx")
	add("scala", ".scala")
}

// SupportsExtension returns true if the extractor recognizes the extension,
// through a grammar or through the scanner fallback.
func (e *Extractor) SupportsExtension(ext string) bool {
	ext = strings.ToLower(ext)
	if _, ok := e.extToLang[ext]; ok {
		return true
	}
	return e.fallback.SupportsExtension(ext)
}

// ExtractComments parses path's source with its language grammar and
// collects doc comment nodes. Files without a grammar degrade to the byte
// scanner; unsupported files return nil, nil.
func (e *Extractor) ExtractComments(path string, source []byte) ([]ports.RawComment, error) {
	if len(source) == 0 {
		return nil, nil
	}
	if !e.SupportsExtension(filepath.Ext(path)) {
		return nil, nil
	}

	langName := e.detectLanguage(path)
	lang := e.languages[langName]
	if lang == nil && langName != "" && e.loader != nil {
		if loaded, err := e.loader.LoadGrammar(langName); err == nil {
			e.languages[langName] = loaded
			lang = loaded
		}
	}
	if lang == nil {
		// No grammar — degrade to the scanner.
		return e.fallback.ExtractComments(path, source)
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, err
	}

	tree := parser.Parse(source, nil)
	defer tree.Close()

	var comments []ports.RawComment
	collectComments(tree.RootNode(), source, &comments)
	return comments, nil
}

// detectLanguage maps a file path to a registered language name, or "".
func (e *Extractor) detectLanguage(path string) string {
	return e.extToLang[strings.ToLower(filepath.Ext(path))]
}

// collectComments walks the syntax tree and keeps every comment node whose
// text opens with the doc marker. Line numbers are 1-based.
func collectComments(n *tree_sitter.Node, source []byte, out *[]ports.RawComment) {
	kind := n.Kind()
	if kind == "comment" || kind == "block_comment" {
		text := string(source[n.StartByte():n.EndByte()])
		if strings.HasPrefix(text, "/**") {
			*out = append(*out, ports.RawComment{
				Text: text,
				Line: int(n.StartPosition().Row) + 1,
			})
		}
		return
	}
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		collectComments(n.Child(i), source, out)
	}
}
