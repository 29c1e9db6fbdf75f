//go:build !lean

package treesitter

// This file registers the compiled-in grammars. It is included in the
// default build but excluded with -tags lean, which produces a binary that
// loads grammars dynamically from .so/.dylib files.

import (
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	ts_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	ts_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	ts_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_scala "github.com/tree-sitter/tree-sitter-scala/bindings/go"
)

// langPtr wraps a Language() call that returns unsafe.Pointer.
func langPtr(p unsafe.Pointer) *tree_sitter.Language {
	return tree_sitter.NewLanguage(p)
}

// registerBuiltinLanguages adds the compiled-in grammars to the extractor.
func (e *Extractor) registerBuiltinLanguages() {
	e.addLang("c", langPtr(ts_c.Language()))
	e.addLang("cpp", langPtr(ts_cpp.Language()))
	e.addLang("java", langPtr(ts_java.Language()))
	e.addLang("javascript", langPtr(ts_javascript.Language()))
	e.addLang("scala", langPtr(ts_scala.Language()))
}
