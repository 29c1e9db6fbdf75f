//go:build lean

package treesitter

// This file is included only when building with -tags lean. It provides an
// empty registerBuiltinLanguages() — grammars are loaded dynamically from
// .so/.dylib files via the DynamicLoader, with the byte scanner covering
// languages that have no library installed.
//
// Build with: go build -tags lean ./cmd/docwiki/

// registerBuiltinLanguages is a no-op in lean builds.
func (e *Extractor) registerBuiltinLanguages() {}
