package ports

// RawComment is one documentation comment block pulled out of a source file,
// delimiters included ("/** ... */"). Line is 1-based and points at the line
// the opening delimiter starts on.
type RawComment struct {
	Text string
	Line int
}

// Extractor pulls raw doc comment blocks out of source files. The concrete
// implementation (tree-sitter) lives in internal/adapters/treesitter; a
// grammar-free byte scanner in internal/adapters/scanner serves as fallback.
type Extractor interface {
	// ExtractComments returns all "/**"-style doc comment blocks in source,
	// in file order. Returns nil, nil for unsupported files (not an error).
	ExtractComments(path string, source []byte) ([]RawComment, error)

	// SupportsExtension returns true if the extractor can handle files with
	// this extension (e.g., ".java", ".scala"). Includes the leading dot.
	SupportsExtension(ext string) bool
}
