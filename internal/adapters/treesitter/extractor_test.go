package treesitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	e := NewExtractor()
	assert.Equal(t, "java", e.detectLanguage("src/Main.java"))
	assert.Equal(t, "cpp", e.detectLanguage("lib/vec.hpp"))
	assert.Equal(t, "cpp", e.detectLanguage("lib/vec.CC"), "extension match is case-insensitive")
	assert.Equal(t, "c", e.detectLanguage("core.h"))
	assert.Equal(t, "javascript", e.detectLanguage("app.jsx"))
	assert.Equal(t, "scala", e.detectLanguage("Doc.scala"))
	assert.Equal(t, "", e.detectLanguage("script.py"))
	assert.Equal(t, "", e.detectLanguage("noextension"))
}

func TestSupportsExtension(t *testing.T) {
	e := NewExtractor()
	// Grammar-mapped extensions.
	assert.True(t, e.SupportsExtension(".java"))
	assert.True(t, e.SupportsExtension(".SCALA"))
	// Covered only by the scanner fallback.
	assert.True(t, e.SupportsExtension(".ts"))
	// Not a doc-comment language.
	assert.False(t, e.SupportsExtension(".py"))
	assert.False(t, e.SupportsExtension(".go"))
	assert.False(t, e.SupportsExtension(""))
}

func TestExtractComments_KeepsOnlyDocComments(t *testing.T) {
	// Holds on both extraction paths: comment nodes from a compiled-in
	// grammar, or the byte scanner when none is available.
	src := []byte(`/* plain block comment */
// line comment
/** Greets the user.
 * @param name who to greet
 */
class Greeter {}
`)
	e := NewExtractor()
	comments, err := e.ExtractComments("Greeter.java", src)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, 3, comments[0].Line)
	assert.Contains(t, comments[0].Text, "@param name")
	assert.True(t, strings.HasPrefix(comments[0].Text, "/**"))
}

func TestExtractComments_EmptySource(t *testing.T) {
	e := NewExtractor()
	comments, err := e.ExtractComments("Main.java", nil)
	require.NoError(t, err)
	assert.Nil(t, comments)
}

func TestExtractComments_UnknownExtensionUsesScanner(t *testing.T) {
	// .ts has no registered grammar; the scanner fallback still extracts.
	src := []byte("/** Doc. */\nconst x = 1;\n")
	e := NewExtractor()
	comments, err := e.ExtractComments("app.ts", src)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "/** Doc. */", comments[0].Text)
	assert.Equal(t, 1, comments[0].Line)
}
