package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_FindsDocComment(t *testing.T) {
	src := []byte("int x;\n/** Doc. */\nint y;\n")
	comments := Scan(src)
	require.Len(t, comments, 1)
	assert.Equal(t, "/** Doc. */", comments[0].Text)
	assert.Equal(t, 2, comments[0].Line)
}

func TestScan_IgnoresPlainBlockComment(t *testing.T) {
	comments := Scan([]byte("/* not a doc comment */"))
	assert.Empty(t, comments)
}

func TestScan_IgnoresLineComments(t *testing.T) {
	comments := Scan([]byte("// /** looks like a doc */\nint x;\n"))
	assert.Empty(t, comments)
}

func TestScan_IgnoresStringContents(t *testing.T) {
	src := []byte(`String s = "/** not a comment */";` + "\n/** real */\n")
	comments := Scan(src)
	require.Len(t, comments, 1)
	assert.Equal(t, "/** real */", comments[0].Text)
	assert.Equal(t, 2, comments[0].Line)
}

func TestScan_MultilineLineNumbers(t *testing.T) {
	src := []byte("a\nb\n\n/** one\n * two\n */\nc\n/** second */\n")
	comments := Scan(src)
	require.Len(t, comments, 2)
	assert.Equal(t, 4, comments[0].Line)
	assert.Equal(t, 8, comments[1].Line)
}

func TestScan_UnterminatedBlockDropped(t *testing.T) {
	comments := Scan([]byte("/** never closed\nmore text"))
	assert.Empty(t, comments)
}

func TestScan_EscapedQuoteInString(t *testing.T) {
	src := []byte(`s = "a \" b /** x */";` + "\n/** doc */\n")
	comments := Scan(src)
	require.Len(t, comments, 1)
	assert.Equal(t, "/** doc */", comments[0].Text)
}

func TestExtractor_SupportsExtension(t *testing.T) {
	e := NewExtractor()
	assert.True(t, e.SupportsExtension(".java"))
	assert.True(t, e.SupportsExtension(".SCALA"))
	assert.False(t, e.SupportsExtension(".py"))
	assert.False(t, e.SupportsExtension(".go"))
}
