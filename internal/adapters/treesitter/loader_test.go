package treesitter

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSymbolName(t *testing.T) {
	assert.Equal(t, "tree_sitter_java", CSymbolName("java"))
	assert.Equal(t, "tree_sitter_cpp", CSymbolName("cpp"))
}

func TestLibExtension(t *testing.T) {
	if runtime.GOOS == "darwin" {
		assert.Equal(t, ".dylib", LibExtension())
	} else {
		assert.Equal(t, ".so", LibExtension())
	}
}

func TestDefaultGrammarPaths_ProjectLocalFirst(t *testing.T) {
	paths := DefaultGrammarPaths("/proj")
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join("/proj", ".docwiki", "grammars"), paths[0])
}

func TestDefaultGrammarPaths_NoProjectRoot(t *testing.T) {
	for _, p := range DefaultGrammarPaths("") {
		assert.NotContains(t, p, "/proj")
		assert.Contains(t, p, ".docwiki")
	}
}

func TestLoadGrammar_MissingLibraryErrors(t *testing.T) {
	dl := NewDynamicLoader([]string{t.TempDir()})
	lang, err := dl.LoadGrammar("java")
	assert.Nil(t, lang)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in search paths")
}

func TestLoadGrammar_EmptySearchPaths(t *testing.T) {
	dl := NewDynamicLoader(nil)
	_, err := dl.LoadGrammar("scala")
	assert.Error(t, err)
}
