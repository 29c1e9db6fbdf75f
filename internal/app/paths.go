// Package app wires the domain parser to the ports: indexing a project
// tree, searching stored docs, and the watch loop. It depends only on the
// port interfaces; concrete adapters are injected by the CLI.
package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem layout of the .docwiki/ project
// directory. All fields are pre-computed strings.
type Paths struct {
	Root        string // .docwiki/
	DB          string // .docwiki/docwiki.db
	GrammarsDir string // .docwiki/grammars/
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".docwiki")
	return &Paths{
		Root:        root,
		DB:          filepath.Join(root, "docwiki.db"),
		GrammarsDir: filepath.Join(root, "grammars"),
	}
}

// EnsureDirs creates the .docwiki/ subdirectories. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.GrammarsDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

// ProjectID derives the storage namespace for a project root.
func ProjectID(projectRoot string) string {
	return filepath.Base(projectRoot)
}
