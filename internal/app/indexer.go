package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/docwiki/internal/domain/comment"
	"github.com/corey/docwiki/internal/ports"
)

// Directories skipped while walking a project tree. Matches the watch
// adapter's filter so indexing and watching cover the same files.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
	"dist":         true,
	"build":        true,
	".docwiki":     true,
	".next":        true,
	"target":       true,
}

// IndexStats summarizes one indexing run.
type IndexStats struct {
	Files int // source files whose docs were (re)stored
	Docs  int // doc comments parsed and stored
}

// Indexer extracts, parses and stores the doc comments of a project tree.
type Indexer struct {
	Root      string
	ProjectID string
	Extractor ports.Extractor
	Storage   ports.Storage
	Reporter  ports.Reporter
}

// BuildIndex walks the project tree and indexes every supported source
// file. Files whose recorded mtime is unchanged are skipped.
func (ix *Indexer) BuildIndex() (IndexStats, error) {
	var stats IndexStats

	known, err := ix.Storage.LoadFileMeta(ix.ProjectID)
	if err != nil {
		return stats, fmt.Errorf("load file meta: %w", err)
	}

	err = filepath.Walk(ix.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if info.IsDir() {
			if skipDirs[info.Name()] && path != ix.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !ix.Extractor.SupportsExtension(filepath.Ext(path)) {
			return nil
		}

		rel, err := filepath.Rel(ix.Root, path)
		if err != nil {
			return nil
		}
		mtime := info.ModTime().UnixNano()
		if known[rel] == mtime {
			return nil
		}

		docs, err := ix.IndexFile(path)
		if err != nil {
			return fmt.Errorf("index %s: %w", rel, err)
		}
		stats.Files++
		stats.Docs += docs
		return ix.Storage.SaveFileMeta(ix.ProjectID, rel, mtime)
	})
	return stats, err
}

// IndexFile re-parses one file's doc comments and replaces its stored
// records. Returns the number of docs stored.
func (ix *Indexer) IndexFile(path string) (int, error) {
	rel, err := filepath.Rel(ix.Root, path)
	if err != nil {
		rel = path
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read: %w", err)
	}

	raws, err := ix.Extractor.ExtractComments(path, source)
	if err != nil {
		return 0, fmt.Errorf("extract: %w", err)
	}

	recs := make([]ports.DocRecord, 0, len(raws))
	for _, raw := range raws {
		pos := ports.Position{File: rel, Line: raw.Line}
		doc := comment.Parse(raw.Text, pos, ix.Reporter)
		data, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("encode doc at %s: %w", pos, err)
		}
		recs = append(recs, ports.DocRecord{File: rel, Line: raw.Line, Data: data})
	}

	if err := ix.Storage.SaveDocs(ix.ProjectID, rel, recs); err != nil {
		return 0, fmt.Errorf("save docs: %w", err)
	}
	return len(recs), nil
}

// RemoveFile drops a deleted file's docs from the index.
func (ix *Indexer) RemoveFile(path string) error {
	rel, err := filepath.Rel(ix.Root, path)
	if err != nil {
		rel = path
	}
	return ix.Storage.DeleteFile(ix.ProjectID, rel)
}
