package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/docwiki/internal/ports"
)

// Watch keeps the doc index in sync with the project tree until stop is
// closed. Changed files are re-indexed; removed files are dropped. Events
// for unsupported files are ignored.
func Watch(ix *Indexer, watcher ports.Watcher, stop <-chan struct{}, logf func(format string, args ...any)) error {
	err := watcher.Watch(ix.Root, func(path string) {
		if !ix.Extractor.SupportsExtension(filepath.Ext(path)) {
			return
		}
		if _, err := os.Stat(path); err != nil {
			if removeErr := ix.RemoveFile(path); removeErr != nil {
				logf("drop %s: %v", path, removeErr)
				return
			}
			logf("dropped %s", relToRoot(ix.Root, path))
			return
		}
		docs, err := ix.IndexFile(path)
		if err != nil {
			logf("reindex %s: %v", path, err)
			return
		}
		logf("reindexed %s (%d docs)", relToRoot(ix.Root, path), docs)
	})
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	<-stop
	return watcher.Stop()
}

func relToRoot(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
