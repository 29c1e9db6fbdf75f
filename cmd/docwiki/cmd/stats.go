package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/docwiki/internal/adapters/bbolt"
	"github.com/corey/docwiki/internal/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	store, err := bbolt.NewStore(app.NewPaths(root).DB)
	if err != nil {
		return fmt.Errorf("open database (run 'docwiki index' first): %w", err)
	}
	defer store.Close()

	projectID := app.ProjectID(root)
	recs, err := store.LoadDocs(projectID)
	if err != nil {
		return fmt.Errorf("load docs: %w", err)
	}
	meta, err := store.LoadFileMeta(projectID)
	if err != nil {
		return fmt.Errorf("load file meta: %w", err)
	}
	warnings, err := store.LoadWarningCount(projectID)
	if err != nil {
		return fmt.Errorf("load warning count: %w", err)
	}

	files := make(map[string]int)
	for _, rec := range recs {
		files[rec.File]++
	}

	fmt.Printf("project:       %s\n", projectID)
	fmt.Printf("indexed files: %d\n", len(meta))
	fmt.Printf("files w/ docs: %d\n", len(files))
	fmt.Printf("docs:          %d\n", len(recs))
	fmt.Printf("warnings:      %d\n", warnings)
	return nil
}
