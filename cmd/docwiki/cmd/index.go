package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/docwiki/internal/adapters/bbolt"
	"github.com/corey/docwiki/internal/adapters/reporter"
	"github.com/corey/docwiki/internal/app"
)

var indexQuiet bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the current project's doc comments",
	Long:  "Walks the project tree, parses every doc comment, and stores the results under .docwiki/. Unchanged files are skipped.",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexQuiet, "quiet", false, "Suppress warnings")
}

func runIndex(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("create .docwiki dirs: %w", err)
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	rep := reporter.NewConsole(os.Stderr, indexQuiet)
	ix := &app.Indexer{
		Root:      root,
		ProjectID: app.ProjectID(root),
		Extractor: newExtractor(root),
		Storage:   store,
		Reporter:  rep,
	}

	stats, err := ix.BuildIndex()
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if err := store.SaveWarningCount(ix.ProjectID, rep.Count()); err != nil {
		return fmt.Errorf("save warning count: %w", err)
	}

	fmt.Printf("indexed %d files, %d docs, %d warnings\n", stats.Files, stats.Docs, rep.Count())
	return nil
}
