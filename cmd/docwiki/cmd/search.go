package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/docwiki/internal/adapters/bbolt"
	"github.com/corey/docwiki/internal/app"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed doc comments",
	Long:  "Keyword search over short summaries and bodies of indexed docs. Query terms split the way symbol names do (CamelCase, underscores, dots).",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum results to print")
}

func runSearch(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	store, err := bbolt.NewStore(app.NewPaths(root).DB)
	if err != nil {
		return fmt.Errorf("open database (run 'docwiki index' first): %w", err)
	}
	defer store.Close()

	hits, err := app.Search(store, app.ProjectID(root), strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("no matches")
		return nil
	}

	for i, h := range hits {
		if i == searchLimit {
			fmt.Printf("... %d more\n", len(hits)-searchLimit)
			break
		}
		fmt.Printf("%s:%d  %s\n", h.File, h.Line, h.Short)
	}
	return nil
}
