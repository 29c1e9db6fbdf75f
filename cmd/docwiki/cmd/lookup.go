package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/docwiki/internal/adapters/bbolt"
	"github.com/corey/docwiki/internal/app"
	"github.com/corey/docwiki/internal/domain/comment"
	"github.com/corey/docwiki/internal/domain/wiki"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <file[:line]>",
	Short: "Show indexed docs for a file",
	Long:  "Prints the stored doc comments of a project-relative file, optionally narrowed to the comment at a specific line.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print full documents as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	file := args[0]
	line := 0
	if i := strings.LastIndex(file, ":"); i > 0 {
		if n, err := strconv.Atoi(file[i+1:]); err == nil {
			file, line = file[:i], n
		}
	}

	root := projectRoot()
	store, err := bbolt.NewStore(app.NewPaths(root).DB)
	if err != nil {
		return fmt.Errorf("open database (run 'docwiki index' first): %w", err)
	}
	defer store.Close()

	recs, err := store.LoadDocs(app.ProjectID(root))
	if err != nil {
		return fmt.Errorf("load docs: %w", err)
	}

	var docs []parsedDoc
	for _, rec := range recs {
		if rec.File != file || (line != 0 && rec.Line != line) {
			continue
		}
		var doc comment.Comment
		if err := json.Unmarshal(rec.Data, &doc); err != nil {
			return fmt.Errorf("decode doc %s:%d: %w", rec.File, rec.Line, err)
		}
		docs = append(docs, parsedDoc{File: rec.File, Line: rec.Line, Doc: &doc})
	}
	if len(docs) == 0 {
		return fmt.Errorf("no docs indexed for %s", args[0])
	}

	if lookupJSON {
		out, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, d := range docs {
		short := ""
		if d.Doc.Short != nil {
			short = wiki.FlattenInline(d.Doc.Short)
		}
		fmt.Printf("%s:%d  %s\n", d.File, d.Line, short)
		for _, sym := range sortedKeys(d.Doc.ValueParams) {
			fmt.Printf("    @param %s\n", sym)
		}
		for _, sym := range sortedKeys(d.Doc.Throws) {
			fmt.Printf("    @throws %s\n", sym)
		}
	}
	return nil
}

func sortedKeys(m map[string]wiki.Body) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
