package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/docwiki/internal/adapters/reporter"
	"github.com/corey/docwiki/internal/domain/comment"
	"github.com/corey/docwiki/internal/domain/wiki"
	"github.com/corey/docwiki/internal/ports"
)

var (
	parseJSON  bool
	parseQuiet bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse one file's doc comments",
	Long:  "Extracts every /** ... */ comment from the file, parses it, and prints the results. Warnings go to stderr.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print full documents as JSON")
	parseCmd.Flags().BoolVar(&parseQuiet, "quiet", false, "Suppress warnings")
}

// parsedDoc pairs a parsed document with its location for --json output.
type parsedDoc struct {
	File string           `json:"file"`
	Line int              `json:"line"`
	Doc  *comment.Comment `json:"doc"`
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	extractor := newExtractor(projectRoot())
	raws, err := extractor.ExtractComments(path, source)
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}

	rep := reporter.NewConsole(os.Stderr, parseQuiet)
	var docs []parsedDoc
	for _, raw := range raws {
		pos := ports.Position{File: path, Line: raw.Line}
		docs = append(docs, parsedDoc{
			File: path,
			Line: raw.Line,
			Doc:  comment.Parse(raw.Text, pos, rep),
		})
	}

	if parseJSON {
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
	}
	if n := rep.Count(); n > 0 && !parseQuiet {
		fmt.Fprintf(os.Stderr, "%d warning(s)\n", n)
	}
	return nil
}
