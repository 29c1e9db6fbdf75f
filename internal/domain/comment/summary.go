package comment

import (
	"regexp"
	"strings"

	"github.com/corey/docwiki/internal/domain/wiki"
	"github.com/corey/docwiki/internal/ports"
)

var (
	// shortLineEnd finds the terminator of the short summary: the first '.'
	// or an HTML-ish tag. The '.*' is greedy, so on HTML-heavy first lines
	// the match spans wide and the summary truncates conservatively. That
	// matches the historical behavior this parser reproduces; don't "fix" it.
	shortLineEnd = regexp.MustCompile(`\.|</?.*>`)

	// cleanHTML removes layout-relevant HTML tags from the summary prefix.
	cleanHTML = regexp.MustCompile(`</?(p|h\d|pre|dl|dt|dd|ol|ul|li|blockquote|div|hr|br|br).*/?>`)
)

// shortSummary extracts the one-line digest: the body prefix up to the
// first terminator, HTML-stripped, wiki-parsed, and unwrapped from its
// leading paragraph. Anything that doesn't start with a sentence yields
// an empty text and a warning.
func shortSummary(docBody string, pos ports.Position, rep ports.Reporter) wiki.Inline {
	prefix := docBody
	if loc := shortLineEnd.FindStringIndex(docBody); loc != nil {
		prefix = docBody[:loc[0]]
	}
	cleaned := cleanHTML.ReplaceAllString(prefix, "")

	body := wiki.Parse(cleaned, pos, rep)
	if len(body) > 0 {
		if para, ok := body[0].(wiki.Paragraph); ok {
			return para.Text
		}
	}
	if strings.TrimSpace(prefix) != "" {
		rep.Warning(pos, "Comment must start with a sentence")
	}
	return wiki.Text("")
}
