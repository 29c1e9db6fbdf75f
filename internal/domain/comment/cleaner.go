package comment

import (
	"regexp"
	"strings"

	"github.com/corey/docwiki/internal/ports"
)

// cleanCommentLine matches a line beginning with a '*' marker optionally
// followed by one whitespace; the capture is the line's content.
var cleanCommentLine = regexp.MustCompile(`^\*\s?(.*)$`)

// cleanLines strips the outer comment delimiters and the per-line leading
// '*' markers. Empty lines are dropped; a non-empty line without a marker
// is kept verbatim (trimmed) and reported.
func cleanLines(raw string, pos ports.Position, rep ports.Reporter) []string {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "/*")
	body = strings.TrimSuffix(body, "*/")

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		l := strings.TrimSpace(line)
		if m := cleanCommentLine.FindStringSubmatch(l); m != nil {
			lines = append(lines, m[1])
		} else if l == "" {
			continue
		} else {
			rep.Warning(pos, "Comment has no start-of-line marker ('*')")
			lines = append(lines, l)
		}
	}
	return lines
}
