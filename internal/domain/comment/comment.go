package comment

import (
	"github.com/corey/docwiki/internal/domain/wiki"
	"github.com/corey/docwiki/internal/ports"
)

// Comment is the structured form of one documentation comment.
// Every field is independently optional; map keys are symbol names.
type Comment struct {
	// Body is the parsed main content, everything before the first tag.
	Body wiki.Body `json:"body,omitempty"`

	// Short is the one-line digest extracted from the body's first
	// sentence. Empty comments carry Text("").
	Short wiki.Inline `json:"short,omitempty"`

	Authors []wiki.Body `json:"authors,omitempty"`
	See     []wiki.Body `json:"see,omitempty"`
	Todo    []wiki.Body `json:"todo,omitempty"`
	Note    []wiki.Body `json:"note,omitempty"`
	Example []wiki.Body `json:"example,omitempty"`

	Result     *wiki.Body `json:"result,omitempty"`
	Version    *wiki.Body `json:"version,omitempty"`
	Since      *wiki.Body `json:"since,omitempty"`
	Deprecated *wiki.Body `json:"deprecated,omitempty"`

	Throws      map[string]wiki.Body `json:"throws,omitempty"`
	ValueParams map[string]wiki.Body `json:"valueParams,omitempty"`
	TypeParams  map[string]wiki.Body `json:"typeParams,omitempty"`
}

// Parse turns a raw "/** ... */" comment into a Comment. It never fails:
// malformed input degrades to a best-effort result and every issue is
// reported as a warning attributed to pos. The parser holds no state
// between calls; concurrent calls are independent as long as rep is
// safe for concurrent use.
func Parse(raw string, pos ports.Position, rep ports.Reporter) *Comment {
	lines := cleanLines(raw, pos, rep)
	docBody, tags := split(lines)

	p := &projector{tags: tags, pos: pos, rep: rep}
	c := &Comment{
		Body:        wiki.Parse(docBody, pos, rep),
		Short:       shortSummary(docBody, pos, rep),
		Authors:     p.allTags("author"),
		See:         p.allTags("see"),
		Todo:        p.allTags("todo"),
		Note:        p.allTags("note"),
		Example:     p.allTags("example"),
		Result:      p.oneTag("return"),
		Version:     p.oneTag("version"),
		Since:       p.oneTag("since"),
		Deprecated:  p.oneTag("deprecated"),
		Throws:      p.allSymsOneTag("throws"),
		ValueParams: p.allSymsOneTag("param"),
		TypeParams:  p.allSymsOneTag("tparam"),
	}
	p.warnLeftovers()
	return c
}
