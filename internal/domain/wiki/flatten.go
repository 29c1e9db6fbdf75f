package wiki

import "strings"

// FlattenBody returns the style-free textual content of a body, blocks
// joined with newlines. Used for search indexing and summary checks.
func FlattenBody(b Body) string {
	parts := make([]string, 0, len(b))
	for _, blk := range b {
		if s := FlattenBlock(blk); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// FlattenBlock returns the textual content of a single block.
func FlattenBlock(b Block) string {
	switch v := b.(type) {
	case Paragraph:
		return FlattenInline(v.Text)
	case Title:
		return FlattenInline(v.Text)
	case Code:
		return string(v)
	case HorizontalRule:
		return ""
	case UnorderedList:
		return FlattenBody(Body(v.Items))
	case OrderedList:
		return FlattenBody(Body(v.Items))
	default:
		return ""
	}
}

// FlattenInline returns the textual content of an inline with all styling
// stripped. Links flatten to their title when present, else their target.
func FlattenInline(i Inline) string {
	switch v := i.(type) {
	case Text:
		return string(v)
	case Chain:
		var sb strings.Builder
		for _, item := range v {
			sb.WriteString(FlattenInline(item))
		}
		return sb.String()
	case Bold:
		return FlattenInline(v.Inner)
	case Italic:
		return FlattenInline(v.Inner)
	case Underline:
		return FlattenInline(v.Inner)
	case Superscript:
		return FlattenInline(v.Inner)
	case Subscript:
		return FlattenInline(v.Inner)
	case Monospace:
		return string(v)
	case Link:
		if v.Title != "" {
			return v.Title
		}
		return v.Target
	default:
		return ""
	}
}
