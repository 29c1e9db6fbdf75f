package wiki

import (
	"encoding/json"
	"fmt"
)

// JSON wire format for the AST. Blocks and inlines serialize as tagged
// objects ({"type": "...", ...}) so the closed sum types survive a
// round-trip through storage and the CLI's --json output.

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"text", string(t)})
}

func (c Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string   `json:"type"`
		Items []Inline `json:"items"`
	}{"chain", []Inline(c)})
}

func marshalSpan(typ string, inner Inline) ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Inner Inline `json:"inner"`
	}{typ, inner})
}

func (b Bold) MarshalJSON() ([]byte, error)        { return marshalSpan("bold", b.Inner) }
func (i Italic) MarshalJSON() ([]byte, error)      { return marshalSpan("italic", i.Inner) }
func (u Underline) MarshalJSON() ([]byte, error)   { return marshalSpan("underline", u.Inner) }
func (s Superscript) MarshalJSON() ([]byte, error) { return marshalSpan("superscript", s.Inner) }
func (s Subscript) MarshalJSON() ([]byte, error)   { return marshalSpan("subscript", s.Inner) }

func (m Monospace) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"monospace", string(m)})
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Target string `json:"target"`
		Title  string `json:"title,omitempty"`
	}{"link", l.Target, l.Title})
}

func (p Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text Inline `json:"text"`
	}{"paragraph", p.Text})
}

func (t Title) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Level int    `json:"level"`
		Text  Inline `json:"text"`
	}{"title", t.Level, t.Text})
}

func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"code", string(c)})
}

func (HorizontalRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"hrule"})
}

func (l UnorderedList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string  `json:"type"`
		Items []Block `json:"items"`
	}{"ul", l.Items})
}

func (l OrderedList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string  `json:"type"`
		Items []Block `json:"items"`
	}{"ol", l.Items})
}

// blockWire is the decode side of every block shape.
type blockWire struct {
	Type  string            `json:"type"`
	Level int               `json:"level"`
	Text  json.RawMessage   `json:"text"`
	Items []json.RawMessage `json:"items"`
}

// inlineWire is the decode side of every inline shape.
type inlineWire struct {
	Type   string            `json:"type"`
	Text   string            `json:"text"`
	Inner  json.RawMessage   `json:"inner"`
	Items  []json.RawMessage `json:"items"`
	Target string            `json:"target"`
	Title  string            `json:"title"`
}

// UnmarshalJSON decodes a tagged block array back into a Body.
func (b *Body) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(Body, 0, len(raws))
	for _, raw := range raws {
		blk, err := UnmarshalBlock(raw)
		if err != nil {
			return err
		}
		out = append(out, blk)
	}
	*b = out
	return nil
}

// UnmarshalBlock decodes one tagged block object.
func UnmarshalBlock(data []byte) (Block, error) {
	var w blockWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	switch w.Type {
	case "paragraph":
		text, err := UnmarshalInline(w.Text)
		if err != nil {
			return nil, err
		}
		return Paragraph{Text: text}, nil
	case "title":
		text, err := UnmarshalInline(w.Text)
		if err != nil {
			return nil, err
		}
		return Title{Text: text, Level: w.Level}, nil
	case "code":
		var text string
		if err := json.Unmarshal(w.Text, &text); err != nil {
			return nil, err
		}
		return Code(text), nil
	case "hrule":
		return HorizontalRule{}, nil
	case "ul", "ol":
		items := make([]Block, 0, len(w.Items))
		for _, raw := range w.Items {
			blk, err := UnmarshalBlock(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, blk)
		}
		if w.Type == "ol" {
			return OrderedList{Items: items}, nil
		}
		return UnorderedList{Items: items}, nil
	default:
		return nil, fmt.Errorf("wiki: unknown block type %q", w.Type)
	}
}

// UnmarshalInline decodes one tagged inline object.
func UnmarshalInline(data []byte) (Inline, error) {
	var w inlineWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	inner := func() (Inline, error) { return UnmarshalInline(w.Inner) }
	switch w.Type {
	case "text":
		return Text(w.Text), nil
	case "chain":
		items := make(Chain, 0, len(w.Items))
		for _, raw := range w.Items {
			in, err := UnmarshalInline(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, in)
		}
		return items, nil
	case "bold":
		in, err := inner()
		return Bold{Inner: in}, err
	case "italic":
		in, err := inner()
		return Italic{Inner: in}, err
	case "underline":
		in, err := inner()
		return Underline{Inner: in}, err
	case "superscript":
		in, err := inner()
		return Superscript{Inner: in}, err
	case "subscript":
		in, err := inner()
		return Subscript{Inner: in}, err
	case "monospace":
		return Monospace(w.Text), nil
	case "link":
		return Link{Target: w.Target, Title: w.Title}, nil
	default:
		return nil, fmt.Errorf("wiki: unknown inline type %q", w.Type)
	}
}
