package comment

import (
	"encoding/json"

	"github.com/corey/docwiki/internal/domain/wiki"
)

// commentWire mirrors Comment with a raw Short so the inline sum type can
// be dispatched by hand. Everything else decodes through the wiki codec.
type commentWire struct {
	Body        wiki.Body            `json:"body"`
	Short       json.RawMessage      `json:"short"`
	Authors     []wiki.Body          `json:"authors"`
	See         []wiki.Body          `json:"see"`
	Todo        []wiki.Body          `json:"todo"`
	Note        []wiki.Body          `json:"note"`
	Example     []wiki.Body          `json:"example"`
	Result      *wiki.Body           `json:"result"`
	Version     *wiki.Body           `json:"version"`
	Since       *wiki.Body           `json:"since"`
	Deprecated  *wiki.Body           `json:"deprecated"`
	Throws      map[string]wiki.Body `json:"throws"`
	ValueParams map[string]wiki.Body `json:"valueParams"`
	TypeParams  map[string]wiki.Body `json:"typeParams"`
}

// UnmarshalJSON decodes the tagged-union wire form produced by Marshal.
func (c *Comment) UnmarshalJSON(data []byte) error {
	var w commentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = Comment{
		Body:        w.Body,
		Authors:     w.Authors,
		See:         w.See,
		Todo:        w.Todo,
		Note:        w.Note,
		Example:     w.Example,
		Result:      w.Result,
		Version:     w.Version,
		Since:       w.Since,
		Deprecated:  w.Deprecated,
		Throws:      w.Throws,
		ValueParams: w.ValueParams,
		TypeParams:  w.TypeParams,
	}
	if len(w.Short) > 0 && string(w.Short) != "null" {
		short, err := wiki.UnmarshalInline(w.Short)
		if err != nil {
			return err
		}
		c.Short = short
	}
	return nil
}
