package wiki

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_BodyRoundTrip(t *testing.T) {
	body := Body{
		Title{Text: Text("Overview"), Level: 2},
		Paragraph{Text: Chain{
			Text("uses "),
			Bold{Inner: Text("styles")},
			Link{Target: "http://x", Title: "docs"},
			Subscript{Inner: Text("s")},
		}},
		Code("val x = 1"),
		HorizontalRule{},
		OrderedList{Items: []Block{
			Paragraph{Text: Text("one")},
			UnorderedList{Items: []Block{Paragraph{Text: Monospace("two")}}},
		}},
	}

	data, err := json.Marshal(body)
	require.NoError(t, err)

	var got Body
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, body, got)
}

func TestJSON_TaggedShape(t *testing.T) {
	data, err := json.Marshal(Body{Paragraph{Text: Text("hi")}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"paragraph","text":{"type":"text","text":"hi"}}]`, string(data))
}

func TestJSON_UnknownBlockTypeFails(t *testing.T) {
	_, err := UnmarshalBlock([]byte(`{"type":"mystery"}`))
	assert.Error(t, err)
}

func TestJSON_UnknownInlineTypeFails(t *testing.T) {
	_, err := UnmarshalInline([]byte(`{"type":"mystery"}`))
	assert.Error(t, err)
}
