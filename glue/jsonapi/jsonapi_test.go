package jsonapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteAttributes struct {
	Notes string `json:"notes"`
}

func TestDocumentSingletonMarshal(t *testing.T) {
	doc := NewDocument(Resource[noteAttributes]{
		Type:       "related_items",
		Attributes: noteAttributes{Notes: "hello"},
	})

	bs, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":{"type":"related_items","attributes":{"notes":"hello"}}}`, string(bs))

	// data must be an object, not a one-element array
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(bs, &m))
	_, isObject := m["data"].(map[string]interface{})
	assert.True(t, isObject)
}

func TestDocumentBatchMarshal(t *testing.T) {
	doc := NewBatchDocument([]Resource[noteAttributes]{
		{Type: "related_items", Attributes: noteAttributes{Notes: "first"}},
		{Type: "related_items", Attributes: noteAttributes{Notes: "second"}},
		{Type: "related_items", Attributes: noteAttributes{Notes: "third"}},
	})

	bs, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(bs, &m))

	data, isArray := m["data"].([]interface{})
	require.True(t, isArray)
	require.Len(t, data, 3)

	for i, want := range []string{"first", "second", "third"} {
		entry := data[i].(map[string]interface{})
		attrs := entry["attributes"].(map[string]interface{})
		assert.Equal(t, want, attrs["notes"])
	}
}

func TestDocumentSingleElementBatchStaysArray(t *testing.T) {
	doc := NewBatchDocument([]Resource[noteAttributes]{
		{Type: "related_items", Attributes: noteAttributes{Notes: "only"}},
	})

	bs, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(bs, &m))
	_, isArray := m["data"].([]interface{})
	assert.True(t, isArray)
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := NewBatchDocument([]Resource[noteAttributes]{
		{Type: "related_items", Attributes: noteAttributes{Notes: "a"}},
		{Type: "related_items", Attributes: noteAttributes{Notes: "b"}},
	})

	first, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(first, &m))

	second, err := json.Marshal(m)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestResponseUnmarshalSingle(t *testing.T) {
	var r Response
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"id":"7","type":"attachments","attributes":{"name":"a.png"}}}`), &r))

	require.Len(t, r.Data, 1)
	assert.Equal(t, "7", r.Data[0].ID)
	assert.Equal(t, "attachments", r.Data[0].Type)
	assert.JSONEq(t, `{"name":"a.png"}`, string(r.Data[0].Attributes))
}

func TestResponseUnmarshalArray(t *testing.T) {
	var r Response
	require.NoError(t, json.Unmarshal([]byte(`{"data":[{"id":"1","type":"related_items"},{"id":"2","type":"related_items"}]}`), &r))

	require.Len(t, r.Data, 2)
	assert.Equal(t, "1", r.Data[0].ID)
	assert.Equal(t, "2", r.Data[1].ID)
}

func TestResponseUnmarshalNull(t *testing.T) {
	var r Response
	require.NoError(t, json.Unmarshal([]byte(`{"data":null}`), &r))
	assert.Empty(t, r.Data)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	assert.Empty(t, r.Data)
}
