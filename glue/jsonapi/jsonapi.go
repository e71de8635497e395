// Package jsonapi holds the request and response envelopes shared by all
// API resources. A request document carries its data member either as a
// single resource object or as an array of them, depending on how it was
// constructed.
package jsonapi

import (
	"bytes"
	"encoding/json"
)

// Resource is a single resource object: a type name plus its attributes.
type Resource[T any] struct {
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

// Document is a request envelope. Built with NewDocument it serializes
// data as one object; built with NewBatchDocument it serializes data as
// an array, preserving the order the resources were given in.
type Document[T any] struct {
	resources []Resource[T]
	batch     bool
}

func NewDocument[T any](r Resource[T]) Document[T] {
	return Document[T]{resources: []Resource[T]{r}}
}

func NewBatchDocument[T any](rs []Resource[T]) Document[T] {
	return Document[T]{resources: rs, batch: true}
}

// Batch reports whether the document serializes data as an array.
func (d Document[T]) Batch() bool {
	return d.batch
}

// Resources returns the resource objects in serialization order.
func (d Document[T]) Resources() []Resource[T] {
	return d.resources
}

func (d Document[T]) MarshalJSON() ([]byte, error) {
	if d.batch {
		return json.Marshal(struct {
			Data []Resource[T] `json:"data"`
		}{Data: d.resources})
	}

	if len(d.resources) == 0 {
		return []byte(`{"data":null}`), nil
	}

	return json.Marshal(struct {
		Data Resource[T] `json:"data"`
	}{Data: d.resources[0]})
}

// ResponseResource is a resource object as returned by the API.
type ResponseResource struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

// Response is a response envelope. The API mirrors the request duality,
// so data may arrive as one object or as an array; either way the
// resources end up in Data.
type Response struct {
	Data []ResponseResource
}

func (r *Response) UnmarshalJSON(b []byte) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}

	data := bytes.TrimLeft(envelope.Data, " \t\r\n")
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		return json.Unmarshal(data, &r.Data)
	}

	var single ResponseResource
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	r.Data = []ResponseResource{single}
	return nil
}
