package glue

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestHeaders(t *testing.T) {
	u, err := url.Parse("https://api.example.com/")
	require.NoError(t, err)

	c := New(u, WithAPIKey("secret"), WithUserAgent("glue-cli/test"))

	req, err := c.NewPostRequest("documents/1/relationships/related_items", map[string]string{"k": "v"})
	require.NoError(t, err)

	assert.Equal(t, "secret", req.Header.Get(headerAPIKey))
	assert.Equal(t, "glue-cli/test", req.Header.Get("User-Agent"))
	assert.Equal(t, contentTypeJSONAPI, req.Header.Get("Content-Type"))
	assert.Equal(t, "https://api.example.com/documents/1/relationships/related_items", req.URL.String())
}

func TestNewRequestWithoutAPIKey(t *testing.T) {
	u, err := url.Parse("https://api.example.com/")
	require.NoError(t, err)

	c := New(u)

	req, err := c.NewDeleteRequest("documents/1/relationships/related_items", nil)
	require.NoError(t, err)

	_, present := req.Header[http.CanonicalHeaderKey(headerAPIKey)]
	assert.False(t, present, "no key configured means no credential header at all")
	assert.Empty(t, req.Header.Get("Content-Type"), "no body means no content type")
}

func TestDoReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":[{"detail":"bad"}]}`))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)

	c := New(u)
	req, err := c.NewPostRequest("documents/1/relationships/related_items", map[string]string{})
	require.NoError(t, err)

	err = c.Do(context.Background(), req, nil)

	var aerr *APIError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, http.StatusUnprocessableEntity, aerr.StatusCode)
	assert.JSONEq(t, `{"errors":[{"detail":"bad"}]}`, string(aerr.Body))
}

func TestDoPropagatesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	srv.Close()

	c := New(u)
	req, err := c.NewPostRequest("documents/1/relationships/related_items", map[string]string{})
	require.NoError(t, err)

	err = c.Do(context.Background(), req, nil)
	require.Error(t, err)

	var aerr *APIError
	assert.False(t, errors.As(err, &aerr), "transport failures must not be rewrapped")
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	c, _ := newTestClient(t, WithMetrics(reg))

	_, err := c.RelatedItems.Delete(context.Background(), ResourceTypeDocuments, 1, 2)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "glue_client_requests_total")
	assert.Contains(t, names, "glue_client_request_duration_seconds")
}
