package glue

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	Path   string
	Vars   map[string]string
	Header http.Header
	Body   map[string]interface{}
}

type fakeAPI struct {
	requests []capturedRequest
}

func (a *fakeAPI) capture(w http.ResponseWriter, r *http.Request) {
	cr := capturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Vars:   mux.Vars(r),
		Header: r.Header.Clone(),
	}

	bs, _ := io.ReadAll(r.Body)
	if len(bs) > 0 {
		json.Unmarshal(bs, &cr.Body)
	}

	a.requests = append(a.requests, cr)

	w.Header().Set("Content-Type", contentTypeJSONAPI)
	fmt.Fprint(w, `{"data":{"id":"1","type":"related_items","attributes":{}}}`)
}

// newTestClient starts a fake API routed on the relationship path
// grammar and returns a client pointed at it.
func newTestClient(t *testing.T, opts ...ClientOpt) (*Client, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{}
	r := mux.NewRouter()
	r.HandleFunc("/{resource_type}/{resource_id}/relationships/{relation}", api.capture)
	r.HandleFunc("/{resource_type}/{resource_id}/relationships/{relation}/{id}", api.capture)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)

	return New(u, opts...), api
}

// data returns the request body's data member.
func (r capturedRequest) data() interface{} {
	return r.Body["data"]
}
