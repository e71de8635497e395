// Package glue is a client for the documentation-management REST API.
// Every operation builds a JSON:API request document, issues a single
// HTTP call with the API key set on that request, and returns the
// decoded response envelope.
package glue

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/docuglue/glue-go/glue/jsonapi"
)

const (
	contentTypeJSONAPI = "application/vnd.api+json"
	headerAPIKey       = "x-api-key"
)

type service struct {
	client *Client
}

type Client struct {
	baseURL   *url.URL
	client    *http.Client
	common    service
	userAgent string
	apiKey    string
	logger    *zap.Logger
	fs        afero.Fs

	RelatedItems *RelatedItemsService
	Attachments  *AttachmentsService
}

type ClientOpts struct {
	HTTPClient *http.Client
	UserAgent  string
	APIKey     string
	Logger     *zap.Logger
	FS         afero.Fs
	Registerer prometheus.Registerer
}

type ClientOpt func(o *ClientOpts)

func WithHTTPClient(client *http.Client) ClientOpt {
	return func(o *ClientOpts) {
		o.HTTPClient = client
	}
}

func WithUserAgent(ua string) ClientOpt {
	return func(o *ClientOpts) {
		o.UserAgent = ua
	}
}

// WithAPIKey sets the key injected into each outgoing request. The key
// is scoped to the request value, never to shared header state.
func WithAPIKey(key string) ClientOpt {
	return func(o *ClientOpts) {
		o.APIKey = key
	}
}

func WithLogger(logger *zap.Logger) ClientOpt {
	return func(o *ClientOpts) {
		o.Logger = logger
	}
}

// WithFS sets the filesystem attachment sources are read from.
// Defaults to the OS filesystem.
func WithFS(fs afero.Fs) ClientOpt {
	return func(o *ClientOpts) {
		o.FS = fs
	}
}

// WithMetrics registers request counters and duration histograms on reg
// and instruments the client's transport with them.
func WithMetrics(reg prometheus.Registerer) ClientOpt {
	return func(o *ClientOpts) {
		o.Registerer = reg
	}
}

func New(baseURL *url.URL, opts ...ClientOpt) *Client {
	var o ClientOpts
	for _, opt := range opts {
		opt(&o)
	}

	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{}
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if o.FS == nil {
		o.FS = afero.NewOsFs()
	}

	if o.Registerer != nil {
		o.HTTPClient.Transport = instrumentTransport(o.Registerer, o.HTTPClient.Transport)
	}

	c := &Client{
		baseURL:   baseURL,
		client:    o.HTTPClient,
		userAgent: o.UserAgent,
		apiKey:    o.APIKey,
		logger:    o.Logger,
		fs:        o.FS,
	}

	c.common.client = c
	c.RelatedItems = (*RelatedItemsService)(&c.common)
	c.Attachments = (*AttachmentsService)(&c.common)
	return c
}

// Do executes the request and decodes a 2xx response body into v. A
// non-2xx status is returned as *APIError; transport errors propagate
// unwrapped.
func (c *Client) Do(ctx context.Context, req *http.Request, v interface{}) error {
	c.logger.Debug("sending request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// NewPostRequest creates an API POST request.
func (c *Client) NewPostRequest(urlStr string, body interface{}) (*http.Request, error) {
	return c.NewRequest(http.MethodPost, urlStr, body)
}

// NewPatchRequest creates an API PATCH request.
func (c *Client) NewPatchRequest(urlStr string, body interface{}) (*http.Request, error) {
	return c.NewRequest(http.MethodPatch, urlStr, body)
}

// NewDeleteRequest creates an API DELETE request.
func (c *Client) NewDeleteRequest(urlStr string, body interface{}) (*http.Request, error) {
	return c.NewRequest(http.MethodDelete, urlStr, body)
}

// NewRequest creates an API request.
func (c *Client) NewRequest(method, urlStr string, body interface{}) (*http.Request, error) {
	u, err := c.baseURL.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	var buf io.ReadWriter
	if body != nil {
		buf = &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSONAPI)
	}

	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// post builds and issues a POST in one step, decoding into a response
// envelope.
func (c *Client) post(ctx context.Context, urlStr string, body interface{}) (*jsonapi.Response, error) {
	return c.roundTrip(ctx, http.MethodPost, urlStr, body)
}

func (c *Client) patch(ctx context.Context, urlStr string, body interface{}) (*jsonapi.Response, error) {
	return c.roundTrip(ctx, http.MethodPatch, urlStr, body)
}

func (c *Client) delete(ctx context.Context, urlStr string, body interface{}) (*jsonapi.Response, error) {
	return c.roundTrip(ctx, http.MethodDelete, urlStr, body)
}

func (c *Client) roundTrip(ctx context.Context, method, urlStr string, body interface{}) (*jsonapi.Response, error) {
	req, err := c.NewRequest(method, urlStr, body)
	if err != nil {
		return nil, err
	}

	r := &jsonapi.Response{}
	if err := c.Do(ctx, req, r); err != nil {
		return nil, err
	}

	return r, nil
}
