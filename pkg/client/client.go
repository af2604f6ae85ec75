// Package client wraps the task-management REST API. Every call resolves to
// either decoded data or a CallError: HTTP 400 surfaces the server's
// field-scoped validation errors for form display, anything else collapses
// into one generic message so callers never branch on transport detail.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const genericMessage = "Unable to reach the server, please try again later"

// FieldError mirrors the server's field-scoped validation error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CallError is the normalized failure of one API call. Fields is non-empty
// only for validation failures.
type CallError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *CallError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
	}
	return e.Message
}

// Client calls the task-management API.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLanguage sets the Accept-Language header sent on every call.
func WithLanguage(language string) Option {
	return func(c *Client) { c.language = language }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a Client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		language:   "en",
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int64          `json:"total"`
	Message json.RawMessage `json:"message"`
}

func generic(status int) *CallError {
	return &CallError{StatusCode: status, Message: genericMessage}
}

// do performs one call and decodes the envelope's data into out when the
// call succeeds. The returned total is non-nil for list responses.
func (c *Client) do(method, path string, query url.Values, body, out any) (*int64, *CallError) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, generic(0)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return nil, generic(0)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, generic(0)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, generic(resp.StatusCode)
	}

	if env.Success {
		if out != nil && len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return nil, generic(resp.StatusCode)
			}
		}
		return env.Total, nil
	}

	callErr := &CallError{StatusCode: resp.StatusCode, Message: genericMessage}
	if resp.StatusCode == http.StatusBadRequest {
		var fields []FieldError
		if json.Unmarshal(env.Message, &fields) == nil && len(fields) > 0 {
			callErr.Fields = fields
			callErr.Message = ""
			return nil, callErr
		}
	}
	var message string
	if json.Unmarshal(env.Message, &message) == nil && message != "" {
		callErr.Message = message
	}
	return nil, callErr
}

// ListOptions hold the sort and pagination state of a table view.
type ListOptions struct {
	SortBy string
	Order  string
	Page   int
	Limit  int
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.SortBy != "" {
		v.Set("sortBy", o.SortBy)
	}
	if o.Order != "" {
		v.Set("order", o.Order)
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	return v
}
