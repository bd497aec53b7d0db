package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
)

// safeMethods never carry the anti-forgery token.
var safeMethods = map[string]bool{
	http.MethodGet: true, http.MethodHead: true,
	http.MethodOptions: true, http.MethodTrace: true,
}

// RequestOptions tunes a single API call. The zero value is a GET with no
// body and no extra headers.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Client is a thin wrapper over the dashboard REST API. It serializes
// bodies as JSON, carries the session cookie on every call, and attaches
// the anti-forgery token on mutating verbs.
//
// There are no retries and no client-side timeout: a failed call surfaces
// to its caller, which owns user-facing messaging.
type Client struct {
	cfg      Config
	base     *url.URL
	http     *http.Client
	observer Observer

	mu        sync.Mutex
	csrfToken string // cached; re-read from the jar when empty
}

// NewClient creates a Client for cfg. The session cookie from cfg, if any,
// is seeded into the jar so the first request is already authenticated.
func NewClient(cfg Config, observer Observer) (*Client, error) {
	if observer == nil {
		observer = NoopObserver{}
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	if cfg.SessionCookie != "" {
		jar.SetCookies(base, []*http.Cookie{{
			Name:  cfg.SessionCookieName,
			Value: cfg.SessionCookie,
			Path:  "/",
		}})
	}

	return &Client{
		cfg:      cfg,
		base:     base,
		http:     &http.Client{Jar: jar},
		observer: observer,
	}, nil
}

// Request performs one API call and returns the raw JSON payload.
// A 204 response resolves to a nil payload. Any non-2xx status returns an
// *APIError carrying the HTTP status and raw body text.
func (c *Client) Request(ctx context.Context, path string, opt *RequestOptions) (json.RawMessage, error) {
	if opt == nil {
		opt = &RequestOptions{}
	}
	method := opt.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyReader io.Reader
	if opt.Body != nil {
		data, err := json.Marshal(opt.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opt.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if !safeMethods[method] {
		if token := c.csrf(); token != "" {
			req.Header.Set(c.cfg.CSRFHeader, token)
		}
	}

	start := time.Now()
	event := CallEvent{
		RequestID: uuid.NewString(),
		Method:    method,
		Path:      path,
	}

	resp, err := c.http.Do(req)
	if err != nil {
		event.LatencyMs = time.Since(start).Milliseconds()
		c.observer.OnCallComplete(event)
		return nil, fmt.Errorf("calling api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	event.StatusCode = resp.StatusCode
	event.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		c.observer.OnCallComplete(event)
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observer.OnCallComplete(event)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(respBody),
		}
	}

	event.Success = true
	c.observer.OnCallComplete(event)

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil, nil
	}
	return json.RawMessage(respBody), nil
}

// csrf returns the anti-forgery token, reading it from the cookie jar the
// first time (or again whenever the cached value is empty).
func (c *Client) csrf() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.csrfToken != "" {
		return c.csrfToken
	}
	for _, cookie := range c.http.Jar.Cookies(c.base) {
		if cookie.Name == c.cfg.CSRFCookieName {
			c.csrfToken = cookie.Value
			break
		}
	}
	return c.csrfToken
}

// Get fetches path and decodes the payload into out (skipped when out is nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	raw, err := c.Request(ctx, path, nil)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// Post sends body to path and decodes the response into out when non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	raw, err := c.Request(ctx, path, &RequestOptions{Method: http.MethodPost, Body: body})
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// Patch partially updates the resource at path.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	raw, err := c.Request(ctx, path, &RequestOptions{Method: http.MethodPatch, Body: body})
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// Delete removes the resource at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Request(ctx, path, &RequestOptions{Method: http.MethodDelete})
	return err
}

func decode(raw json.RawMessage, out any) error {
	if out == nil || raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
