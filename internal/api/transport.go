// Package api provides low-level HTTP transport for VictorOps public API calls.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tphakala/go-victorops/internal/auth"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// publicAPIPrefix is prepended to every relative endpoint path.
	publicAPIPrefix = "api-public"
)

// Transport handles HTTP communication with the VictorOps public API.
type Transport struct {
	BaseURL     *url.URL
	HTTPClient  *http.Client
	Credentials *auth.Credentials
	UserAgent   string
	Logger      zerolog.Logger
}

// NewTransport creates a Transport with the given configuration.
func NewTransport(baseURL string, creds *auth.Credentials, httpClient *http.Client) (*Transport, error) {
	if !creds.Valid() {
		return nil, fmt.Errorf("credentials must be provided")
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultHTTPTimeout,
		}
	}

	return &Transport{
		BaseURL:     u,
		HTTPClient:  httpClient,
		Credentials: creds,
		UserAgent:   "go-victorops/1.0",
		Logger:      zerolog.Nop(),
	}, nil
}

// Request represents an API request. Path is relative to the api-public
// prefix and must already carry any percent-encoding its segments need.
type Request struct {
	Method  string
	Path    string
	Body    any
	Query   map[string]string
	Headers http.Header
}

// Response represents an API response. RequestBody is the exact body text
// that was sent on the wire; ResponseBody is the raw response text.
type Response struct {
	StatusCode   int
	RequestBody  string
	ResponseBody string
}

// Do executes an API request and returns the raw exchange.
func (t *Transport) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, bodyText, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	httpResp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// Limit response body size to prevent memory exhaustion
	limitedReader := io.LimitReader(httpResp.Body, defaultMaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(len(body)) > defaultMaxBodySize {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", defaultMaxBodySize)
	}

	t.Logger.Debug().
		Str("method", req.Method).
		Str("url", httpReq.URL.String()).
		Int("status", httpResp.StatusCode).
		Msg("victorops api request")

	return &Response{
		StatusCode:   httpResp.StatusCode,
		RequestBody:  bodyText,
		ResponseBody: string(body),
	}, nil
}

func (t *Transport) buildRequest(ctx context.Context, req *Request) (*http.Request, string, error) {
	u := t.BaseURL.JoinPath(publicAPIPrefix, req.Path)

	if len(req.Query) > 0 {
		q := u.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	// The API rejects some verbs when the body is entirely absent, so a
	// literal {} is sent whenever no body value is supplied.
	bodyText := "{}"
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}
		bodyText = string(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), strings.NewReader(bodyText))
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", t.UserAgent)

	// Apply authentication
	t.Credentials.Apply(httpReq)

	// Apply custom headers
	maps.Copy(httpReq.Header, req.Headers)

	return httpReq, bodyText, nil
}
