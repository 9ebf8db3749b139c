package victorops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tphakala/go-victorops/internal/api"
)

// RequestDetails records one HTTP round trip: the status code, the exact
// request body text that was sent, and the raw response body text. It is
// returned alongside every typed result so callers and tests can assert on
// wire content without re-serializing.
type RequestDetails struct {
	StatusCode   int
	RequestBody  string
	ResponseBody string
}

// exec performs one authenticated exchange against the public API. Status
// codes >= 400 are never returned as a successful RequestDetails; they come
// back as a classified error carrying the exchange.
func exec(ctx context.Context, t *api.Transport, method, path string, body any, query map[string]string, opts ...RequestOption) (*RequestDetails, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	resp, err := t.Do(ctx, &api.Request{
		Method:  method,
		Path:    path,
		Body:    body,
		Query:   query,
		Headers: reqCfg.headers,
	})
	if err != nil {
		return nil, err
	}

	details := &RequestDetails{
		StatusCode:   resp.StatusCode,
		RequestBody:  resp.RequestBody,
		ResponseBody: resp.ResponseBody,
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(details)
	}

	return details, nil
}

// decodeInto unmarshals the raw response text of a completed exchange.
func decodeInto(details *RequestDetails, v any) error {
	if err := json.Unmarshal([]byte(details.ResponseBody), v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// encodeSegment encodes a user-controlled identifier for use as a URL path
// segment. The API expects form-style encoding here ("@" becomes "%40"),
// matching how usernames and emails appear on the wire.
func encodeSegment(s string) string {
	return url.QueryEscape(s)
}
