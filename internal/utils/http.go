package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Header is an extra HTTP header applied to an outgoing request. Adapters use
// it for vendor-specific authentication schemes (e.g. x-goog-api-key).
type Header struct {
	Key   string
	Value string
}

// DoPost performs a synchronous JSON POST and decodes the response body into
// Output. When apiKey is non-empty it is sent as a Bearer Authorization
// header; vendors with different auth schemes pass an empty apiKey and an
// explicit [Header] instead.
//
// Error handling strategy:
//   - context errors (timeout, cancellation) propagate through the HTTP client
//   - non-2xx statuses return an error carrying the status and response body
//   - decode errors include a truncated body preview for debugging
//
// The response body is always closed; close errors are logged, never returned.
func DoPost[Output any](ctx context.Context, client *http.Client, url, apiKey string, body any, headers ...Header) (*Output, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}()

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, string(respBody))
	}

	var out Output
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w\nresponse preview: %s",
			res.StatusCode, err, Truncate(string(respBody), 500))
	}

	return &out, nil
}
