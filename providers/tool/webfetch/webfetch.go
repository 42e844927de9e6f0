package webfetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/synapticlabs/synaptic/core/tool"
	"github.com/synapticlabs/synaptic/internal/utils"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "synaptic-webfetch-tool/1.0"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the maximum time to wait for TLS handshake
	TLSHandshakeTimeout = 10 * time.Second
	// ResponseHeaderTimeout is the maximum time to wait for response headers
	ResponseHeaderTimeout = 10 * time.Second
	// IdleConnTimeout is the maximum time an idle connection can be reused
	IdleConnTimeout = 90 * time.Second
)

// New returns a [tool.Tool] that fetches web pages and converts their HTML
// content to Markdown. The underlying fetch logic is also available directly
// through [Fetch].
//
// The tool normalises partial URLs by prepending "https://", follows up to
// ten redirects, enforces a [MaxBodySize] limit, and respects context
// cancellation. The default request timeout is [DefaultTimeout].
//
// Example:
//
//	m, _ := model.New(model.Config{Provider: model.ProviderOpenAI, APIKey: key})
//	m.BindTools(webfetch.New())
func New() *tool.Tool {
	t, err := tool.NewTyped("web_fetch",
		"Fetches a web page and converts its HTML content to Markdown format. Supports HTTP and HTTPS protocols. Automatically handles partial URLs by adding https:// prefix. Follows redirects and returns the final URL and clean Markdown content.",
		Fetch,
	)
	if err != nil {
		panic(err) // unreachable: Fetch is statically non-nil
	}
	return t
}

// Fetch retrieves the web page at req.URL and returns its content as Markdown.
//
// Partial URLs (e.g. "google.com") are normalised by prepending "https://".
// The request timeout is taken from req.TimeoutSeconds when set, otherwise
// [DefaultTimeout] is used. Up to ten HTTP redirects are followed; the final
// URL after all redirects is returned in [Output.URL].
//
// The response body is capped at [MaxBodySize] bytes. Reading is performed in
// a goroutine so that context cancellation is honoured even during slow reads.
//
// Fetch returns an error when the URL is empty, the HTTP status code is not
// 200 OK, the body exceeds [MaxBodySize], HTML-to-Markdown conversion fails,
// or the context is cancelled or times out.
func Fetch(ctx context.Context, req Input) (Output, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return Output{}, fmt.Errorf("URL cannot be empty")
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	timeout := DefaultTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctxWithTimeout, "GET", url, nil)
	if err != nil {
		return Output{}, fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := DefaultUserAgent
	if req.UserAgent != "" {
		userAgent = req.UserAgent
	}
	httpReq.Header.Set("User-Agent", userAgent)

	// Per-phase transport timeouts prevent indefinite blocking on slow or
	// unresponsive servers.
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   TLSHandshakeTimeout,
			ResponseHeaderTimeout: ResponseHeaderTimeout,
			IdleConnTimeout:       IdleConnTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			ForceAttemptHTTP2:     true,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects (>10)")
			}
			return nil
		},
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		if ctxWithTimeout.Err() != nil {
			return Output{}, fmt.Errorf("request timeout or canceled: %w", err)
		}
		return Output{}, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Output{}, fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, resp.Status)
	}

	// Read in a goroutine so cancellation is honoured even mid-read.
	limitedReader := io.LimitReader(resp.Body, MaxBodySize)

	type readResult struct {
		data []byte
		err  error
	}

	readChan := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(limitedReader)
		readChan <- readResult{data: data, err: err}
	}()

	var htmlBytes []byte
	select {
	case <-ctxWithTimeout.Done():
		return Output{}, fmt.Errorf("timeout while reading response body: %w", ctxWithTimeout.Err())
	case result := <-readChan:
		if result.err != nil {
			return Output{}, fmt.Errorf("failed to read response body: %w", result.err)
		}
		htmlBytes = result.data
	}

	if len(htmlBytes) == MaxBodySize {
		return Output{}, fmt.Errorf("response body exceeds maximum size of %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return Output{}, fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	output := Output{
		URL:      resp.Request.URL.String(),
		Markdown: markdown,
	}
	if req.IncludeHTML {
		output.HTML = string(htmlBytes)
	}

	return output, nil
}

// Input holds the parameters passed to the web fetch tool by the language
// model. URL is the only required field; all other fields are optional
// overrides for the defaults defined by the package-level constants.
type Input struct {
	// URL is the web page URL to fetch (partial like "google.com" or full).
	URL string `json:"url" description:"The URL of the web page to fetch (supports partial URLs like 'google.com' or full URLs like 'https://google.com')"`

	// TimeoutSeconds is the request timeout in seconds (default: 30).
	TimeoutSeconds int `json:"timeout_seconds,omitempty" description:"Request timeout in seconds (default: 30, max: 300)"`

	// UserAgent is the User-Agent header to send with the request.
	UserAgent string `json:"user_agent,omitempty" description:"Custom User-Agent header for the HTTP request"`

	// IncludeHTML when true includes the raw HTML content alongside Markdown.
	IncludeHTML bool `json:"include_html,omitempty" description:"When true includes the raw HTML content in the output"`
}

// Output holds the result produced by [Fetch] and returned to the language
// model. URL reflects the final destination after all HTTP redirects. HTML is
// only populated when [Input.IncludeHTML] is true.
type Output struct {
	URL      string `json:"url" description:"The final URL after following all redirects and normalization"`
	Markdown string `json:"markdown" description:"The web page content converted to Markdown format"`
	HTML     string `json:"html,omitempty" description:"The raw HTML content (only populated when include_html is true)"`
}
