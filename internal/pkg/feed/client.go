// Package feed talks to the upstream XML travel-inventory service and
// decodes its documents into the wire schema defined in schema.go.
package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/time/rate"

	"github.com/globaltravelbg/package-feed-service/internal/pkg/observability"
)

const (
	defaultTimeout = 15 * time.Second
	defaultRPS     = 10
)

// UpstreamError reports a non-2xx answer from the feed.
type UpstreamError struct {
	URL        string
	Status     string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream feed unavailable: %s (URL: %s)", e.Status, e.URL)
}

// Client fetches endpoints of the upstream feed. It is safe for concurrent
// use; the rate limiter is the only shared state.
type Client struct {
	base    string
	hc      *http.Client
	limiter *rate.Limiter
}

// NewClient builds a feed client for the given base URL. Every fetch is
// bounded by timeout and outbound calls are limited to rps per second.
func NewClient(base string, timeout time.Duration, rps int) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if rps <= 0 {
		rps = defaultRPS
	}

	return &Client{
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Fetch GETs {base}/{path} and unmarshals the XML document into out.
// The feed serves windows-1251 bytes, so the body is transcoded to UTF-8
// before any XML parsing; parsing the raw bytes as UTF-8 would corrupt
// every Cyrillic character.
func (c *Client) Fetch(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("feed rate limit: %w", err)
	}

	url := c.base + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build feed request: %w", err)
	}

	req.Header.Set("Accept", "application/xml, text/xml, */*")
	req.Header.Set("Cache-Control", "no-cache")

	endpoint := endpointLabel(path)
	start := time.Now()

	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveFeed(endpoint, 0, time.Since(start))

		return fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	observability.ObserveFeed(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck

		return &UpstreamError{URL: url, Status: resp.Status, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read feed response: %w", err)
	}

	text, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return fmt.Errorf("decode windows-1251 body: %w", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(text))
	// the XML prolog still claims windows-1251; the bytes are UTF-8 by now
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode feed document: %w", err)
	}

	return nil
}

// endpointLabel keeps metric cardinality bounded: "Package/1234" and
// "Package/5678" both count under "Package".
func endpointLabel(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}

	return path
}
