package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
)

// Client retrieves workbook bytes for a source ID through an ordered list of
// transports: the direct export URL first, then each proxy template. The
// first successful response wins.
type Client struct {
	http           *http.Client
	exportURL      string   // template with one %s for the source ID
	proxies        []string // templates with one %s for the url-encoded target
	attemptTimeout time.Duration
}

func NewClient(httpClient *http.Client, exportURL string, proxies []string, attemptTimeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:           httpClient,
		exportURL:      exportURL,
		proxies:        proxies,
		attemptTimeout: attemptTimeout,
	}
}

// CandidateURLs builds the ordered list of URLs to try for a source ID.
func (c *Client) CandidateURLs(sourceID string) []string {
	target := fmt.Sprintf(c.exportURL, sourceID)
	urls := make([]string, 0, len(c.proxies)+1)
	urls = append(urls, target)
	for _, proxy := range c.proxies {
		urls = append(urls, fmt.Sprintf(proxy, url.QueryEscape(target)))
	}
	return urls
}

// Fetch tries each candidate URL in order, each attempt bounded by the
// attempt timeout. All failures collapse into roster.ErrSourceUnavailable.
func (c *Client) Fetch(ctx context.Context, sourceID string) ([]byte, error) {
	var lastErr error
	for _, u := range c.CandidateURLs(sourceID) {
		data, err := c.attempt(ctx, u)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", roster.ErrSourceUnavailable, lastErr)
}

func (c *Client) attempt(ctx context.Context, u string) ([]byte, error) {
	attemptCtx := ctx
	if c.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.attemptTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, u)
	}
	return io.ReadAll(resp.Body)
}
