package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const acceptHeader = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// Fetcher downloads feed documents over HTTP. A single Fetcher (and its
// underlying connection pool) is shared by all sources and is safe for
// concurrent use.
type Fetcher struct {
	client *http.Client
	opts   Options
}

func NewFetcher(opts Options) *Fetcher {
	opts = opts.withDefaults()

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Fetcher{
		client: &http.Client{Transport: transport},
		opts:   opts,
	}
}

// Fetch downloads url, retrying transient failures (timeouts, connection
// errors, 429 and 5xx responses) within the configured attempt budget.
// Other HTTP statuses fail on the first attempt. The returned error is a
// *FetchError unless ctx itself was cancelled.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr *FetchError

	for attempt := 1; attempt <= f.opts.MaxRetries; attempt++ {
		data, fetchErr := f.attempt(ctx, url)
		if fetchErr == nil {
			slog.Debug("Feed fetched", "url", url, "attempt", attempt, "bytes", len(data))
			return data, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		fetchErr.Attempts = attempt
		lastErr = fetchErr

		if !fetchErr.Transient() || attempt == f.opts.MaxRetries {
			break
		}

		delay := backoffDelay(f.opts.Backoff, f.opts.RetryDelay, attempt)
		slog.Warn("Feed fetch retry scheduled",
			"url", url,
			"kind", fetchErr.Kind,
			"attempt", attempt,
			"max_retries", f.opts.MaxRetries,
			"delay", delay)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, lastErr
}

func (f *Fetcher) attempt(ctx context.Context, url string) ([]byte, *FetchError) {
	reqCtx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{
			URL:  url,
			Kind: FailureConnection,
			Err:  fmt.Errorf("failed to create request: %w", err),
		}
	}

	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Kind: classifyTransportError(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain the body so the connection can be reused by the next attempt.
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{
			URL:    url,
			Kind:   FailureHTTPStatus,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{
			URL:  url,
			Kind: classifyTransportError(err),
			Err:  fmt.Errorf("failed to read response body: %w", err),
		}
	}

	return data, nil
}

func classifyTransportError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	return FailureConnection
}
