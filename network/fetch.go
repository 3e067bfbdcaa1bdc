package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tubefetch/tubefetch/constant"
)

// Error is a failed page request.
type Error struct {
	URL string
	// Op is one of "request", "do", "status" or "read".
	Op string
	// StatusCode is set for "status" errors.
	StatusCode int
	Err        error
}

// Error names the operation and URL that failed, with the status code for status errors.
func (e *Error) Error() string {
	if e.Op == "status" {
		return fmt.Sprintf("get %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying transport error, nil for status errors.
func (e *Error) Unwrap() error { return e.Err }

// IsTransport reports whether err comes from fetching a page.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// Fetcher downloads page text over HTTP.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
}

// FetchPage returns the body of url. Any non-2xx status is an error.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &Error{URL: url, Op: "request", Err: err}
	}

	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = constant.UserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	client := f.Client
	if client == nil {
		client = NewClient(Options{})
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: url, Op: "do", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{URL: url, Op: "status", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: url, Op: "read", Err: err}
	}

	return string(body), nil
}
