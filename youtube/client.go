package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/tubefetch/tubefetch/constant"
)

// PageFetcher retrieves the text of a web page.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts a function to PageFetcher.
type FetcherFunc func(ctx context.Context, url string) (string, error)

// FetchPage calls f.
func (f FetcherFunc) FetchPage(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// WatchURL returns the watch page address of videoID on host.
func WatchURL(host, videoID string) string {
	if host == "" {
		host = constant.Host
	}
	return fmt.Sprintf("https://%s/watch?v=%s", host, url.QueryEscape(videoID))
}

// Client fetches watch pages and extracts videos from them.
type Client struct {
	fetcher PageFetcher
	host    string
	opts    []Option
}

// NewClient returns a Client fetching pages from host with fetcher.
// Empty host means the default platform host.
func NewClient(fetcher PageFetcher, host string, opts ...Option) *Client {
	return &Client{fetcher: fetcher, host: host, opts: opts}
}

// GetVideo fetches the watch page of videoID and extracts it.
// Fetch errors are returned unchanged.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	if videoID == "" {
		return nil, errors.New("empty video id")
	}

	page, err := c.fetcher.FetchPage(ctx, WatchURL(c.host, videoID))
	if err != nil {
		return nil, err
	}

	return ExtractVideo(videoID, page, c.opts...)
}
