// Package network provides the HTTP clients used to fetch watch pages and media.
package network

import (
	"net/http"
	"time"
)

const defaultTimeout = time.Minute

// Client is the shared HTTP client for media transfers. It has no overall
// timeout since downloads may run for a long time.
var Client = &http.Client{
	Transport: newTransport(),
}

// Options tune a client built by NewClient.
type Options struct {
	// Fingerprint makes TLS connections present a browser ClientHello.
	Fingerprint bool
	// Timeout bounds a whole request. Zero means one minute.
	Timeout time.Duration
}

// NewClient returns a client for page requests.
func NewClient(opts Options) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var transport http.RoundTripper = newTransport()
	if opts.Fingerprint {
		transport = newFingerprintTransport(timeout)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
