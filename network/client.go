// Package network builds the HTTP client that talks to the video portal.
//
// Every request leaving the client carries the user's Cookie header verbatim,
// including requests issued while following redirects.
package network

import (
	"net"
	"net/http"
	"time"

	"github.com/tubedl/tubedl/constant"
)

// Options configures New.
type Options struct {
	// Cookie is the opaque session credential. It is never inspected or stored.
	Cookie string
	// UserAgent defaults to constant.UserAgent.
	UserAgent string
	// Timeout bounds connecting and waiting for response headers, not the body.
	Timeout time.Duration
	// ImpersonateTLS makes HTTPS handshakes look like Chrome's.
	ImpersonateTLS bool
}

// New returns a client that authenticates with opts.Cookie.
// There is no whole-request timeout so that large videos can stream.
func New(opts Options) *http.Client {
	if opts.UserAgent == "" {
		opts.UserAgent = constant.UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	var base http.RoundTripper = newTransport(opts.Timeout)
	if opts.ImpersonateTLS {
		base = newImpersonatingTransport(opts.Timeout)
	}

	return &http.Client{
		Transport: &credentialTransport{
			base:      base,
			cookie:    opts.Cookie,
			userAgent: opts.UserAgent,
		},
	}
}

func newTransport(timeout time.Duration) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = timeout
	t.ExpectContinueTimeout = time.Second
	return t
}

// credentialTransport stamps the session cookie and User-Agent onto each outgoing request.
type credentialTransport struct {
	base      http.RoundTripper
	cookie    string
	userAgent string
}

func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	r := req.Clone(req.Context())
	if t.cookie != "" {
		r.Header.Set("Cookie", t.cookie)
	}
	if r.Header.Get("User-Agent") == "" {
		r.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(r)
}
