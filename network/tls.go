package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// impersonatingTransport performs HTTPS with a Chrome 120 ClientHello.
// It tries HTTP/2 first and falls back to an HTTP/1.1-only handshake when the server refuses h2.
type impersonatingTransport struct {
	h2    *http2.Transport
	h1    *http.Transport
	plain *http.Transport
}

func newImpersonatingTransport(timeout time.Duration) *impersonatingTransport {
	dialer := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}

	h1 := newTransport(timeout)
	h1.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialChrome(ctx, dialer, timeout, network, addr, []string{"http/1.1"})
	}

	return &impersonatingTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialChrome(ctx, dialer, timeout, network, addr, nil)
			},
			ReadIdleTimeout: timeout,
			PingTimeout:     timeout,
		},
		h1:    h1,
		plain: newTransport(timeout),
	}
}

func (t *impersonatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		return nil, err
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, err
		}
	}
	return t.h1.RoundTrip(retry)
}

// dialChrome opens a TLS connection with Chrome's fingerprint.
// The handshake must finish within timeout. A non-nil alpn replaces the advertised protocols.
func dialChrome(ctx context.Context, dialer *net.Dialer, timeout time.Duration, network, addr string, alpn []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: alpn,
	}, utls.HelloChrome_120)

	handshakeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := tlsConn.HandshakeContext(handshakeCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
