package network

import (
	"fmt"
	"net/http"
)

const cookieHint = " (the cookie is probably expired or incomplete)"

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: server returned %d %s", e.URL, e.Code, http.StatusText(e.Code))
	if e.Unauthorized() {
		msg += cookieHint
	}
	return msg
}

// Unauthorized reports whether the portal rejected the session credential.
func (e *StatusError) Unauthorized() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// Retryable reports whether repeating the request might succeed.
func (e *StatusError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}
