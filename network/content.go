package network

import (
	"fmt"
	"mime"
	"strings"
)

// MediaType returns the lower-cased media type of a Content-Type header, or "" when it is malformed.
func MediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

// IsMedia reports whether contentType describes a video or an opaque binary.
func IsMedia(contentType string) bool {
	mediaType := MediaType(contentType)
	return strings.HasPrefix(mediaType, "video/") || mediaType == "application/octet-stream"
}

// IsPage reports whether contentType describes an HTML document.
func IsPage(contentType string) bool {
	switch MediaType(contentType) {
	case "text/html", "application/xhtml+xml":
		return true
	default:
		return false
	}
}

// ContentError is returned when a video URL answers with a web page.
// The portal does that when it redirects an expired session to its login form.
type ContentError struct {
	URL         string
	ContentType string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("GET %s: expected a video, server returned %s%s", e.URL, MediaType(e.ContentType), cookieHint)
}
