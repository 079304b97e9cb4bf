// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "tubedl"

	// Version is the current application semantic version string.
	Version = "0.2.0"

	// UserAgent is the default HTTP User-Agent string sent to the video portal.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// EnvCookie names the environment variable read when --cookie is absent.
	EnvCookie = "TUBEDL_COOKIE"
)

// Build metadata, overridden with -ldflags "-X" at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
