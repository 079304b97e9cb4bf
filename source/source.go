// Package source defines the domain models and interfaces for video discovery.
package source

import "context"

// Source turns a page URL on a video platform into the videos it exposes.
type Source interface {
	// Name returns a human-readable identifier of the platform.
	Name() string

	// Resolve fetches the page and enumerates its videos.
	// A single-video page yields a playlist with exactly one entry.
	Resolve(ctx context.Context, pageURL string) (*Playlist, error)
}
