package source

import (
	"fmt"

	"github.com/samber/lo"
)

// Playlist is an ordered collection of videos found under one page URL.
type Playlist struct {
	// Page the videos were scraped from.
	URL string `json:"url"`
	// Title of the page, may be empty.
	Title string `json:"title"`
	// Single is set when the page was a single video rather than a playlist.
	Single bool `json:"single"`

	Videos []*Video `json:"videos"`
}

func (p *Playlist) String() string {
	if p.Title != "" {
		return p.Title
	}
	return p.URL
}

// Filenames assigns every video a distinct file name with the given extension.
// Names that collide after sanitizing get " (2)", " (3)", ... appended in playlist order.
func (p *Playlist) Filenames(ext string) map[*Video]string {
	names := make(map[*Video]string, len(p.Videos))
	taken := make(map[string]int)

	for _, v := range p.Videos {
		stem := v.Stem()
		taken[stem]++
		if n := taken[stem]; n > 1 {
			stem = fmt.Sprintf("%s (%d)", stem, n)
			for lo.HasKey(taken, stem) {
				n++
				stem = fmt.Sprintf("%s (%d)", v.Stem(), n)
			}
			taken[stem]++
		}
		names[v] = withExt(stem, ext)
	}

	return names
}
