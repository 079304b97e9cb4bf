package source

import (
	"fmt"
	"strings"

	"github.com/tubedl/tubedl/util"
)

// Video is a single downloadable entry.
type Video struct {
	// Position in the playlist, starting from 0.
	Index int `json:"index"`
	// Display name as shown by the platform.
	Name string `json:"name"`
	// Absolute direct media URL.
	URL string `json:"url"`
	// Page the entry was found on.
	Page string `json:"page"`
}

// String returns the name, or the URL when the platform gave none.
func (v *Video) String() string {
	if v.Name != "" {
		return v.Name
	}
	return v.URL
}

// Stem is the sanitized file name without extension.
func (v *Video) Stem() string {
	if stem := util.SanitizeFilename(v.Name); stem != "" {
		return stem
	}
	return fmt.Sprintf("video-%d", v.Index+1)
}

// Filename is the file name this video is saved under when it does not share its name with another entry.
func (v *Video) Filename(ext string) string {
	return withExt(v.Stem(), ext)
}

func withExt(stem, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return stem
	}
	return stem + "." + ext
}
