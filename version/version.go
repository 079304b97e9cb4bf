// Package version tracks the application version and looks up newer releases.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/tubedl/tubedl/filesystem"
	"github.com/tubedl/tubedl/network"
	"github.com/tubedl/tubedl/util"
	"github.com/tubedl/tubedl/where"
)

// ReleasesURL is queried for the latest published release.
var ReleasesURL = "https://api.github.com/repos/tubedl/tubedl/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the "v" prefix.
// Results are cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}
	if !expired && ver != "" {
		return ver, nil
	}

	// The release lookup never sends the portal cookie.
	client := network.New(network.Options{Timeout: 5 * time.Second})
	resp, err := network.Get(ctx, client, ReleasesURL, nil, 0)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}
