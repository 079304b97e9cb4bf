package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// release is a parsed tag such as "v1.4.0" or "1.4.0-rc.2".
type release struct {
	core       [3]int
	prerelease string
}

func parseRelease(tag string) (release, error) {
	var r release

	tag = strings.TrimPrefix(strings.TrimSpace(tag), "v")
	tag, r.prerelease, _ = strings.Cut(tag, "-")

	parts := strings.Split(tag, ".")
	if len(parts) != len(r.core) {
		return r, fmt.Errorf("malformed release tag %q", tag)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return r, fmt.Errorf("malformed release tag %q", tag)
		}
		r.core[i] = n
	}

	return r, nil
}

// Newer reports whether the latest tag is a later release than current.
// A pre-release sorts before the final release with the same numbers.
func Newer(latest, current string) (bool, error) {
	l, err := parseRelease(latest)
	if err != nil {
		return false, err
	}

	c, err := parseRelease(current)
	if err != nil {
		return false, err
	}

	if i, differ := lo.Find([]int{0, 1, 2}, func(i int) bool { return l.core[i] != c.core[i] }); differ {
		return l.core[i] > c.core[i], nil
	}

	switch {
	case l.prerelease == c.prerelease:
		return false, nil
	case l.prerelease == "":
		return true, nil
	case c.prerelease == "":
		return false, nil
	default:
		return l.prerelease > c.prerelease, nil
	}
}
