// Package filter narrows a playlist down to the entries the user asked for.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/tubedl/tubedl/source"
	"github.com/tubedl/tubedl/util"
)

// Filter selects a subset of videos, preserving their order.
type Filter func([]*source.Video) []*source.Video

// All keeps everything.
func All(videos []*source.Video) []*source.Video {
	return videos
}

// ParseItems parses an item selector:
//
//	first, last, all
//	N      the entry at index N (from 0)
//	A-B    entries A to B inclusive
//	@sub@  entries whose name contains sub, case-insensitive
func ParseItems(description string) (Filter, error) {
	switch description {
	case "", "all":
		return All, nil
	case "first":
		return func(videos []*source.Video) []*source.Video {
			return lo.Subset(videos, 0, 1)
		}, nil
	case "last":
		return func(videos []*source.Video) []*source.Video {
			return lo.Subset(videos, -1, 1)
		}, nil
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(videos []*source.Video) []*source.Video {
			return lo.Filter(videos, func(v *source.Video, _ int) bool {
				return strings.Contains(strings.ToLower(v.Name), sub)
			})
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		a, errA := strconv.ParseUint(from, 10, 32)
		b, errB := strconv.ParseUint(to, 10, 32)
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("invalid item range: %s", description)
		}
		if a > b {
			return nil, fmt.Errorf("invalid item range: %d is after %d", a, b)
		}
		return func(videos []*source.Video) []*source.Video {
			n := uint64(len(videos))
			start := util.Min(a, n)
			end := util.Min(b+1, n)
			return videos[start:end]
		}, nil
	}

	if idx, err := strconv.ParseUint(description, 10, 32); err == nil {
		return func(videos []*source.Video) []*source.Video {
			if uint64(len(videos)) <= idx {
				return nil
			}
			return []*source.Video{videos[idx]}
		}, nil
	}

	return nil, fmt.Errorf("invalid item selector: %s", description)
}

// Match keeps entries whose name fuzzily contains query, case-insensitive.
// An empty query keeps everything.
func Match(query string) Filter {
	if query == "" {
		return All
	}
	return func(videos []*source.Video) []*source.Video {
		return lo.Filter(videos, func(v *source.Video, _ int) bool {
			return fuzzy.MatchNormalizedFold(query, v.Name)
		})
	}
}

// Chain applies filters left to right.
func Chain(filters ...Filter) Filter {
	return func(videos []*source.Video) []*source.Video {
		for _, f := range filters {
			videos = f(videos)
		}
		return videos
	}
}
