package batch

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tubedl/tubedl/downloader"
	"github.com/tubedl/tubedl/source"
	"github.com/tubedl/tubedl/util"
)

// Failure records a video that could not be downloaded.
type Failure struct {
	Video *source.Video
	Path  string
	Err   error
}

// Report summarizes a run.
type Report struct {
	Playlist   *source.Playlist
	Downloaded []*downloader.Result
	Skipped    []*downloader.Result
	Failed     []*Failure
}

// Attempted is the number of entries the run tried to download.
func (r *Report) Attempted() int {
	return len(r.Downloaded) + len(r.Skipped) + len(r.Failed)
}

// Bytes is the total size of everything downloaded.
func (r *Report) Bytes() int64 {
	return lo.SumBy(r.Downloaded, func(res *downloader.Result) int64 { return res.Bytes })
}

// Err is non-nil when at least one entry failed.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %s failed", len(r.Failed), util.Quantify(r.Attempted(), "download", "downloads"))
}
