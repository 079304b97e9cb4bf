// Package downloader streams a single video to disk.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tubedl/tubedl/filesystem"
	"github.com/tubedl/tubedl/log"
	"github.com/tubedl/tubedl/network"
	"github.com/tubedl/tubedl/source"
	"github.com/tubedl/tubedl/util"
)

// PartSuffix marks a file that is still being written.
const PartSuffix = ".part"

// ErrIncomplete is returned when the body ends before Content-Length bytes arrived.
var ErrIncomplete = errors.New("download incomplete")

// Status tells what Download did with a video.
type Status int

const (
	Downloaded Status = iota
	Skipped
)

func (s Status) String() string {
	switch s {
	case Downloaded:
		return "downloaded"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result describes a finished Download call.
type Result struct {
	Video   *source.Video
	Path    string
	Status  Status
	Bytes   int64
	Elapsed time.Duration
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(message string) (bool, error)

// Options configures Download.
type Options struct {
	Client  *http.Client
	Retries int

	// Force overwrites existing files without asking.
	Force bool
	// Quiet suppresses the progress display.
	Quiet bool

	// Confirm is asked before overwriting. Defaults to a terminal prompt when
	// stdin is interactive and to "no" otherwise.
	Confirm ConfirmFunc
	// Progress receives the progress display. Defaults to os.Stdout.
	Progress io.Writer
}

// Download fetches video.URL into path.
//
// The body is written to path+PartSuffix and renamed over path once complete,
// so path never holds a truncated video. An existing path is only replaced
// with Force or after confirmation; otherwise the video is Skipped.
func Download(ctx context.Context, video *source.Video, path string, opts Options) (*Result, error) {
	fs := filesystem.API()
	result := &Result{Video: video, Path: path}
	logger := log.WithFields(logrus.Fields{"video": video.Name, "path": path})

	exists, err := fs.Exists(path)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		confirm := opts.Confirm
		if confirm == nil {
			confirm = defaultConfirm
		}

		overwrite, err := confirm(fmt.Sprintf("%s already exists, download again and overwrite it?", path))
		if err != nil {
			return nil, err
		}
		if !overwrite {
			logger.Info("exists, skipping")
			result.Status = Skipped
			return result, nil
		}
	}

	started := time.Now()
	resp, err := network.Get(ctx, opts.Client, video.URL, nil, opts.Retries)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if contentType := resp.Header.Get("Content-Type"); network.IsPage(contentType) {
		return nil, &network.ContentError{URL: video.URL, ContentType: contentType}
	}

	part := path + PartSuffix
	file, err := fs.OpenFile(part, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	var dst io.Writer = file
	var bar *progressWriter
	if !opts.Quiet {
		bar = newProgressWriter(lo.Ternary[io.Writer](opts.Progress != nil, opts.Progress, os.Stdout), video.String(), resp.ContentLength)
		dst = io.MultiWriter(file, bar)
	}

	written, err := io.Copy(dst, resp.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil && resp.ContentLength >= 0 && written != resp.ContentLength {
		err = fmt.Errorf("%w: got %d of %d bytes", ErrIncomplete, written, resp.ContentLength)
	}
	if bar != nil {
		bar.Finish(err == nil)
	}
	if err != nil {
		_ = fs.Remove(part)
		return nil, err
	}

	if err := fs.Rename(part, path); err != nil {
		_ = fs.Remove(part)
		return nil, err
	}

	result.Status = Downloaded
	result.Bytes = written
	result.Elapsed = time.Since(started)
	logger.WithField("bytes", written).Info("downloaded")
	return result, nil
}

func defaultConfirm(message string) (bool, error) {
	if !util.IsInteractive() {
		return false, nil
	}

	var ok bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok)
	return ok, err
}
