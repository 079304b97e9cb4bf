package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/tubedl/tubedl/color"
	"github.com/tubedl/tubedl/downloader"
	"github.com/tubedl/tubedl/filesystem"
	"github.com/tubedl/tubedl/icon"
	"github.com/tubedl/tubedl/log"
	"github.com/tubedl/tubedl/source"
	"github.com/tubedl/tubedl/style"
	"github.com/tubedl/tubedl/util"
)

// Run resolves options.URL and downloads every selected entry in order.
//
// Failing to resolve the page or to create the output directory aborts the run
// with an error. A failing entry is reported and recorded in the Report, and
// the next entry is attempted; only cancellation of ctx stops the loop early.
func Run(ctx context.Context, options *Options) (*Report, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Err == nil {
		options.Err = os.Stderr
	}

	playlist, err := options.Source.Resolve(ctx, options.URL)
	if err != nil {
		return nil, err
	}

	report := &Report{Playlist: playlist}
	videos := options.filter()(playlist.Videos)
	if len(videos) == 0 {
		fmt.Fprintf(options.Err, "%s nothing selected out of %s\n", icon.Get(icon.Skip), util.Quantify(len(playlist.Videos), "video", "videos"))
		return report, nil
	}

	names := playlist.Filenames(options.Extension)

	if options.DryRun {
		for _, v := range videos {
			fmt.Fprintf(options.Out, "%s %s\n  %s\n  %s\n", icon.Get(icon.Video), v, style.Faint(v.URL), filepath.Join(options.Dir, names[v]))
		}
		return report, nil
	}

	if err := filesystem.API().MkdirAll(options.Dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	if !options.quiet() {
		fmt.Fprintf(options.Out, "%s %s %s\n", icon.Get(icon.Playlist), style.Bold(playlist.String()), style.Faint(util.Quantify(len(videos), "video", "videos")))
	}

	for _, v := range videos {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		path := filepath.Join(options.Dir, names[v])
		result, err := downloader.Download(ctx, v, path, options.Download)
		if err != nil {
			fail(options, report, v, path, err)
			if errors.Is(err, context.Canceled) {
				return report, err
			}
			continue
		}

		switch result.Status {
		case downloader.Skipped:
			report.Skipped = append(report.Skipped, result)
			if !options.quiet() {
				fmt.Fprintf(options.Out, "%s %s %s\n", icon.Get(icon.Skip), v, style.Faint("already exists, skipped"))
			}
		default:
			report.Downloaded = append(report.Downloaded, result)
			if !options.quiet() {
				fmt.Fprintf(options.Out, "%s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), v, style.Faint(humanize.Bytes(uint64(result.Bytes))))
			}
		}
	}

	if !options.quiet() {
		summarize(options.Out, report)
	}

	return report, nil
}

func fail(options *Options, report *Report, v *source.Video, path string, err error) {
	report.Failed = append(report.Failed, &Failure{Video: v, Path: path, Err: err})
	log.WithFields(logrus.Fields{"video": v.Name, "url": v.URL}).Error(err)
	fmt.Fprintf(options.Err, "%s Error downloading %q: %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), v.String(), err)
}

func summarize(out io.Writer, report *Report) {
	fmt.Fprintf(out, "\n%s downloaded (%s), %d skipped, %d failed\n",
		util.Quantify(len(report.Downloaded), "video", "videos"),
		humanize.Bytes(uint64(report.Bytes())),
		len(report.Skipped),
		len(report.Failed),
	)
}
