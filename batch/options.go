// Package batch drives a whole run: resolve the page, pick entries, download them one after another.
package batch

import (
	"io"

	"github.com/tubedl/tubedl/downloader"
	"github.com/tubedl/tubedl/filter"
	"github.com/tubedl/tubedl/source"
)

type Options struct {
	Source source.Source
	URL    string
	// Dir is created, with parents, when missing.
	Dir       string
	Extension string
	// Filter defaults to filter.All.
	Filter filter.Filter
	DryRun bool

	Download downloader.Options

	// Out receives per-item success lines and the summary, Err receives failures.
	Out io.Writer
	Err io.Writer
}

func (o *Options) quiet() bool {
	return o.Download.Quiet
}

func (o *Options) filter() filter.Filter {
	if o.Filter == nil {
		return filter.All
	}
	return o.Filter
}
