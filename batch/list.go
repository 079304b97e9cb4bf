package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tubedl/tubedl/source"
)

// Entry is one video in List's JSON output.
type Entry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	// File is where the root command would save this entry.
	File string `json:"file"`
}

// Output is the JSON document List writes.
type Output struct {
	URL     string   `json:"url"`
	Title   string   `json:"title"`
	Single  bool     `json:"single"`
	Total   int      `json:"total"`
	Entries []*Entry `json:"entries"`
}

// List resolves options.URL and writes the selected entries to options.Out without downloading anything.
func List(ctx context.Context, options *Options, asJSON bool) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	playlist, err := options.Source.Resolve(ctx, options.URL)
	if err != nil {
		return err
	}

	videos := options.filter()(playlist.Videos)
	names := playlist.Filenames(options.Extension)

	if asJSON {
		return writeJSON(options.Out, playlist, videos, names, options.Dir)
	}

	for _, v := range videos {
		fmt.Fprintf(options.Out, "%d\t%s\t%s\n", v.Index, v.Name, v.URL)
	}
	return nil
}

func writeJSON(out io.Writer, playlist *source.Playlist, videos []*source.Video, names map[*source.Video]string, dir string) error {
	output := &Output{
		URL:    playlist.URL,
		Title:  playlist.Title,
		Single: playlist.Single,
		Total:  len(playlist.Videos),
		Entries: lo.Map(videos, func(v *source.Video, _ int) *Entry {
			return &Entry{Index: v.Index, Name: v.Name, URL: v.URL, File: filepath.Join(dir, names[v])}
		}),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
