package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubedl/tubedl/constant"
	"github.com/tubedl/tubedl/filter"
	"github.com/tubedl/tubedl/key"
	"github.com/tubedl/tubedl/network"
	"github.com/tubedl/tubedl/source"
	"github.com/tubedl/tubedl/tube"
	"golang.org/x/net/http/httpguts"
)

// request is everything a run needs that comes from the command line.
type request struct {
	url    string
	out    string
	cookie string
	filter filter.Filter
}

// addRequestFlags registers the flags shared by the root and list commands.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("url", "u", "", "Page URL of a playlist or a single video")
	cmd.Flags().StringP("cookie", "c", "", "Cookie header value copied from the browser (or "+constant.EnvCookie+")")
	cmd.Flags().StringP("items", "i", "", "Select entries: first, last, all, N, A-B or @substring@")
	cmd.Flags().StringP("match", "m", "", "Keep only entries whose name fuzzy-matches the query")
}

// parseRequest validates the command line without touching the network.
func parseRequest(cmd *cobra.Command, needOut bool) (*request, error) {
	var (
		rawURL = lo.Must(cmd.Flags().GetString("url"))
		cookie = lo.Must(cmd.Flags().GetString("cookie"))
		items  = lo.Must(cmd.Flags().GetString("items"))
		match  = lo.Must(cmd.Flags().GetString("match"))
		out    string
	)

	if needOut {
		out = lo.Must(cmd.Flags().GetString("out"))
	} else if f := cmd.Flags().Lookup("out"); f != nil {
		out = f.Value.String()
	}

	if rawURL == "" {
		return nil, errors.New("missing page url, pass it with --url")
	}

	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	if needOut && out == "" {
		return nil, errors.New("missing output directory, pass it with --out")
	}

	if cookie == "" {
		cookie = os.Getenv(constant.EnvCookie)
	}

	if cookie == "" {
		return nil, fmt.Errorf("missing session cookie, pass it with --cookie or set %s", constant.EnvCookie)
	}

	if !httpguts.ValidHeaderFieldValue(cookie) {
		return nil, errors.New("invalid session cookie: it contains line breaks or other control characters")
	}

	if retries := viper.GetInt(key.DownloadRetries); retries < 0 {
		return nil, fmt.Errorf("invalid retry count %d: must not be negative", retries)
	}

	var filters []filter.Filter
	if items != "" {
		f, err := filter.ParseItems(items)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	filters = append(filters, filter.Match(match))

	return &request{
		url:    rawURL,
		out:    out,
		cookie: cookie,
		filter: filter.Chain(filters...),
	}, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", rawURL)
	}

	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", rawURL)
	}

	return nil
}

func newClient(cookie string) *http.Client {
	return network.New(network.Options{
		Cookie:         cookie,
		UserAgent:      viper.GetString(key.NetworkUserAgent),
		Timeout:        time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		ImpersonateTLS: viper.GetBool(key.NetworkImpersonateTLS),
	})
}

func newSource(client *http.Client) source.Source {
	return tube.New(client, tube.Selectors{
		List:  viper.GetString(key.ScraperListSelector),
		Item:  viper.GetString(key.ScraperItemSelector),
		URL:   viper.GetString(key.ScraperURLAttribute),
		Title: viper.GetString(key.ScraperTitleSelector),
	}, viper.GetInt(key.DownloadRetries))
}
