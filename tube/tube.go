// Package tube scrapes eStream-style video portals such as TUbe.
package tube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tubedl/tubedl/key"
	"github.com/tubedl/tubedl/log"
	"github.com/tubedl/tubedl/network"
	"github.com/tubedl/tubedl/source"
	"github.com/tubedl/tubedl/util"
)

// ErrNoVideos is returned when a page contains neither playlist items nor a player.
var ErrNoVideos = errors.New("no videos found on page")

// Selectors describe where the portal puts things. The page layout is not a
// published contract, so every selector is configurable.
type Selectors struct {
	List  string
	Item  string
	URL   string
	Title string
}

// DefaultSelectors match the TUbe playlist page.
var DefaultSelectors = Selectors{
	List:  "#div_PLItemsList-Tour",
	Item:  ".playlist",
	URL:   "data-vidurl",
	Title: ".title",
}

// Source implements source.Source for an eStream portal.
type Source struct {
	client    *http.Client
	selectors Selectors
	retries   int
}

// New returns a Source that fetches pages with client.
// Zero-valued selector fields fall back to DefaultSelectors.
func New(client *http.Client, selectors Selectors, retries int) *Source {
	selectors.List = lo.Ternary(selectors.List == "", DefaultSelectors.List, selectors.List)
	selectors.Item = lo.Ternary(selectors.Item == "", DefaultSelectors.Item, selectors.Item)
	selectors.URL = lo.Ternary(selectors.URL == "", DefaultSelectors.URL, selectors.URL)
	selectors.Title = lo.Ternary(selectors.Title == "", DefaultSelectors.Title, selectors.Title)

	return &Source{client: client, selectors: selectors, retries: retries}
}

func (*Source) Name() string {
	return "TUbe"
}

// Resolve fetches pageURL and enumerates the videos on it.
func (s *Source) Resolve(ctx context.Context, pageURL string) (*source.Playlist, error) {
	page, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	resp, err := network.Get(ctx, s.client, pageURL, nil, s.retries)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer util.Ignore(resp.Body.Close)

	// A redirect may have moved us; relative references resolve against the final page.
	if resp.Request != nil && resp.Request.URL != nil {
		page = resp.Request.URL
	}

	if network.IsMedia(resp.Header.Get("Content-Type")) {
		log.Infof("%s is a direct media link", pageURL)
		stem := strings.TrimSuffix(path.Base(page.Path), path.Ext(page.Path))
		return &source.Playlist{
			URL:    pageURL,
			Title:  stem,
			Single: true,
			Videos: []*source.Video{{Name: stem, URL: page.String(), Page: pageURL}},
		}, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	return s.parse(doc, page, pageURL)
}

func (s *Source) parse(doc *goquery.Document, page *url.URL, pageURL string) (*source.Playlist, error) {
	playlist := &source.Playlist{
		URL:   pageURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	doc.Find(s.selectors.List).Find(s.selectors.Item).Each(func(_ int, item *goquery.Selection) {
		ref, _ := item.Attr(s.selectors.URL)
		name := strings.TrimSpace(item.Find(s.selectors.Title).Text())

		mediaURL := absolute(page, ref)
		if mediaURL == "" {
			log.WithFields(logrus.Fields{"page": pageURL, "name": name}).Warn("playlist item without video url")
			return
		}

		log.Debugf("playlist item %d %q at %s", len(playlist.Videos), name, mediaURL)
		playlist.Videos = append(playlist.Videos, &source.Video{
			Index: len(playlist.Videos),
			Name:  name,
			URL:   mediaURL,
			Page:  pageURL,
		})
	})

	if len(playlist.Videos) > 0 {
		log.Infof("found %s on %s", util.Quantify(len(playlist.Videos), "video", "videos"), pageURL)
		return playlist, nil
	}

	video, err := s.single(doc, page, pageURL)
	if err != nil {
		return nil, err
	}

	playlist.Single = true
	playlist.Videos = []*source.Video{video}
	return playlist, nil
}

// single looks for a player on a video page.
// Several elements carrying the video URL attribute mean a playlist the list
// selector no longer matches, which is reported instead of picking the first.
func (s *Source) single(doc *goquery.Document, page *url.URL, pageURL string) (*source.Video, error) {
	if n := doc.Find("[" + s.selectors.URL + "]").Length(); n > 1 {
		log.WithFields(logrus.Fields{"page": pageURL, "count": n}).Warn("video urls outside the playlist list")
		return nil, fmt.Errorf(
			"%w: %d elements carry %s but none is inside %q, check %s",
			ErrNoVideos, n, s.selectors.URL, s.selectors.List, key.ScraperListSelector,
		)
	}

	candidates := []struct {
		selector string
		attr     string
	}{
		{"video source[src]", "src"},
		{"video[src]", "src"},
		{"[" + s.selectors.URL + "]", s.selectors.URL},
		{`meta[property="og:video"]`, "content"},
		{`meta[property="og:video:url"]`, "content"},
	}

	var ref string
	for _, c := range candidates {
		if v, ok := doc.Find(c.selector).First().Attr(c.attr); ok && strings.TrimSpace(v) != "" {
			ref = v
			break
		}
	}
	if ref == "" {
		return nil, ErrNoVideos
	}

	name, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return &source.Video{Name: name, URL: absolute(page, ref), Page: pageURL}, nil
}
