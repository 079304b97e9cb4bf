package downloader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubedl/tubedl/filesystem"
	"github.com/tubedl/tubedl/network"
	"github.com/tubedl/tubedl/source"
)

const payload = "not really an mp4 but close enough"

func TestDownload(t *testing.T) {
	Convey("Given a media server and an empty disk", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/out", 0o755))

		var hits atomic.Int32
		var cookie atomic.Value
		mux := http.NewServeMux()
		mux.HandleFunc("/v.mp4", func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			cookie.Store(r.Header.Get("Cookie"))
			_, _ = io.WriteString(w, payload)
		})
		mux.HandleFunc("/chunked.mp4", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, payload)
			w.(http.Flusher).Flush()
			_, _ = io.WriteString(w, payload)
		})
		mux.HandleFunc("/short.mp4", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", "1000")
			_, _ = io.WriteString(w, payload)
		})
		mux.HandleFunc("/expired.mp4", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/login", http.StatusFound)
		})
		mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = io.WriteString(w, "<html>Please sign in</html>")
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		opts := Options{
			Client: network.New(network.Options{Cookie: "s=1"}),
			Quiet:  true,
			Confirm: func(string) (bool, error) {
				panic("unexpected prompt")
			},
		}
		video := &source.Video{Name: "Lecture", URL: srv.URL + "/v.mp4"}
		ctx := context.Background()

		Convey("The video is written in full", func() {
			res, err := Download(ctx, video, "/out/Lecture.mp4", opts)
			So(err, ShouldBeNil)
			So(res.Status, ShouldEqual, Downloaded)
			So(res.Bytes, ShouldEqual, len(payload))
			So(string(lo.Must(fs.ReadFile("/out/Lecture.mp4"))), ShouldEqual, payload)
			So(lo.Must(fs.Exists("/out/Lecture.mp4"+PartSuffix)), ShouldBeFalse)
			So(cookie.Load(), ShouldEqual, "s=1")
		})

		Convey("Given the file already exists", func() {
			lo.Must0(fs.WriteFile("/out/Lecture.mp4", []byte("old"), 0o644))

			Convey("Declining the prompt skips without a request", func() {
				asked := ""
				opts.Confirm = func(msg string) (bool, error) {
					asked = msg
					return false, nil
				}
				res, err := Download(ctx, video, "/out/Lecture.mp4", opts)
				So(err, ShouldBeNil)
				So(res.Status, ShouldEqual, Skipped)
				So(asked, ShouldContainSubstring, "/out/Lecture.mp4")
				So(hits.Load(), ShouldEqual, 0)
				So(string(lo.Must(fs.ReadFile("/out/Lecture.mp4"))), ShouldEqual, "old")
			})

			Convey("Accepting the prompt overwrites", func() {
				opts.Confirm = func(string) (bool, error) { return true, nil }
				res, err := Download(ctx, video, "/out/Lecture.mp4", opts)
				So(err, ShouldBeNil)
				So(res.Status, ShouldEqual, Downloaded)
				So(string(lo.Must(fs.ReadFile("/out/Lecture.mp4"))), ShouldEqual, payload)
			})

			Convey("Force overwrites without asking", func() {
				opts.Force = true
				_, err := Download(ctx, video, "/out/Lecture.mp4", opts)
				So(err, ShouldBeNil)
				So(string(lo.Must(fs.ReadFile("/out/Lecture.mp4"))), ShouldEqual, payload)
			})

			Convey("A failing prompt is an error", func() {
				opts.Confirm = func(string) (bool, error) { return false, errors.New("interrupt") }
				_, err := Download(ctx, video, "/out/Lecture.mp4", opts)
				So(err, ShouldNotBeNil)
			})
		})

		Convey("A truncated body leaves nothing behind", func() {
			video.URL = srv.URL + "/short.mp4"
			_, err := Download(ctx, video, "/out/Lecture.mp4", opts)
			So(err, ShouldNotBeNil)
			So(lo.Must(fs.Exists("/out/Lecture.mp4")), ShouldBeFalse)
			So(lo.Must(fs.Exists("/out/Lecture.mp4"+PartSuffix)), ShouldBeFalse)
		})

		Convey("A missing video is a status error", func() {
			video.URL = srv.URL + "/nope.mp4"
			_, err := Download(ctx, video, "/out/Lecture.mp4", opts)
			var se *network.StatusError
			So(errors.As(err, &se), ShouldBeTrue)
			So(se.Code, ShouldEqual, http.StatusNotFound)
			So(lo.Must(fs.Exists("/out/Lecture.mp4")), ShouldBeFalse)
		})

		Convey("A login page instead of the video is an error", func() {
			video.URL = srv.URL + "/expired.mp4"
			_, err := Download(ctx, video, "/out/Lecture.mp4", opts)
			var ce *network.ContentError
			So(errors.As(err, &ce), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "text/html")
			So(err.Error(), ShouldContainSubstring, "cookie")
			So(lo.Must(fs.Exists("/out/Lecture.mp4")), ShouldBeFalse)
			So(lo.Must(fs.Exists("/out/Lecture.mp4"+PartSuffix)), ShouldBeFalse)
		})

		Convey("Progress is drawn unless quiet", func() {
			var out bytes.Buffer
			opts.Quiet = false
			opts.Progress = &out

			_, err := Download(ctx, video, "/out/Lecture.mp4", opts)
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Lecture")
			So(out.String(), ShouldContainSubstring, "100%")
			So(strings.HasSuffix(out.String(), "\n"), ShouldBeTrue)

			Convey("and falls back to a static line without a length", func() {
				out.Reset()
				video.URL = srv.URL + "/chunked.mp4"
				_, err := Download(ctx, video, "/out/Other.mp4", opts)
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "Downloading...")
				So(string(lo.Must(fs.ReadFile("/out/Other.mp4"))), ShouldEqual, payload+payload)
			})
		})
	})
}

func TestFitName(t *testing.T) {
	Convey("fitName", t, func() {
		So(fitName("short", 8), ShouldEqual, "short   ")
		So(fitName("a much longer name", 8), ShouldEqual, "a muc...")
		So(fitName("anything", 2), ShouldBeEmpty)
	})
}

func TestStatus(t *testing.T) {
	Convey("Status strings", t, func() {
		So(Downloaded.String(), ShouldEqual, "downloaded")
		So(Skipped.String(), ShouldEqual, "skipped")
	})
}
