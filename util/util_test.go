package util

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubedl/tubedl/filesystem"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should keep ordinary titles untouched", func() {
			So(SanitizeFilename("VO 1 - Einführung"), ShouldEqual, "VO 1 - Einführung")
		})
		Convey("Should replace path separators and reserved chars", func() {
			So(SanitizeFilename("a/b\\c:d?"), ShouldEqual, "a_b_c_d_")
		})
		Convey("Should collapse whitespace and control characters", func() {
			So(SanitizeFilename("line\none\t  two"), ShouldEqual, "line_one_ two")
		})
		Convey("Should trim dots and spaces", func() {
			So(SanitizeFilename(" ..hidden. "), ShouldEqual, "hidden")
			So(SanitizeFilename("../.."), ShouldEqual, "_")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(3, "video", "videos"), ShouldEqual, "3 videos")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("logs"), ShouldEqual, "Logs")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/d/sub", 0o755))
		lo.Must0(fs.WriteFile("/d/sub/f", []byte("x"), 0o644))

		So(Delete("/d"), ShouldBeNil)
		So(lo.Must(fs.Exists("/d/sub/f")), ShouldBeFalse)
		So(Delete("/missing"), ShouldNotBeNil)
	})
}
