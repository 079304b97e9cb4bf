package filter

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubedl/tubedl/source"
)

func names(videos []*source.Video) []string {
	return lo.Map(videos, func(v *source.Video, _ int) string { return v.Name })
}

func TestParseItems(t *testing.T) {
	Convey("Given five videos", t, func() {
		videos := lo.Map([]string{"VO 1 Intro", "UE 1", "VO 2 Graphen", "UE 2", "VO 3 Übersicht"}, func(n string, i int) *source.Video {
			return &source.Video{Index: i, Name: n}
		})

		apply := func(desc string) []string {
			f, err := ParseItems(desc)
			So(err, ShouldBeNil)
			return names(f(videos))
		}

		Convey("all and empty keep everything", func() {
			So(apply("all"), ShouldHaveLength, 5)
			So(apply(""), ShouldHaveLength, 5)
		})

		Convey("first and last", func() {
			So(apply("first"), ShouldResemble, []string{"VO 1 Intro"})
			So(apply("last"), ShouldResemble, []string{"VO 3 Übersicht"})
		})

		Convey("index", func() {
			So(apply("2"), ShouldResemble, []string{"VO 2 Graphen"})
			So(apply("9"), ShouldBeEmpty)
		})

		Convey("range is inclusive and clamped", func() {
			So(apply("1-3"), ShouldResemble, []string{"UE 1", "VO 2 Graphen", "UE 2"})
			So(apply("3-99"), ShouldResemble, []string{"UE 2", "VO 3 Übersicht"})
			So(apply("7-9"), ShouldBeEmpty)
		})

		Convey("substring", func() {
			So(apply("@ue@"), ShouldResemble, []string{"UE 1", "UE 2"})
		})

		Convey("invalid selectors are rejected", func() {
			for _, bad := range []string{"one", "3-1", "a-b", "-"} {
				_, err := ParseItems(bad)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("fuzzy match ignores case and accents", func() {
			So(names(Match("ubersicht")(videos)), ShouldResemble, []string{"VO 3 Übersicht"})
			So(names(Match("vo2")(videos)), ShouldResemble, []string{"VO 2 Graphen"})
			So(Match("")(videos), ShouldHaveLength, 5)
		})

		Convey("chain applies in order", func() {
			first := lo.Must(ParseItems("first"))
			So(names(Chain(Match("ue"), first)(videos)), ShouldResemble, []string{"UE 1"})
		})
	})
}
