package config

import (
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubedl/tubedl/filesystem"
	"github.com/tubedl/tubedl/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate defaults", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ScraperURLAttribute), ShouldEqual, "data-vidurl")
			So(viper.GetInt(key.NetworkTimeout), ShouldEqual, 10)
		})

		Convey("Should read overrides from the environment", func() {
			t.Setenv("TUBEDL_DOWNLOAD_EXTENSION", "webm")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.DownloadExtension), ShouldEqual, "webm")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("scraper.url_attribute"), ShouldEqual, "scraper_url_attribute")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		f := Default[key.DownloadRetries]

		Convey("Env is prefixed and upper-cased", func() {
			So(f.Env(), ShouldEqual, "TUBEDL_DOWNLOAD_RETRIES")
		})

		Convey("JSON carries the type and default", func() {
			b, err := json.Marshal(&f)
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"type":"int"`)
			So(string(b), ShouldContainSubstring, `"default":2`)
		})

		Convey("Pretty mentions the key", func() {
			So(f.Pretty(), ShouldContainSubstring, key.DownloadRetries)
		})
	})

	Convey("No field ever stores the cookie", t, func() {
		for name := range Default {
			So(strings.Contains(name, "cookie"), ShouldBeFalse)
		}
	})
}
