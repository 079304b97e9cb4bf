package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubedl/tubedl/constant"
	"github.com/tubedl/tubedl/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/tubedl-conf")
			So(Config(), ShouldEqual, "/tmp/tubedl-conf")
			So(lo.Must(filesystem.API().IsDir("/tmp/tubedl-conf")), ShouldBeTrue)
			So(ConfigFile(), ShouldEqual, filepath.Join("/tmp/tubedl-conf", constant.App+".toml"))
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(filepath.Base(path), ShouldEqual, "logs")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
