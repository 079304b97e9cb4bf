package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubedl/tubedl/filesystem"
	"github.com/tubedl/tubedl/key"
	"github.com/tubedl/tubedl/where"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/conf")

		Convey("Disabled logging creates nothing", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			WithFields(logrus.Fields{"a": 1}).Info("dropped")
			Infof("dropped %d", 2)
			So(lo.Must(filesystem.API().Exists(filepath.Join("/conf", "logs"))), ShouldBeFalse)
		})

		Convey("Enabled logging writes a daily file", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)

			Infof("hello %s", "world")
			Debugf("details %d", 42)
			path := filepath.Join("/conf", "logs", time.Now().Format("2006-01-02")+".log")
			content := string(lo.Must(filesystem.API().ReadFile(path)))
			So(content, ShouldContainSubstring, "hello world")
			So(content, ShouldContainSubstring, "details 42")
		})
	})
}
