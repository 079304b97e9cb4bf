package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tubedl/tubedl/constant"
	"github.com/tubedl/tubedl/filesystem"
	"github.com/tubedl/tubedl/where"
)

// run executes a subcommand through the root command and returns what it printed.
func run(args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	whereCmd.SetOut(&out)
	versionCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	So(rootCmd.Execute(), ShouldBeNil)
	return out.String()
}

// resetFlags restores every local flag of cmd to its default and unmarks it as changed.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			lo.Must0(slice.Replace(nil))
		} else {
			lo.Must0(f.Value.Set(f.DefValue))
		}
		f.Changed = false
	})
}

func TestWhereCommand(t *testing.T) {
	Convey("Given a custom config directory", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/tubedl-where")
		Reset(func() {
			resetFlags(whereCmd)
		})

		Convey("--config prints only that directory", func() {
			So(strings.TrimSpace(run("where", "--config")), ShouldEqual, "/tubedl-where")
		})

		Convey("--logs prints the log directory under it", func() {
			So(strings.TrimSpace(run("where", "--logs")), ShouldEqual, filepath.Join("/tubedl-where", "logs"))
		})

		Convey("Without flags every visible path is listed", func() {
			out := run("where")
			So(out, ShouldContainSubstring, "--config")
			So(out, ShouldContainSubstring, "--logs")
			So(out, ShouldNotContainSubstring, "--config-file")

			Convey("And listing again shows the same paths", func() {
				So(run("where"), ShouldEqual, out)
			})
		})
	})
}

func TestClearCommand(t *testing.T) {
	Convey("Given a cache with a cached release lookup", t, func() {
		filesystem.SetMemMapFs()
		cached := filepath.Join(where.Cache(), "version.json")
		lo.Must0(filesystem.API().WriteFile(cached, []byte(`{}`), 0o644))
		Reset(func() {
			resetFlags(clearCmd)
		})

		Convey("clear --cache removes it", func() {
			run("clear", "--cache")
			So(lo.Must(filesystem.API().Exists(cached)), ShouldBeFalse)
		})
	})
}

func TestVersionCommand(t *testing.T) {
	Convey("Given the version command", t, func() {
		Reset(func() {
			resetFlags(versionCmd)
		})

		Convey("--short prints only the version", func() {
			So(strings.TrimSpace(run("version", "--short")), ShouldEqual, constant.Version)
		})
	})
}
