package version

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/tubedl/tubedl/color"
	"github.com/tubedl/tubedl/constant"
	"github.com/tubedl/tubedl/icon"
	"github.com/tubedl/tubedl/key"
	"github.com/tubedl/tubedl/style"
	"github.com/tubedl/tubedl/util"
)

// Notify prints a notice when a newer release exists and cli.version_check is on.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}
	if newer, err := Newer(latest, constant.Version); err != nil || !newer {
		return
	}

	fmt.Printf(`
%s New version is available %s %s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
	)
}
