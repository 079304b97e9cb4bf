// Package main is the entry point for tubedl.
package main

import (
	"github.com/samber/lo"
	"github.com/tubedl/tubedl/cmd"
	"github.com/tubedl/tubedl/config"
	"github.com/tubedl/tubedl/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
