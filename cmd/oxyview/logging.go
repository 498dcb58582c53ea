package main

import (
	"github.com/Carmen-Shannon/oxy-forward/log"
	"github.com/urfave/cli"
)

var logger = log.For(log.CLI)

func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if levels := ctx.GlobalString("log"); levels != "" {
		return log.ParseModuleLevels(levels)
	}
	return nil
}
