package cmd

import (
	"github.com/Carmen-Shannon/oxy-rt/config"
	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/urfave/cli"
)

var logger = log.New("oxy-rt")

func setupLogging(ctx *cli.Context, cfg *config.Config) {
	log.SetLevel(cfg.Level())

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
