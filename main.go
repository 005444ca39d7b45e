package main

import (
	"os"

	"github.com/Carmen-Shannon/oxy-rt/cmd"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "oxy-rt"
	app.Usage = "toggle ray traced render features and upscaling on a live scene"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "TOML configuration file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "window",
			Usage: "render the scene in a window",
			Description: `
Open a GLFW window rendered with WebGPU. The number keys toggle global ray
tracing and each traced effect, T toggles upscaling and C cycles its quality.
The window title shows every indicator. Volume effect settings are saved to the
configured profile on exit.`,
			Action: cmd.RunWindow,
		},
		{
			Name:  "terminal",
			Usage: "show the ray tracing controls in the terminal",
			Description: `
Draw the indicators in the terminal and render headless. Click a row to toggle
that feature or use the same keys as the window mode.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "log-file",
					Usage: "append log output to this file instead of discarding it",
				},
			},
			Action: cmd.RunTerminal,
		},
		{
			Name:   "controls",
			Usage:  "list key bindings",
			Action: cmd.ListControls,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
