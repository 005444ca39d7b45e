package cmd

import (
	"bytes"
	"fmt"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var actionUsage = map[input.Action]string{
	input.ActionToggleGlobal:             "toggle global ray tracing (forces every effect on or off)",
	input.ActionToggleShadows:            "toggle ray traced shadows",
	input.ActionToggleReflections:        "toggle ray traced reflections",
	input.ActionToggleGlobalIllumination: "toggle ray traced global illumination",
	input.ActionToggleAmbientOcclusion:   "toggle ray traced ambient occlusion",
	input.ActionToggleUpscaling:          "toggle upscaling",
	input.ActionCycleUpscalingQuality:    "cycle upscaling quality while upscaling is on",
	input.ActionQuit:                     "quit",
}

// ListControls prints the key bindings resolved from the configuration.
func ListControls(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	var buf bytes.Buffer
	renderControls(&buf, bindings)
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}

func renderControls(buf *bytes.Buffer, bindings input.Bindings) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Key", "Action", "Description"})
	for _, action := range bindings.Sorted() {
		key, _ := bindings.KeyFor(action)
		table.Append([]string{keyLabel(key), action.String(), actionUsage[action]})
	}
	table.SetFooter([]string{"", "", "terminal mode: click a row to toggle it"})
	table.Render()
}

func keyLabel(key uint32) string {
	return common.KeyName(key)
}
