package cmd

import (
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-rt/engine"
	"github.com/Carmen-Shannon/oxy-rt/engine/hud"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
	"github.com/Carmen-Shannon/oxy-rt/engine/raytracing"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/log"
	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli"
)

// RunTerminal draws the ray tracing controls in the terminal and renders headless.
// Rows are clickable buttons; keys follow the configured bindings.
func RunTerminal(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	// Log lines would tear the HUD, so they go to a file or nowhere.
	var sink io.Writer = io.Discard
	if path := ctx.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		defer f.Close()
		sink = f
	}
	log.SetSink(sink)
	defer log.SetSink(os.Stdout)

	s, err := newSession(cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if err := screen.Init(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	term := hud.NewTerminal(screen, s.keyboard, cfg.Window.Title)
	for _, f := range raytracing.Features() {
		term.AddRow(f.Title(), s.labels[f], f.Action())
	}
	term.SetFooter(s.upscaling)

	r, err := renderer.NewRenderer(renderer.BackendTypeHeadless, nil,
		renderer.WithCamera(s.cam),
		renderer.WithEffectSource(s.scene),
		renderer.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		screen.Fini()
		return cli.NewExitError(err.Error(), 1)
	}

	e := engine.NewEngine(
		engine.WithRenderer(r),
		engine.WithScene(0, s.scene),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profiling),
	)
	e.SetTickCallback(func(float32) {
		if s.tick() {
			e.Quit()
		}
	})
	e.SetRenderCallback(func(float32) {
		term.Draw()
	})

	go term.Run(e.Quit)
	logger.Noticef("terminal mode, quit with %s or Esc", quitKey(s.keyboard))
	e.Run()

	screen.Fini()
	r.Release()
	if err := s.close(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func quitKey(kb *input.Keyboard) string {
	if key, ok := kb.Bindings().KeyFor(input.ActionQuit); ok {
		return keyLabel(key)
	}
	return "Ctrl+C"
}
