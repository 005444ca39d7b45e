package cmd

import (
	"time"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
	"github.com/urfave/cli"
)

// RunWindow opens a GLFW window rendered with WebGPU. Ray tracing state is shown in
// the window title and its clear color; the number keys work as the toggle buttons.
func RunWindow(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	s, err := newSession(cfg)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	win := window.NewWindow(
		window.WithTitle(common.Coalesce(cfg.Window.Title, "oxy-rt")),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)
	win.SetKeyDownCallback(s.keyboard.KeyDown)
	win.SetKeyUpCallback(s.keyboard.KeyUp)

	presentMode, _ := cfg.PresentMode()
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithCamera(s.cam),
		renderer.WithEffectSource(s.scene),
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Renderer.MSAA)),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.Software),
	)
	if err != nil {
		_ = win.Close()
		return cli.NewExitError(err.Error(), 1)
	}

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithScene(0, s.scene),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profiling),
	)
	e.SetTickCallback(func(float32) {
		if s.tick() {
			win.RequestClose()
		}
	})
	title := newTitleUpdater(win, common.Coalesce(cfg.Window.Title, "oxy-rt"), titleInterval)
	win.SetUpdateCallback(func() {
		title.update(time.Now(), s.status)
	})

	logger.Noticef("window mode: %s", s.status())
	e.Run()

	r.Release()
	if err := win.Close(); err != nil {
		logger.Warning(err)
	}
	if err := s.close(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

// titleInterval is how often the window title is refreshed from the session status.
const titleInterval = 100 * time.Millisecond

type titleSetter interface {
	SetTitle(title string)
}

// titleUpdater refreshes a window title from a status string. The message pump
// calls it on every iteration, so it rebuilds the status at most once per
// interval and only sets the title when it changed.
type titleUpdater struct {
	win      titleSetter
	base     string
	interval time.Duration

	next time.Time
	last string
}

func newTitleUpdater(win titleSetter, base string, interval time.Duration) *titleUpdater {
	return &titleUpdater{win: win, base: base, interval: interval}
}

func (u *titleUpdater) update(now time.Time, status func() string) {
	if now.Before(u.next) {
		return
	}
	u.next = now.Add(u.interval)

	title := u.base + " | " + status()
	if title == u.last {
		return
	}
	u.last = title
	u.win.SetTitle(title)
}
