package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/landmark-editor/config"
	"github.com/soocke/landmark-editor/debug"
	"github.com/soocke/landmark-editor/ui/model"
	"github.com/soocke/landmark-editor/ui/presenter"
	"github.com/soocke/landmark-editor/ui/theme"
	"github.com/soocke/landmark-editor/ui/view"
)

const (
	// tick paces frame flushes; drags are coalesced to one redraw per tick.
	tick = 33 * time.Millisecond

	defaultWidth  = 1180
	defaultHeight = 900
)

type app struct {
	config  *config.Config
	cfgPath string
	logger  *slog.Logger
	afterID string
	cancel  context.CancelFunc
	c       *AppContainer
}

// NewApp prepares the main window. The container is built here so scheme
// errors surface before Tk takes over.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, logger, cfgPath)
	if err != nil {
		return nil, err
	}
	a := &app{config: cfg, cfgPath: cfgPath, logger: logger, c: c}

	App.WmTitle(title)
	theme.SetDark(cfg.DarkMode)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	geometry := fmt.Sprintf("%dx%d+100+100", defaultWidth, defaultHeight)
	if _, ok := model.ParseGeometry(cfg.WindowGeometry); ok {
		geometry = cfg.WindowGeometry
	}
	WmGeometry(App, geometry)
	return a, nil
}

// Start builds the window, opens initial (or the last directory when empty)
// and runs the Tk event loop until the window closes.
func (a *app) Start(initial string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if a.config.Debug {
		debug.StartRuntimeLogger(ctx, 5*time.Second, a.logger)
	}

	ed := a.c.EditorPresenter
	l := a.logger
	a.c.RootView.Build(view.Handlers{
		OpenPath: presenter.Guard1(l, "open", func(path string) {
			if err := ed.OpenPath(path); err == nil {
				a.config.LastDir = dirOf(path)
			}
		}),
		Save:          presenter.Guard(l, "save", ed.Save),
		Next:          presenter.Guard(l, "next", ed.Next),
		Prev:          presenter.Guard(l, "prev", ed.Prev),
		Delete:        presenter.Guard(l, "delete", ed.Delete),
		Exit:          a.exitHandler,
		PointerDown:   presenter.Guard3(l, "pointer_down", ed.PointerDown),
		PointerMove:   presenter.Guard2(l, "pointer_move", ed.PointerMove),
		PointerUp:     presenter.Guard(l, "pointer_up", ed.PointerUp),
		Nudge:         presenter.Guard3(l, "nudge", ed.Nudge),
		ApplySettings: presenter.Guard1(l, "settings", a.applySettings),
	})

	if initial == "" {
		initial = a.config.LastDir
	}
	if initial != "" {
		if err := ed.OpenPath(initial); err != nil && a.logger != nil {
			a.logger.Warn("initial open failed", "path", initial, "error", err)
		}
	}

	a.c.Loop.Schedule = a.scheduleUpdate
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) update() {
	defer presenter.Recover(a.logger, "update")
	a.c.Loop.Tick()
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps every tick on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) applySettings(cfg *config.Config) {
	theme.SetDark(cfg.DarkMode)
	ed := a.c.EditorPresenter
	ed.ApplyStyle(Style(cfg), cfg.LineWidth, cfg.ShowLabels)
	ed.SetEditOptions(cfg.NudgeStep, cfg.AutoSave)
}

func (a *app) exitHandler() {
	defer presenter.Recover(a.logger, "exit")
	if err := a.c.EditorPresenter.Close(); err != nil && !a.c.RootView.ConfirmQuit(err) {
		return
	}
	a.persistWindow()
	if a.cancel != nil {
		a.cancel()
	}
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

// persistWindow stores the window geometry and last directory.
func (a *app) persistWindow() {
	if a.cfgPath == "" {
		return
	}
	if g, ok := model.ParseGeometry(WmGeometry(App)); ok {
		a.config.WindowGeometry = model.FormatGeometry(g)
	}
	if err := a.config.Save(a.cfgPath); err != nil && a.logger != nil {
		a.logger.Error("config save failed", "error", err)
	}
}
