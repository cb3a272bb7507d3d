package view

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/soocke/landmark-editor/config"
	"github.com/soocke/landmark-editor/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const appTitle = "Landmark Editor"

// Handlers are the callbacks the root view invokes on user input.
type Handlers struct {
	OpenPath      func(path string)
	Save          func()
	Next          func()
	Prev          func()
	Delete        func()
	Exit          func()
	PointerDown   func(x, y float64, modifier bool)
	PointerMove   func(x, y float64)
	PointerUp     func()
	Nudge         func(dx, dy int, group bool)
	ApplySettings func(*config.Config)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Canvas   Canvas
	Timer    TimerStats
	Settings SettingsPanel

	// Widgets
	StateLabel  *TLabelWidget
	StatusLabel *TLabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowFrame(img image.Image)
	ClearFrame()
	SetStatus(text string)
	SetTitle(text string)
	ConfirmDelete(path string) bool
	SetStateLabel(text string)
	SetTimes(current, total time.Duration)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout and binds pointer and key input.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: toolbar
	bar := Frame()
	Grid(bar, Row(0), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		text  string
		style string
		fn    func()
	}{
		{"Open Image", theme.StylePrimaryButton, rv.askFile(h.OpenPath)},
		{"Open Folder", theme.StylePrimaryButton, rv.askDir(h.OpenPath)},
		{"Save", theme.StylePrimaryButton, h.Save},
		{"< Prev", "", h.Prev},
		{"Next >", "", h.Next},
		{"Delete", theme.StyleDangerButton, h.Delete},
		{"Exit", "", h.Exit},
	}
	for i, b := range buttons {
		opts := []Opt{Txt(b.text), Command(b.fn)}
		if b.style != "" {
			opts = append(opts, Style(b.style))
		}
		Grid(TButton(opts...), In(bar), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}

	// Row 1: canvas and settings side panel
	rv.Canvas = NewCanvas(1, image.Pt(rv.cfg.DisplayWidth, rv.cfg.DisplayHeight))
	side := Frame()
	Grid(side, Row(1), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger, h.ApplySettings)
	rv.Settings.Build(side, 0)

	// Row 2: status bar
	status := Frame()
	Grid(status, Row(2), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.StateLabel = TLabel(Txt("Mode: idle"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, In(status), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	rv.Timer = NewTimerStats(status, 0, 1)
	rv.StatusLabel = TLabel(Txt("Open an image or a folder to start"), Style(theme.StyleStatusLabel))
	Grid(rv.StatusLabel, In(status), Row(0), Column(3), Sticky("we"), Padx("0.4m"))

	rv.bindPointer(h)
	rv.bindKeys(h)
}

// bindPointer maps mouse button 1 on the canvas to the pointer handlers.
// The modifier variant is matched by Tk before the plain press.
func (rv *RootView) bindPointer(h Handlers) {
	lbl := rv.Canvas.Widget()
	mod := rv.cfg.GroupModifier
	Bind(lbl, "<ButtonPress-1>", Command(func(e *Event) {
		h.PointerDown(float64(e.X), float64(e.Y), false)
	}))
	Bind(lbl, fmt.Sprintf("<%s-ButtonPress-1>", mod), Command(func(e *Event) {
		h.PointerDown(float64(e.X), float64(e.Y), true)
	}))
	Bind(lbl, "<B1-Motion>", Command(func(e *Event) {
		h.PointerMove(float64(e.X), float64(e.Y))
	}))
	Bind(lbl, "<ButtonRelease-1>", Command(h.PointerUp))
}

// bindKeys installs window shortcuts. Commands use Control so that typing
// into the settings fields never triggers them.
func (rv *RootView) bindKeys(h Handlers) {
	arrows := []struct {
		key    string
		dx, dy int
	}{{"Left", -1, 0}, {"Right", 1, 0}, {"Up", 0, -1}, {"Down", 0, 1}}
	for _, a := range arrows {
		a := a
		Bind(App, fmt.Sprintf("<Control-%s>", a.key), Command(func() { h.Nudge(a.dx, a.dy, false) }))
		Bind(App, fmt.Sprintf("<Control-Shift-%s>", a.key), Command(func() { h.Nudge(a.dx, a.dy, true) }))
	}
	Bind(App, "<Control-s>", Command(h.Save))
	Bind(App, "<Control-n>", Command(h.Next))
	Bind(App, "<Control-p>", Command(h.Prev))
	Bind(App, "<Next>", Command(h.Next))
	Bind(App, "<Prior>", Command(h.Prev))
	Bind(App, "<Control-Delete>", Command(h.Delete))
}

func (rv *RootView) askFile(open func(string)) func() {
	return func() {
		files := GetOpenFile(Title("Open image"))
		if len(files) > 0 && files[0] != "" {
			open(files[0])
		}
	}
}

func (rv *RootView) askDir(open func(string)) func() {
	return func() {
		if dir := ChooseDirectory(Title("Open folder")); dir != "" {
			if rv.cfg != nil {
				rv.cfg.LastDir = dir
			}
			open(dir)
		}
	}
}

// ShowFrame displays a composed editor frame.
func (rv *RootView) ShowFrame(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.Show(img)
	}
}

// ClearFrame blanks the canvas.
func (rv *RootView) ClearFrame() {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.Clear()
	}
}

// SetStatus updates the status bar text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetTitle sets the window title; an empty text restores the plain title.
func (rv *RootView) SetTitle(text string) {
	if text == "" {
		App.WmTitle(appTitle)
		return
	}
	App.WmTitle(appTitle + " - " + text)
}

// ConfirmDelete asks before an image and its sibling files are removed.
func (rv *RootView) ConfirmDelete(path string) bool {
	answer := MessageBox(
		Icon("warning"),
		Title("Delete image"),
		Msg(fmt.Sprintf("Delete %s and its annotation files?", filepath.Base(path))),
		Type("yesno"),
	)
	return answer == "yes"
}

// ConfirmQuit asks whether to close although unsaved edits could not be
// written.
func (rv *RootView) ConfirmQuit(err error) bool {
	answer := MessageBox(
		Icon("warning"),
		Title("Unsaved landmarks"),
		Msg(fmt.Sprintf("Saving failed: %v\n\nQuit and discard the edits?", err)),
		Type("yesno"),
	)
	return answer == "yes"
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetTimes updates the per-image and total durations.
func (rv *RootView) SetTimes(current, total time.Duration) {
	if rv != nil && rv.Timer != nil {
		rv.Timer.SetTimes(current, total)
	}
}
