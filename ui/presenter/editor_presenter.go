package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/soocke/landmark-editor/domain/batch"
	"github.com/soocke/landmark-editor/domain/editor"
	"github.com/soocke/landmark-editor/domain/landmark"
	"github.com/soocke/landmark-editor/domain/render"
	"github.com/soocke/landmark-editor/ui/images"
	"github.com/soocke/landmark-editor/ui/model"
)

// EditorView is the canvas window as seen by the editor presenter.
type EditorView interface {
	ShowFrame(img image.Image)
	ClearFrame()
	SetStatus(text string)
	SetTitle(text string)
	ConfirmDelete(path string) bool
}

// ImageLoader decodes an image file.
type ImageLoader func(path string) (image.Image, error)

// Settings are the editor options taken from config.
type Settings struct {
	Bound      image.Point
	Suffix     string
	Siblings   []string
	Extensions []string
	Scheme     landmark.Scheme
	Style      render.Style
	LineWidth  float64
	ShowLabels bool
	NudgeStep  float64
	AutoSave   bool
}

// EditorPresenter drives one editing window: it opens images, forwards
// pointer and key input to the session controller and pushes composed frames
// to the view. All methods run on the UI thread and are nil-safe.
type EditorPresenter struct {
	ws       *model.WorkspaceModel
	timer    *model.TimerModel
	view     EditorView
	load     ImageLoader
	settings Settings
	logger   *slog.Logger
	raster   render.Rasterizer

	listeners []editor.Listener
	now       func() time.Time
}

// NewEditorPresenter returns a presenter. A nil load uses images.Open.
func NewEditorPresenter(ws *model.WorkspaceModel, timer *model.TimerModel, view EditorView, load ImageLoader, settings Settings, logger *slog.Logger) *EditorPresenter {
	if load == nil {
		load = images.Open
	}
	return &EditorPresenter{
		ws: ws, timer: timer, view: view, load: load, settings: settings, logger: logger,
		raster: render.Rasterizer{LineWidth: settings.LineWidth, ShowLabels: settings.ShowLabels},
		now:    time.Now,
	}
}

// AddStateListener subscribes l to the controller of every session opened
// from now on.
func (p *EditorPresenter) AddStateListener(l editor.Listener) {
	if p == nil || l == nil {
		return
	}
	p.listeners = append(p.listeners, l)
	if s := p.ws.Session(); s != nil {
		s.Controller.AddListener(l)
	}
}

// Editing reports whether an image is open.
func (p *EditorPresenter) Editing() bool { return p != nil && p.ws.Session() != nil }

// OpenPath opens a directory (first image) or a single image together with
// the other images of its directory.
func (p *EditorPresenter) OpenPath(path string) error {
	if p == nil || p.ws == nil {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		p.status("Cannot open %s", path)
		return err
	}
	dir, target := path, ""
	if !info.IsDir() {
		dir, target = filepath.Dir(path), path
	}
	list, err := batch.ListImages(dir, p.settings.Extensions)
	if err != nil {
		p.status("Cannot list %s", dir)
		return err
	}
	if err := p.leave(); err != nil {
		return err
	}
	if target != "" && !containsPath(list, target) {
		list = []string{target}
	}
	p.ws.SetImages(list)
	if target != "" {
		p.ws.Navigator().SeekPath(target)
	}
	if p.logger != nil {
		p.logger.Info("workspace opened", "dir", dir, "images", len(list))
	}
	return p.openCurrent()
}

func containsPath(list []string, path string) bool {
	for _, it := range list {
		if it == path {
			return true
		}
	}
	return false
}

// Next saves if needed and moves to the next image. A failed auto-save
// keeps the current image open.
func (p *EditorPresenter) Next() {
	p.step(func(n *batch.Navigator) bool { return n.Next() }, "Last image")
}

// Prev saves if needed and moves to the previous image.
func (p *EditorPresenter) Prev() {
	p.step(func(n *batch.Navigator) bool { return n.Prev() }, "First image")
}

func (p *EditorPresenter) step(move func(*batch.Navigator) bool, atEnd string) {
	if p == nil || p.ws == nil {
		return
	}
	if err := p.leave(); err != nil {
		return
	}
	if !move(p.ws.Navigator()) {
		p.status(atEnd)
		return
	}
	_ = p.openCurrent()
}

// Save writes the landmarks of the open image.
func (p *EditorPresenter) Save() {
	if p == nil || p.ws == nil {
		return
	}
	s := p.ws.Session()
	if s == nil {
		p.status("No image loaded")
		return
	}
	if err := s.Save(); err != nil {
		p.fail("save failed", err)
		return
	}
	p.status("Landmarks saved to %s", filepath.Base(s.LandmarkPath))
}

// Delete asks for confirmation, then removes the current image and its
// sibling files and opens the next one.
func (p *EditorPresenter) Delete() {
	if p == nil || p.ws == nil || p.view == nil {
		return
	}
	path, ok := p.ws.Navigator().Current()
	if !ok {
		p.status("No image loaded")
		return
	}
	if !p.view.ConfirmDelete(path) {
		return
	}
	p.ws.SetSession(nil, nil)
	if errs := batch.DeleteAll([]string{path}, p.settings.Siblings, nil, p.logger); len(errs) > 0 {
		p.fail("delete failed", errors.Join(errs...))
	} else {
		p.status("Deleted %s", filepath.Base(path))
	}
	p.ws.Navigator().Remove()
	_ = p.openCurrent()
}

// PointerDown presses at display coordinates (x, y).
func (p *EditorPresenter) PointerDown(x, y float64, modifier bool) {
	if s := p.session(); s != nil {
		s.Controller.PointerDown(landmark.Point{X: x, Y: y}, modifier)
		p.ws.Invalidate()
	}
}

// PointerMove drags to display coordinates (x, y).
func (p *EditorPresenter) PointerMove(x, y float64) {
	s := p.session()
	if s == nil || s.Controller.Current() == editor.StateIdle {
		return
	}
	if err := s.Controller.PointerMove(landmark.Point{X: x, Y: y}); err != nil {
		p.fail("drag failed", err)
		return
	}
	p.ws.Invalidate()
}

// PointerUp releases the pointer.
func (p *EditorPresenter) PointerUp() {
	if s := p.session(); s != nil {
		s.Controller.PointerUp()
	}
}

// Nudge moves the selected landmark, or its group, by (dx, dy) steps.
func (p *EditorPresenter) Nudge(dx, dy int, group bool) {
	s := p.session()
	if s == nil {
		return
	}
	idx, ok := s.Controller.Selected()
	if !ok {
		p.status("Click a landmark first")
		return
	}
	step := p.settings.NudgeStep
	if step <= 0 {
		step = 1
	}
	if err := s.Controller.Nudge(idx, landmark.Point{X: float64(dx) * step, Y: float64(dy) * step}, group); err != nil {
		p.fail("nudge failed", err)
		return
	}
	p.ws.Invalidate()
}

// ApplyStyle restyles the open scene and future sessions.
func (p *EditorPresenter) ApplyStyle(style render.Style, lineWidth float64, showLabels bool) {
	if p == nil {
		return
	}
	p.settings.Style = style
	p.settings.LineWidth, p.settings.ShowLabels = lineWidth, showLabels
	p.raster.LineWidth, p.raster.ShowLabels = lineWidth, showLabels
	if s := p.session(); s != nil {
		if err := s.Scene.SetStyle(style); err != nil {
			p.fail("restyle failed", err)
		}
	}
	p.ws.Invalidate()
}

// SetEditOptions changes the nudge step and the auto-save policy.
func (p *EditorPresenter) SetEditOptions(nudgeStep float64, autoSave bool) {
	if p == nil {
		return
	}
	p.settings.NudgeStep, p.settings.AutoSave = nudgeStep, autoSave
}

// Flush pushes a new frame to the view when something changed.
func (p *EditorPresenter) Flush() {
	if p == nil || p.ws == nil || p.view == nil || !p.ws.TakeStale() {
		return
	}
	s, base := p.ws.Session(), p.ws.Base()
	if s == nil || base == nil {
		p.view.ClearFrame()
		return
	}
	p.view.ShowFrame(p.raster.Compose(base, s.Scene))
}

// Close saves pending edits before the window goes away. On error the
// session stays open and dirty.
func (p *EditorPresenter) Close() error {
	if p == nil || p.ws == nil {
		return nil
	}
	return p.leave()
}

// Current returns the path of the open image.
func (p *EditorPresenter) Current() (string, bool) {
	if p == nil || p.ws == nil {
		return "", false
	}
	return p.ws.Navigator().Current()
}

func (p *EditorPresenter) session() *editor.Session {
	if p == nil || p.ws == nil {
		return nil
	}
	return p.ws.Session()
}

// leave auto-saves a dirty session. The failure is left as the last status
// and the caller must not replace the session.
func (p *EditorPresenter) leave() error {
	s := p.ws.Session()
	if s == nil || !s.Dirty || !p.settings.AutoSave {
		return nil
	}
	if err := s.Save(); err != nil {
		p.fail("auto-save failed", err)
		return err
	}
	return nil
}

func (p *EditorPresenter) openCurrent() error {
	nav := p.ws.Navigator()
	path, ok := nav.Current()
	if !ok {
		p.ws.SetSession(nil, nil)
		p.title("")
		p.status("No images")
		return nil
	}
	p.title(fmt.Sprintf("%s (%d/%d)", filepath.Base(path), nav.Index()+1, nav.Len()))
	img, err := p.load(path)
	if err != nil {
		p.ws.SetSession(nil, nil)
		p.fail("image load failed", err)
		return err
	}
	sess, err := editor.OpenSession(path, img.Bounds().Size(), editor.Options{
		Bound:  p.settings.Bound,
		Suffix: p.settings.Suffix,
		Scheme: p.settings.Scheme,
		Style:  p.settings.Style,
		Logger: p.logger,
	})
	if err != nil {
		p.ws.SetSession(nil, nil)
		p.fail("landmark load failed", err)
		return err
	}
	for _, l := range p.listeners {
		sess.Controller.AddListener(l)
	}
	p.ws.SetSession(sess, images.ScaleTo(img, sess.Scaler.DisplaySize()))
	p.timer.NextImage(p.now())
	if sess.Missing {
		p.status("No landmarks found for %s", filepath.Base(path))
	} else {
		p.status("Loaded %d landmarks", sess.Store.Len())
	}
	return nil
}

func (p *EditorPresenter) title(text string) {
	if p.view != nil {
		p.view.SetTitle(text)
	}
}

func (p *EditorPresenter) status(format string, args ...any) {
	if p.view != nil {
		p.view.SetStatus(fmt.Sprintf(format, args...))
	}
}

func (p *EditorPresenter) fail(msg string, err error) {
	if p.logger != nil {
		p.logger.Error(msg, "error", err)
	}
	p.status("%s: %v", msg, err)
}
