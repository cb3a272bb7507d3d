package model

import (
	"image"

	"github.com/soocke/landmark-editor/domain/batch"
	"github.com/soocke/landmark-editor/domain/editor"
)

// WorkspaceModel holds the image list, the open session and its display
// image. No synchronization needed: all access happens on the UI thread.
// The zero value is usable.
type WorkspaceModel struct {
	nav     *batch.Navigator
	session *editor.Session
	base    *image.RGBA
	stale   bool
}

func NewWorkspaceModel() *WorkspaceModel { return &WorkspaceModel{nav: batch.NewNavigator(nil)} }

// SetImages replaces the image list and points the cursor at the first item.
func (m *WorkspaceModel) SetImages(paths []string) {
	if m == nil {
		return
	}
	m.nav = batch.NewNavigator(paths)
}

// Navigator returns the cursor over the image list.
func (m *WorkspaceModel) Navigator() *batch.Navigator {
	if m == nil {
		return nil
	}
	if m.nav == nil {
		m.nav = batch.NewNavigator(nil)
	}
	return m.nav
}

// SetSession installs the session for the current image and its
// display-sized base image. A nil session closes the image.
func (m *WorkspaceModel) SetSession(s *editor.Session, base *image.RGBA) {
	if m == nil {
		return
	}
	m.session, m.base = s, base
	m.stale = true
}

// Session returns the open session, if any.
func (m *WorkspaceModel) Session() *editor.Session {
	if m == nil {
		return nil
	}
	return m.session
}

// Base returns the display-sized image under the overlay.
func (m *WorkspaceModel) Base() *image.RGBA {
	if m == nil {
		return nil
	}
	return m.base
}

// Invalidate requests a redraw on the next flush.
func (m *WorkspaceModel) Invalidate() {
	if m != nil {
		m.stale = true
	}
}

// TakeStale reports whether a redraw was requested and clears the request.
func (m *WorkspaceModel) TakeStale() bool {
	if m == nil || !m.stale {
		return false
	}
	m.stale = false
	return true
}
