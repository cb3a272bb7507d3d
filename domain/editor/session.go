package editor

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soocke/landmark-editor/domain/annotation"
	"github.com/soocke/landmark-editor/domain/landmark"
	"github.com/soocke/landmark-editor/domain/render"
)

// Options configure a Session.
type Options struct {
	Bound   image.Point // display bound; zero renders at native size
	Suffix  string      // landmark file suffix, annotation.DefaultSuffix when empty
	Scheme  landmark.Scheme
	Style   render.Style
	Surface render.Surface
	Logger  *slog.Logger
}

// Session is the editing context for one image: its landmarks in display
// space, the connectivity model, the scene and the pointer controller.
type Session struct {
	ID           uuid.UUID
	ImagePath    string
	LandmarkPath string
	Native       image.Point

	Store      *landmark.Store
	Model      *landmark.Model
	Scaler     landmark.Scaler
	Scene      *render.Scene
	Controller *Controller

	// Dirty is set by any mutation and cleared by Save.
	Dirty bool
	// Missing reports that no landmark file existed when the session opened.
	Missing bool

	logger *slog.Logger
}

// OpenSession loads the landmarks of imagePath (native pixel size) and
// prepares them for display. A missing landmark file opens an empty session;
// a malformed one is an error.
func OpenSession(imagePath string, native image.Point, opts Options) (*Session, error) {
	s := &Session{
		ID:           uuid.New(),
		ImagePath:    imagePath,
		LandmarkPath: annotation.LandmarkPath(imagePath, opts.Suffix),
		Native:       native,
	}
	if opts.Logger != nil {
		s.logger = opts.Logger.With("session", s.ID.String())
	}
	if opts.Bound == (image.Point{}) {
		s.Scaler = landmark.Identity(native)
	} else {
		s.Scaler = landmark.NewScaler(opts.Bound, native)
	}

	pts, err := annotation.Load(s.LandmarkPath)
	switch {
	case errors.Is(err, annotation.ErrNotFound):
		s.Missing = true
		if s.logger != nil {
			s.logger.Info("no landmarks for image", "path", s.LandmarkPath)
		}
	case err != nil:
		return nil, err
	}

	s.Store = landmark.NewStore()
	s.Store.Load(s.Scaler.AllToDisplay(pts))
	s.Model = landmark.NewModel(opts.Scheme, s.Store.Len())
	s.Scene = render.NewScene(opts.Style, opts.Surface, s.logger)
	if err := s.Scene.Rebuild(s.Store, s.Model); err != nil {
		return nil, fmt.Errorf("open %s: %w", imagePath, err)
	}
	s.Controller = NewController(s.Store, s.Model, s.Scene, s.logger)
	s.Controller.OnMutate(func() { s.Dirty = true })
	if s.logger != nil {
		s.logger.Debug("session opened", "image", imagePath, "landmarks", s.Store.Len(), "scale", s.Scaler.Factor())
	}
	return s, nil
}

// OriginalPoints returns the landmarks in original-image pixels.
func (s *Session) OriginalPoints() []landmark.Point {
	return s.Scaler.AllToOriginal(s.Store.Points())
}

// Save writes the landmarks back in original-image pixels.
func (s *Session) Save() error {
	if err := annotation.Save(s.LandmarkPath, s.OriginalPoints()); err != nil {
		return err
	}
	s.Dirty = false
	s.Missing = false
	if s.logger != nil {
		s.logger.Info("landmarks saved", "path", s.LandmarkPath, "landmarks", s.Store.Len())
	}
	return nil
}
