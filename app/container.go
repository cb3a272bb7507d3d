package app

import (
	"image"
	"log/slog"

	"github.com/soocke/landmark-editor/config"
	"github.com/soocke/landmark-editor/domain/landmark"
	"github.com/soocke/landmark-editor/domain/render"
	"github.com/soocke/landmark-editor/ui/model"
	"github.com/soocke/landmark-editor/ui/presenter"
	"github.com/soocke/landmark-editor/ui/view"
)

// AppContainer assembles models, presenters and the root view.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Scheme    landmark.Scheme
	Workspace *model.WorkspaceModel
	Timer     *model.TimerModel
	RootView  *view.RootView
	UI        view.UI

	// Presenters
	EditorPresenter *presenter.EditorPresenter
	StatePresenter  *presenter.StatePresenter
	TimerPresenter  *presenter.TimerPresenter
	Loop            *presenter.Loop
}

// BuildContainer constructs all components. The only side effect is
// parsing the embedded connectivity scheme.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) (*AppContainer, error) {
	scheme, err := landmark.LoadScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	c := &AppContainer{Config: cfg, Logger: logger, Scheme: scheme}
	c.Workspace = model.NewWorkspaceModel()
	c.Timer = model.NewTimerModel()

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	c.EditorPresenter = presenter.NewEditorPresenter(c.Workspace, c.Timer, c.UI, nil, Settings(cfg, scheme), logger)
	c.StatePresenter = presenter.NewStatePresenter(c.UI)
	c.EditorPresenter.AddStateListener(c.StatePresenter.OnState)
	c.TimerPresenter = presenter.NewTimerPresenter(c.Timer, c.EditorPresenter, c.UI)
	// Schedule is filled in by the app once the Tk loop is running.
	c.Loop = presenter.NewLoop(c.EditorPresenter, c.StatePresenter, c.TimerPresenter, nil)
	return c, nil
}

// Style maps the display fields of cfg to a scene style.
func Style(cfg *config.Config) render.Style {
	return render.NewStyle(cfg.MarkerSize, cfg.ColorMode)
}

// Settings derives the editor presenter options from cfg.
func Settings(cfg *config.Config, scheme landmark.Scheme) presenter.Settings {
	return presenter.Settings{
		Bound:      image.Pt(cfg.DisplayWidth, cfg.DisplayHeight),
		Suffix:     cfg.LandmarkSuffix,
		Siblings:   cfg.SiblingSuffixes,
		Extensions: cfg.Extensions,
		Scheme:     scheme,
		Style:      Style(cfg),
		LineWidth:  cfg.LineWidth,
		ShowLabels: cfg.ShowLabels,
		NudgeStep:  cfg.NudgeStep,
		AutoSave:   cfg.AutoSave,
	}
}
