package presenter

import (
	"time"

	"github.com/soocke/landmark-editor/ui/model"
)

// EditingSource reports whether an image is open.
type EditingSource interface{ Editing() bool }

// TimerView displays formatted per-image and total durations.
type TimerView interface {
	SetTimes(current, total time.Duration)
}

// TimerPresenter formats editing durations from the model to the view.
type TimerPresenter struct {
	timer *model.TimerModel
	src   EditingSource
	view  TimerView
}

// NewTimerPresenter returns a new TimerPresenter.
func NewTimerPresenter(timer *model.TimerModel, src EditingSource, view TimerView) *TimerPresenter {
	return &TimerPresenter{timer: timer, src: src, view: view}
}

// Tick advances the timer model and pushes values to the view.
func (p *TimerPresenter) Tick(now time.Time) {
	if p == nil || p.timer == nil || p.src == nil || p.view == nil {
		return
	}
	p.timer.OnTick(p.src.Editing(), now)
	c, t := p.timer.Values()
	p.view.SetTimes(c, t)
}
