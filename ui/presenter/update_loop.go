package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It flushes pending frames and labels and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Editor   *EditorPresenter
	State    *StatePresenter
	Timer    *TimerPresenter
	Schedule func()
}

func NewLoop(ed *EditorPresenter, state *StatePresenter, timer *TimerPresenter, schedule func()) *Loop {
	return &Loop{Editor: ed, State: state, Timer: timer, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Editor != nil {
		l.Editor.Flush()
	}
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Timer != nil {
		l.Timer.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
