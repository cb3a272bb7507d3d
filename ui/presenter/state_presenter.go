package presenter

import (
	"time"

	"github.com/soocke/landmark-editor/domain/editor"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives controller transitions and updates the view.
type StatePresenter struct {
	view    StateView
	latest  editor.State // last reflected state
	shown   bool
	pending []editor.State
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transitioned state from a controller listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *StatePresenter) OnState(prev, next editor.State) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick processes queued states and updates the view with the most recent state.
// It clears the pending queue after processing.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if !p.shown {
		p.shown = true
		p.view.SetStateLabel(label(p.latest))
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		if last != p.latest {
			p.latest = last
			p.view.SetStateLabel(label(last))
		}
	}
}

func label(s editor.State) string {
	switch s {
	case editor.StateDraggingSingle:
		return "Mode: drag point"
	case editor.StateDraggingGroup:
		return "Mode: drag group"
	default:
		return "Mode: idle"
	}
}
