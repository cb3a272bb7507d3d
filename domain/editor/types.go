package editor

import "github.com/soocke/landmark-editor/domain/landmark"

// State enumerates pointer interaction states.
type State int

const (
	StateIdle State = iota
	StateDraggingSingle
	StateDraggingGroup
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDraggingSingle:
		return "dragging_single"
	case StateDraggingGroup:
		return "dragging_group"
	default:
		return "unknown"
	}
}

// Listener is called on each state change.
type Listener func(prev, next State)

// Scene is what the controller needs from the render layer.
type Scene interface {
	HitTest(p landmark.Point) (int, bool)
	Sync(index int) error
}

// Components is what the controller needs from the connectivity model.
type Components interface {
	ConnectedComponent(index int) []int
}
