package editor

import (
	"log/slog"

	"github.com/soocke/landmark-editor/domain/landmark"
)

// Controller turns pointer and keyboard input into Store mutations and
// re-syncs the Scene after each one. It runs on the UI event loop and is not
// safe for concurrent use.
type Controller struct {
	store  *landmark.Store
	model  Components
	scene  Scene
	logger *slog.Logger

	state     State
	active    int
	members   []int
	selected  int
	listeners []Listener
	onMutate  []func()
}

// NewController binds the controller to one loaded image.
func NewController(store *landmark.Store, model Components, scene Scene, logger *slog.Logger) *Controller {
	return &Controller{store: store, model: model, scene: scene, logger: logger, active: -1, selected: -1}
}

// AddListener registers l for state changes.
func (c *Controller) AddListener(l Listener) { c.listeners = append(c.listeners, l) }

// OnMutate registers fn to run after any landmark moves.
func (c *Controller) OnMutate(fn func()) { c.onMutate = append(c.onMutate, fn) }

// Current returns the interaction state.
func (c *Controller) Current() State { return c.state }

// Active returns the landmark under the pointer while dragging.
func (c *Controller) Active() (int, bool) {
	if c.state == StateIdle {
		return -1, false
	}
	return c.active, true
}

// Members returns the landmarks moved by the current drag.
func (c *Controller) Members() []int { return append([]int(nil), c.members...) }

// Selected returns the last landmark pressed or nudged.
func (c *Controller) Selected() (int, bool) { return c.selected, c.selected >= 0 }

// PointerDown starts a drag on the lowest-index marker under p. With
// modifier the whole connected component follows. A press while already
// dragging releases the old drag first.
func (c *Controller) PointerDown(p landmark.Point, modifier bool) {
	if c.state != StateIdle {
		c.PointerUp()
	}
	hit, ok := c.scene.HitTest(p)
	if !ok {
		return
	}
	c.selected = hit
	c.active = hit
	if modifier {
		c.members = c.component(hit)
		c.transition(StateDraggingGroup)
		return
	}
	c.members = []int{hit}
	c.transition(StateDraggingSingle)
}

// PointerMove drags the active landmark to p. In group mode every member
// is translated by the active landmark's displacement.
func (c *Controller) PointerMove(p landmark.Point) error {
	switch c.state {
	case StateDraggingSingle:
		if err := c.store.SetPosition(c.active, p); err != nil {
			return c.fail(err)
		}
		if err := c.scene.Sync(c.active); err != nil {
			return c.fail(err)
		}
		c.mutated()
	case StateDraggingGroup:
		lm, err := c.store.Get(c.active)
		if err != nil {
			return c.fail(err)
		}
		if err := c.translate(c.members, p.Sub(lm.Pos)); err != nil {
			return c.fail(err)
		}
	}
	return nil
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() {
	c.active = -1
	c.members = nil
	c.transition(StateIdle)
}

// Nudge moves index by delta, or its whole component when group is set.
func (c *Controller) Nudge(index int, delta landmark.Point, group bool) error {
	if _, err := c.store.Get(index); err != nil {
		return c.fail(err)
	}
	c.selected = index
	members := []int{index}
	if group {
		members = c.component(index)
	}
	if err := c.translate(members, delta); err != nil {
		return c.fail(err)
	}
	return nil
}

func (c *Controller) component(index int) []int {
	if c.model == nil {
		return []int{index}
	}
	if m := c.model.ConnectedComponent(index); len(m) > 0 {
		return m
	}
	return []int{index}
}

// translate applies delta once to each member.
func (c *Controller) translate(members []int, delta landmark.Point) error {
	for _, idx := range members {
		lm, err := c.store.Get(idx)
		if err != nil {
			return err
		}
		if err := c.store.SetPosition(idx, lm.Pos.Add(delta)); err != nil {
			return err
		}
		if err := c.scene.Sync(idx); err != nil {
			return err
		}
	}
	if len(members) > 0 {
		c.mutated()
	}
	return nil
}

func (c *Controller) mutated() {
	for _, fn := range c.onMutate {
		fn()
	}
}

func (c *Controller) fail(err error) error {
	if c.logger != nil {
		c.logger.Error("landmark mutation failed", "state", c.state.String(), "active", c.active, "error", err)
	}
	return err
}

func (c *Controller) transition(next State) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	if c.logger != nil {
		c.logger.Debug("editor state transition", "from", prev.String(), "to", next.String(), "active", c.active, "members", len(c.members))
	}
	for _, l := range c.listeners {
		l(prev, next)
	}
}
