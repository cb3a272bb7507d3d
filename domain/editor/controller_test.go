package editor

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/soocke/landmark-editor/domain/landmark"
	"github.com/soocke/landmark-editor/domain/render"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type fixture struct {
	store *landmark.Store
	model *landmark.Model
	scene *render.Scene
	ctl   *Controller
}

// newFixture lays 68 landmarks on a 40px grid so markers never overlap.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	scheme, err := landmark.LoadScheme("")
	if err != nil {
		t.Fatal(err)
	}
	pts := make([]landmark.Point, 68)
	for i := range pts {
		pts[i] = landmark.Point{X: float64(20 + (i%10)*40), Y: float64(20 + (i/10)*40)}
	}
	store := landmark.NewStore()
	store.Load(pts)
	model := landmark.NewModel(scheme, 68)
	scene := render.NewScene(render.DefaultStyle(), nil, discardLogger)
	if err := scene.Rebuild(store, model); err != nil {
		t.Fatal(err)
	}
	return &fixture{store: store, model: model, scene: scene, ctl: NewController(store, model, scene, discardLogger)}
}

func (f *fixture) pos(t *testing.T, i int) landmark.Point {
	t.Helper()
	lm, err := f.store.Get(i)
	if err != nil {
		t.Fatal(err)
	}
	return lm.Pos
}

func TestController_SingleDragMovesOnlyTarget(t *testing.T) {
	f := newFixture(t)
	before := f.store.Points()
	f.ctl.PointerDown(f.pos(t, 5), false)
	if f.ctl.Current() != StateDraggingSingle {
		t.Fatalf("expected dragging_single, got %v", f.ctl.Current())
	}
	target := landmark.Point{X: 333, Y: 444}
	if err := f.ctl.PointerMove(target); err != nil {
		t.Fatal(err)
	}
	f.ctl.PointerUp()

	after := f.store.Points()
	for i := range before {
		if i == 5 {
			if after[i] != target {
				t.Fatalf("landmark 5 at %v want %v", after[i], target)
			}
			continue
		}
		if after[i] != before[i] {
			t.Fatalf("landmark %d moved from %v to %v", i, before[i], after[i])
		}
	}
	for _, k := range f.scene.Incident(5) {
		seg, _ := f.scene.Segment(k.Lo, k.Hi)
		if (k.Lo == 5 && seg.From != target) || (k.Hi == 5 && seg.To != target) {
			t.Fatalf("segment %v not updated: %v-%v", k, seg.From, seg.To)
		}
	}
	if len(f.scene.Incident(5)) != 2 {
		t.Fatalf("expected 2 incident segments, got %d", len(f.scene.Incident(5)))
	}
	if err := f.scene.Verify(); err != nil {
		t.Fatal(err)
	}
	if f.ctl.Current() != StateIdle {
		t.Fatalf("expected idle after pointer up, got %v", f.ctl.Current())
	}
}

func TestController_GroupDragEyeMovesSixByDelta(t *testing.T) {
	f := newFixture(t)
	before := f.store.Points()
	start := f.pos(t, 38)
	f.ctl.PointerDown(start, true)
	if f.ctl.Current() != StateDraggingGroup {
		t.Fatalf("expected dragging_group, got %v", f.ctl.Current())
	}
	if got := f.ctl.Members(); len(got) != 6 || got[0] != 36 || got[5] != 41 {
		t.Fatalf("unexpected members %v", got)
	}
	delta := landmark.Point{X: 7, Y: -3}
	if err := f.ctl.PointerMove(start.Add(delta)); err != nil {
		t.Fatal(err)
	}
	// Second move continues from the new position.
	if err := f.ctl.PointerMove(start.Add(delta).Add(delta)); err != nil {
		t.Fatal(err)
	}
	f.ctl.PointerUp()

	after := f.store.Points()
	moved := 0
	for i := range before {
		if i >= 36 && i < 42 {
			want := before[i].Add(delta).Add(delta)
			if !after[i].Near(want, 1e-9) {
				t.Fatalf("landmark %d at %v want %v", i, after[i], want)
			}
			moved++
			continue
		}
		if after[i] != before[i] {
			t.Fatalf("landmark %d outside the eye moved", i)
		}
	}
	if moved != 6 {
		t.Fatalf("expected 6 moved, got %d", moved)
	}
	if err := f.scene.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestController_MissStaysIdle(t *testing.T) {
	f := newFixture(t)
	f.ctl.PointerDown(landmark.Point{X: 1000, Y: 1000}, false)
	if f.ctl.Current() != StateIdle {
		t.Fatalf("expected idle, got %v", f.ctl.Current())
	}
	if _, ok := f.ctl.Selected(); ok {
		t.Fatal("miss must not select")
	}
}

func TestController_MoveWithoutDownIsNoop(t *testing.T) {
	f := newFixture(t)
	before := f.store.Points()
	if err := f.ctl.PointerMove(landmark.Point{X: 5, Y: 5}); err != nil {
		t.Fatal(err)
	}
	after := f.store.Points()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("landmark %d moved while idle", i)
		}
	}
}

func TestController_PressWhileDraggingRestarts(t *testing.T) {
	f := newFixture(t)
	var seq []State
	f.ctl.AddListener(func(prev, next State) { seq = append(seq, next) })
	f.ctl.PointerDown(f.pos(t, 0), true)
	f.ctl.PointerDown(f.pos(t, 1), false)
	want := []State{StateDraggingGroup, StateIdle, StateDraggingSingle}
	if len(seq) != len(want) {
		t.Fatalf("transitions %v want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("transitions %v want %v", seq, want)
		}
	}
	if a, _ := f.ctl.Active(); a != 1 {
		t.Fatalf("expected active 1, got %d", a)
	}
}

func TestController_OverlappingMarkersLowestWins(t *testing.T) {
	f := newFixture(t)
	if err := f.store.SetPosition(9, f.pos(t, 3)); err != nil {
		t.Fatal(err)
	}
	if err := f.scene.Sync(9); err != nil {
		t.Fatal(err)
	}
	f.ctl.PointerDown(f.pos(t, 3), false)
	if a, _ := f.ctl.Active(); a != 3 {
		t.Fatalf("expected 3, got %d", a)
	}
}

func TestController_NudgeAndMutateHook(t *testing.T) {
	f := newFixture(t)
	calls := 0
	f.ctl.OnMutate(func() { calls++ })
	before := f.store.Points()
	if err := f.ctl.Nudge(50, landmark.Point{X: 1}, true); err != nil {
		t.Fatal(err)
	}
	after := f.store.Points()
	for i := range before {
		want := before[i]
		if i >= 48 {
			want = want.Add(landmark.Point{X: 1})
		}
		if after[i] != want {
			t.Fatalf("landmark %d at %v want %v", i, after[i], want)
		}
	}
	if calls != 1 {
		t.Fatalf("expected one mutate call, got %d", calls)
	}
	if sel, ok := f.ctl.Selected(); !ok || sel != 50 {
		t.Fatalf("expected selection 50, got %d %v", sel, ok)
	}
	var ie *landmark.IndexError
	if err := f.ctl.Nudge(99, landmark.Point{X: 1}, false); !errors.As(err, &ie) {
		t.Fatalf("expected IndexError, got %v", err)
	}
}

func TestState_String(t *testing.T) {
	cases := map[State]string{StateIdle: "idle", StateDraggingSingle: "dragging_single", StateDraggingGroup: "dragging_group", State(9): "unknown"}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("%d: got %q want %q", s, s.String(), want)
		}
	}
}
