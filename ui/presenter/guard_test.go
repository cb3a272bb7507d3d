package presenter

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestGuard_RecoversAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Guard(logger, "save", func() { panic("boom") })()
	Guard1(logger, "open", func(string) { panic("bad path") })("x")
	Guard2(logger, "move", func(float64, float64) { panic("drag") })(1, 2)
	Guard3(logger, "nudge", func(int, int, bool) { panic("nudge") })(1, 0, true)

	out := buf.String()
	for _, where := range []string{"where=save", "where=open", "where=move", "where=nudge"} {
		if !strings.Contains(out, where) {
			t.Fatalf("missing %s in %q", where, out)
		}
	}
	if strings.Count(out, "recovered panic") != 4 {
		t.Fatalf("expected four recoveries, got %q", out)
	}
}

func TestGuard_PassesThrough(t *testing.T) {
	var got []int
	Guard3(nil, "nudge", func(dx, dy int, group bool) { got = append(got, dx, dy) })(2, -1, false)
	Guard(nil, "panic without logger", func() { panic("quiet") })()
	if len(got) != 2 || got[0] != 2 || got[1] != -1 {
		t.Fatalf("unexpected args %v", got)
	}
	if Guard(nil, "nil", nil) != nil || Guard1[string](nil, "nil", nil) != nil {
		t.Fatal("nil handlers must stay nil")
	}
}
