package debug

// Runtime metrics logger. Started only when config.Debug is true.
// Emits goroutine count and heap/stack usage at a fixed interval so that
// long editing sessions can be checked for photo or frame leaks.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartRuntimeLogger launches a ticker that logs goroutine and memory
// figures until ctx is done.
func StartRuntimeLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			logger.Info("runtime-stats", Snapshot(samples)...)
		}
	}()
}

// Snapshot reads the current runtime figures as slog attributes. samples
// must hold the goroutine count metric; nil allocates it.
func Snapshot(samples []metrics.Sample) []any {
	if len(samples) == 0 {
		samples = []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	}
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return []any{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_objects", ms.HeapObjects),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
}
