package presenter

import "log/slog"

// Event handlers run inside Tk callbacks, where a panic would take down the
// event loop. The Guard helpers wrap a handler so a panic is logged at error
// level and the event is dropped.

// Recover logs a recovered panic. It must be called directly by a deferred
// statement.
func Recover(logger *slog.Logger, where string) {
	if r := recover(); r != nil && logger != nil {
		logger.Error("recovered panic", "where", where, "panic", r)
	}
}

// Guard wraps fn. A nil fn stays nil.
func Guard(logger *slog.Logger, where string, fn func()) func() {
	if fn == nil {
		return nil
	}
	return func() {
		defer Recover(logger, where)
		fn()
	}
}

// Guard1 wraps a one-argument handler.
func Guard1[A any](logger *slog.Logger, where string, fn func(A)) func(A) {
	if fn == nil {
		return nil
	}
	return func(a A) {
		defer Recover(logger, where)
		fn(a)
	}
}

// Guard2 wraps a two-argument handler.
func Guard2[A, B any](logger *slog.Logger, where string, fn func(A, B)) func(A, B) {
	if fn == nil {
		return nil
	}
	return func(a A, b B) {
		defer Recover(logger, where)
		fn(a, b)
	}
}

// Guard3 wraps a three-argument handler.
func Guard3[A, B, C any](logger *slog.Logger, where string, fn func(A, B, C)) func(A, B, C) {
	if fn == nil {
		return nil
	}
	return func(a A, b B, c C) {
		defer Recover(logger, where)
		fn(a, b, c)
	}
}
