// Package clock wraps time.Now so event timestamps can be pinned in tests.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Stub pins the clock to the supplied instant and returns a function that
// restores the real clock.
func Stub(fixed time.Time) func() {
	prev := NowFunc
	NowFunc = func() time.Time { return fixed }
	return func() { NowFunc = prev }
}
