package murmur

import "time"

// Clock supplies the current wall time. Production code uses realClock;
// tests inject a fixed or stepped implementation instead of relying on a
// process-wide mutable variable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock is the default Clock, backed by time.Now.
var SystemClock Clock = realClock{}

// FixedClock is a Clock that always returns the same instant. Useful in
// tests that need deterministic archive-selection arithmetic.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
