package playback

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop prevents the timer from firing. It reports whether the stop
	// prevented the callback from running.
	Stop() bool
}

// Clock abstracts time so tests can drive scheduling deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules f to run after d.
	AfterFunc(d time.Duration, f func()) Timer
}

// NewClock returns a Clock backed by the system clock.
func NewClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return systemTimer{t: time.AfterFunc(d, f)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) Stop() bool {
	return s.t.Stop()
}
