package watchdog

import "time"

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall time so schedules can be driven manually in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(duration time.Duration, fn func()) Timer
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(duration time.Duration, fn func()) Timer {
	return time.AfterFunc(duration, fn)
}
