package signup

import "time"

// Timer is a pending timed transition.
type Timer interface {
	Stop() bool
}

// Clock schedules timed transitions.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules with the runtime timer.
type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
