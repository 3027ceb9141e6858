package motion

import "time"

// Timer is a pending delayed call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Implementations may call f on another
// goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock schedules with time.AfterFunc.
var WallClock Scheduler = wallClock{}
