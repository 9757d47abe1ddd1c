package domain

import "time"

// Actor is the authenticated staff member on whose behalf an operation runs.
type Actor struct {
	Name string
}

// System is used when no staff member triggered the operation.
var System = Actor{Name: "system"}

// DispatchMode tells how the driver was chosen.
type DispatchMode string

// List of dispatch modes
const (
	DispatchManual DispatchMode = "manual"
	DispatchAuto   DispatchMode = "auto"
)

// DispatchResult describes a single dispatch attempt.
type DispatchResult struct {
	Outcome
	AttemptID  string
	Mode       DispatchMode
	OrderID    int64
	DriverID   int64
	NotifiedAt time.Time
}

// DispatchEvent is published after every dispatch attempt, applied or skipped.
type DispatchEvent struct {
	AttemptID  string
	Mode       DispatchMode
	Actor      string
	OrderID    int64
	DriverID   int64
	Outcome    Outcome
	NotifiedAt time.Time
	OccurredAt time.Time
}
