package reservation

import "fmt"

// Status is the reservation lifecycle state.
type Status string

const (
	StatusCreated   Status = "Created"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusCancelled:
		return true
	}
	return false
}

// Transition validates a state change. Created moves to Cancelled; cancelling
// an already-cancelled reservation is allowed (repeat cancellations re-send
// the notification, which the site has always done).
func (s Status) Transition(next Status) error {
	if !next.Valid() {
		return fmt.Errorf("unknown reservation status %q", next)
	}
	if !s.Valid() {
		return fmt.Errorf("unknown reservation status %q", s)
	}
	return nil
}
