package inquiry

import "fmt"

// Status is the operator-driven ticket state. Transitions are free-form:
// any known state may move to any other, there is no workflow enforcement.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusClosed     Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Transition validates a state change, rejecting only unknown states.
func (s Status) Transition(next Status) error {
	if !next.Valid() {
		return fmt.Errorf("unknown inquiry status %q", next)
	}
	return nil
}
