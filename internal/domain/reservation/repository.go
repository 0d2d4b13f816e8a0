package reservation

import (
	"context"
	"time"
)

// Repository defines persistence operations for reservations. Reads join the
// court table so CourtName is always populated on returned entities.
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)

	// UpdateStatus sets the status and cancellation reason.
	UpdateStatus(ctx context.Context, id int64, status Status, reason *string) error

	// ListByEmail returns a requester's reservations ordered by date then start time.
	ListByEmail(ctx context.Context, email string) ([]*Reservation, error)

	// ListByDate returns every reservation on the given calendar day, any status.
	ListByDate(ctx context.Context, date time.Time) ([]*Reservation, error)
}
