package inquiry

import "context"

// Repository defines persistence operations for support inquiries.
type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	GetByID(ctx context.Context, id int64) (*Inquiry, error)

	// List returns inquiries newest-first; an empty email returns all of them.
	List(ctx context.Context, email string) ([]*Inquiry, error)

	// Update applies a partial update: nil fields retain their stored value.
	// UpdatedDate is stamped on every call.
	Update(ctx context.Context, id int64, status *Status, answer *string) error
}
