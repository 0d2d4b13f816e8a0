package court

import "context"

// Repository defines read access to the court reference table.
type Repository interface {
	List(ctx context.Context) ([]*Court, error)
	GetByID(ctx context.Context, id int64) (*Court, error)
}
