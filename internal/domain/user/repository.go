package user

import (
	"context"
	"time"
)

// Repository defines persistence operations for users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)

	// SetResetToken stores a reset token and its expiration on the user row.
	SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error

	// ResetPassword replaces the password hash and clears the reset token columns.
	ResetPassword(ctx context.Context, email, passwordHash string) error

	// UpdateProfile updates name and/or password hash; nil fields are left untouched.
	UpdateProfile(ctx context.Context, email string, name, passwordHash *string) error
}
