package user

import (
	"time"
)

const DefaultRole = "user"

// User is an account holder. The reset token columns double as the
// "password reset pending" flag: set on request, cleared on completion.
type User struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    string
	Role            string
	ResetToken      *string
	TokenExpiration *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ResetPending reports whether an unexpired reset token is stored.
func (u *User) ResetPending(now time.Time) bool {
	return u.ResetToken != nil && u.TokenExpiration != nil && now.Before(*u.TokenExpiration)
}
