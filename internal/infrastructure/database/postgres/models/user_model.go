package models

import (
	"time"
)

// UserModel represents the database model for User. The reset token columns
// are nullable and cleared when a reset completes.
type UserModel struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	Role            string     `gorm:"type:varchar(50);not null;default:'user'"`
	ResetToken      *string    `gorm:"type:varchar(500)"`
	TokenExpiration *time.Time `gorm:"type:timestamp"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
