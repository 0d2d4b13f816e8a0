package models

import (
	"time"
)

// InquiryModel represents the database model for SupportInquiry.
type InquiryModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Email        string     `gorm:"type:varchar(255);not null;index"`
	Category     string     `gorm:"type:varchar(100)"`
	Subject      string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text;not null"`
	Notification bool       `gorm:"not null;default:false"`
	Status       string     `gorm:"type:varchar(20);not null;default:'Open';index"`
	Answer       *string    `gorm:"type:text"`
	Created      time.Time  `gorm:"not null;index"`
	UpdatedDate  *time.Time `gorm:"type:timestamp"`
}

func (InquiryModel) TableName() string {
	return "support_inquiries"
}
