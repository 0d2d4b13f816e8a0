package models

import (
	"time"
)

// ReservationModel represents the database model for Reservation. Date is a
// UTC midnight day; start and end are wall-clock "HH:mm" strings.
type ReservationModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	CourtID            int64     `gorm:"not null;index"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Email              string    `gorm:"type:varchar(255);not null;index"`
	Date               time.Time `gorm:"not null;index"`
	StartTime          string    `gorm:"type:varchar(5);not null"`
	EndTime            string    `gorm:"type:varchar(5);not null"`
	Status             string    `gorm:"type:varchar(20);not null;default:'Created';index"`
	CancellationReason *string   `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`

	Court *CourtModel `gorm:"foreignKey:CourtID"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}
