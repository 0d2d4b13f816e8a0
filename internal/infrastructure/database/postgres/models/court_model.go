package models

// CourtModel represents the database model for Court. Rows are seeded by
// operations, never written by the application.
type CourtModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (CourtModel) TableName() string {
	return "courts"
}
