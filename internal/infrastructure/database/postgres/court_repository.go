package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/infrastructure/database/postgres/models"
)

type CourtRepository struct {
	db *DB
}

func NewCourtRepository(db *DB) *CourtRepository {
	return &CourtRepository{db: db}
}

func (r *CourtRepository) List(ctx context.Context) ([]*court.Court, error) {
	var dbModels []models.CourtModel
	err := r.db.DB.WithContext(ctx).
		Order("id").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}

	courts := make([]*court.Court, 0, len(dbModels))
	for i := range dbModels {
		courts = append(courts, &court.Court{ID: dbModels[i].ID, Name: dbModels[i].Name})
	}
	return courts, nil
}

func (r *CourtRepository) GetByID(ctx context.Context, id int64) (*court.Court, error) {
	var dbModel models.CourtModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, court.ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get court: %w", err)
	}

	return &court.Court{ID: dbModel.ID, Name: dbModel.Name}, nil
}

var _ court.Repository = (*CourtRepository)(nil)
