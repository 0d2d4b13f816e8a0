package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/infrastructure/database/postgres/models"
)

type ReservationRepository struct {
	db *DB
}

func NewReservationRepository(db *DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	now := time.Now()
	dbModel := &models.ReservationModel{
		CourtID:   res.CourtID,
		Name:      res.Name,
		Email:     res.Email,
		Date:      res.Date,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Status:    string(res.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	res.ID = dbModel.ID
	res.CreatedAt = dbModel.CreatedAt
	res.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var dbModel models.ReservationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Court").
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reservation.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return toReservationEntity(&dbModel), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status, reason *string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              string(status),
			"cancellation_reason": reason,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update reservation status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reservation.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) ListByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error) {
	var dbModels []models.ReservationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Court").
		Where("email = ?", email).
		Order("date, start_time").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	return toReservationEntities(dbModels), nil
}

func (r *ReservationRepository) ListByDate(ctx context.Context, date time.Time) ([]*reservation.Reservation, error) {
	var dbModels []models.ReservationModel
	err := r.db.DB.WithContext(ctx).
		Preload("Court").
		Where("date = ?", date).
		Order("start_time").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for day: %w", err)
	}

	return toReservationEntities(dbModels), nil
}

func toReservationEntity(m *models.ReservationModel) *reservation.Reservation {
	res := &reservation.Reservation{
		ID:                 m.ID,
		CourtID:            m.CourtID,
		Name:               m.Name,
		Email:              m.Email,
		Date:               m.Date,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		Status:             reservation.Status(m.Status),
		CancellationReason: m.CancellationReason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Court != nil {
		res.CourtName = m.Court.Name
	}
	return res
}

func toReservationEntities(dbModels []models.ReservationModel) []*reservation.Reservation {
	entities := make([]*reservation.Reservation, 0, len(dbModels))
	for i := range dbModels {
		entities = append(entities, toReservationEntity(&dbModels[i]))
	}
	return entities
}

var _ reservation.Repository = (*ReservationRepository)(nil)
