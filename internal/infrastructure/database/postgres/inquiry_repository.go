package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"padel-booking/internal/domain/inquiry"
	"padel-booking/internal/infrastructure/database/postgres/models"
)

type InquiryRepository struct {
	db *DB
}

func NewInquiryRepository(db *DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	dbModel := &models.InquiryModel{
		Email:        inq.Email,
		Category:     inq.Category,
		Subject:      inq.Subject,
		Description:  inq.Description,
		Notification: inq.Notification,
		Status:       string(inq.Status),
		Created:      inq.Created,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	inq.ID = dbModel.ID

	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*inquiry.Inquiry, error) {
	var dbModel models.InquiryModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, inquiry.ErrInquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return toInquiryEntity(&dbModel), nil
}

func (r *InquiryRepository) List(ctx context.Context, email string) ([]*inquiry.Inquiry, error) {
	query := r.db.DB.WithContext(ctx).Order("created DESC")
	if email != "" {
		query = query.Where("email = ?", email)
	}

	var dbModels []models.InquiryModel
	if err := query.Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	entities := make([]*inquiry.Inquiry, 0, len(dbModels))
	for i := range dbModels {
		entities = append(entities, toInquiryEntity(&dbModels[i]))
	}
	return entities, nil
}

func (r *InquiryRepository) Update(ctx context.Context, id int64, status *inquiry.Status, answer *string) error {
	updates := map[string]interface{}{
		"updated_date": time.Now(),
	}
	if status != nil {
		updates["status"] = string(*status)
	}
	if answer != nil {
		updates["answer"] = *answer
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.InquiryModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update inquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inquiry.ErrInquiryNotFound
	}

	return nil
}

func toInquiryEntity(m *models.InquiryModel) *inquiry.Inquiry {
	return &inquiry.Inquiry{
		ID:           m.ID,
		Email:        m.Email,
		Category:     m.Category,
		Subject:      m.Subject,
		Description:  m.Description,
		Notification: m.Notification,
		Status:       inquiry.Status(m.Status),
		Answer:       m.Answer,
		Created:      m.Created,
		UpdatedDate:  m.UpdatedDate,
	}
}

var _ inquiry.Repository = (*InquiryRepository)(nil)
