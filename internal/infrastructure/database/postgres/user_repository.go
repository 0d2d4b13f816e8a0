package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/infrastructure/database/postgres/models"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	dbModel := &models.UserModel{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.CreatedAt = dbModel.CreatedAt
	u.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"reset_token":      token,
			"token_expiration": expiresAt,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set reset token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) ResetPassword(ctx context.Context, email, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"password_hash":    passwordHash,
			"reset_token":      nil,
			"token_expiration": nil,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to reset password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, email string, name, passwordHash *string) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if name != nil {
		updates["name"] = *name
	}
	if passwordHash != nil {
		updates["password_hash"] = *passwordHash
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func toUserEntity(m *models.UserModel) *user.User {
	return &user.User{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            m.Role,
		ResetToken:      m.ResetToken,
		TokenExpiration: m.TokenExpiration,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

var _ user.Repository = (*UserRepository)(nil)
