package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"padel-booking/internal/config"
	domainUser "padel-booking/internal/domain/user"
	"padel-booking/internal/logger"
	"padel-booking/internal/mailer"
	appErrors "padel-booking/pkg/errors"
	"padel-booking/pkg/utils"
)

// Service implements the auth use cases: signup, login, password reset
// request/confirm and profile update.
type Service struct {
	userRepo domainUser.Repository
	mailer   mailer.Mailer
	config   *config.Config
}

func NewService(userRepo domainUser.Repository, m mailer.Mailer, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		mailer:   m,
		config:   cfg,
	}
}

func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*SignupResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("All fields are required.")
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Signup attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "signup_failed_duplicate_email"),
		)
		return nil, appErrors.ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domainUser.DefaultRole,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.Email, "", s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User registered",
		zap.String("email", u.Email),
		zap.String("event", "user_registered"),
	)

	return &SignupResponse{
		Message: "User registered successfully.",
		Token:   token,
		Email:   u.Email,
		Name:    u.Name,
	}, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with unknown email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_unknown_email"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(u.PasswordHash, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("email", u.Email),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	role := u.Role
	if role == "" {
		role = domainUser.DefaultRole
	}

	token, err := utils.GenerateToken(u.Email, role, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in",
		zap.String("email", u.Email),
		zap.String("role", role),
		zap.String("event", "login_success"),
	)

	return &LoginResponse{
		Token: token,
		Email: u.Email,
		Name:  u.Name,
		Role:  role,
	}, nil
}

// RequestPasswordReset stores a 1-hour reset token on the user row and emails
// a reset link. Unknown emails are reported to the caller as not found.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return appErrors.NewValidationError("Email is required.")
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return domainUser.ErrUserNotFound
		}
		return fmt.Errorf("failed to retrieve user: %w", err)
	}

	token, err := utils.GenerateToken(u.Email, "", s.config.JWT.Secret, 1)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(1 * time.Hour)
	if err := s.userRepo.SetResetToken(ctx, u.Email, token, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.config.Server.PublicURL, token)
	if err := s.mailer.Send(&mailer.Message{
		To:      u.Email,
		Subject: "Password Reset Request",
		Body:    fmt.Sprintf("You requested a password reset. Click the link to reset your password: %s", resetLink),
		Kind:    "password_reset",
	}); err != nil {
		logger.Error("Failed to enqueue password reset email",
			zap.String("email", u.Email),
			zap.Error(err),
		)
	}

	logger.Info("Password reset token generated",
		zap.String("email", u.Email),
		zap.Time("expires_at", expiresAt),
		zap.String("event", "password_reset_requested"),
	)

	return nil
}

// ConfirmPasswordReset verifies the token, replaces the password hash and
// clears the stored reset token so the token cannot be used twice.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return appErrors.NewValidationError("Token and password are required.")
	}

	claims, err := utils.ValidateToken(token, s.config.JWT.Secret)
	if err != nil {
		logger.Warn("Password reset with bad token",
			zap.String("event", "password_reset_failed_bad_token"),
			zap.Error(err),
		)
		return err
	}

	u, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return domainUser.ErrUserNotFound
		}
		return fmt.Errorf("failed to retrieve user: %w", err)
	}

	// The stored token must match the presented one. It is cleared on
	// success, which is what makes each token single-use. The stored
	// expiration backs up the JWT expiry in case the columns were set with
	// a different window.
	if u.ResetToken == nil || *u.ResetToken != token {
		return appErrors.ErrInvalidToken
	}
	if !u.ResetPending(time.Now()) {
		return appErrors.ErrTokenExpired
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ResetPassword(ctx, u.Email, hash); err != nil {
		return err
	}

	logger.Info("Password reset completed",
		zap.String("email", u.Email),
		zap.String("event", "password_reset_success"),
	)

	return nil
}

// UpdateProfile changes the name and/or password of the authenticated user.
func (s *Service) UpdateProfile(ctx context.Context, email string, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, domainUser.ErrUserNotFound
		}
		return nil, err
	}

	if req.Name == nil && req.NewPassword == nil {
		return nil, appErrors.NewValidationError("No updates were provided.")
	}

	var hash *string
	if req.NewPassword != nil {
		h, err := utils.HashPassword(*req.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = &h
	}

	if err := s.userRepo.UpdateProfile(ctx, u.Email, req.Name, hash); err != nil {
		return nil, err
	}

	name := u.Name
	if req.Name != nil {
		name = *req.Name
	}

	logger.Info("Profile updated",
		zap.String("email", u.Email),
		zap.Bool("name_changed", req.Name != nil),
		zap.Bool("password_changed", req.NewPassword != nil),
		zap.String("event", "profile_updated"),
	)

	return &UpdateProfileResponse{Name: name}, nil
}
