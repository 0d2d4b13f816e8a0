package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"padel-booking/internal/config"
	domainUser "padel-booking/internal/domain/user"
	"padel-booking/internal/logger"
	"padel-booking/internal/mailer"
	appErrors "padel-booking/pkg/errors"
	"padel-booking/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type memoryUserRepo struct {
	users map[string]*domainUser.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domainUser.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, u *domainUser.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domainUser.ErrUserAlreadyExists
	}
	u.ID = int64(len(r.users) + 1)
	r.users[u.Email] = u
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) SetResetToken(_ context.Context, email, token string, expiresAt time.Time) error {
	u, ok := r.users[email]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.ResetToken = &token
	u.TokenExpiration = &expiresAt
	return nil
}

func (r *memoryUserRepo) ResetPassword(_ context.Context, email, passwordHash string) error {
	u, ok := r.users[email]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetToken = nil
	u.TokenExpiration = nil
	return nil
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, email string, name, passwordHash *string) error {
	u, ok := r.users[email]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	return nil
}

type recordingMailer struct {
	messages []*mailer.Message
}

func (m *recordingMailer) Send(msg *mailer.Message) error {
	m.messages = append(m.messages, msg)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{PublicURL: "http://localhost:3000"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
}

func newTestService() (*Service, *memoryUserRepo, *recordingMailer) {
	repo := newMemoryUserRepo()
	mail := &recordingMailer{}
	return NewService(repo, mail, testConfig()), repo, mail
}

func TestSignupAndLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully.", resp.Message)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "Alice", resp.Name)
	assert.NotEmpty(t, resp.Token)

	login, err := svc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", login.Email)
	assert.Equal(t, "Alice", login.Name)
	assert.Equal(t, domainUser.DefaultRole, login.Role)
	assert.NotEmpty(t, login.Token)
}

func TestSignupMissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Signup(context.Background(), &SignupRequest{Email: "alice@example.com"})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "All fields are required.", appErr.Message)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req := &SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, req)
	assert.ErrorIs(t, err, appErrors.ErrEmailExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, repo, mail := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "oldpass"})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))

	require.Len(t, mail.messages, 1)
	assert.Equal(t, "alice@example.com", mail.messages[0].To)
	assert.Equal(t, "password_reset", mail.messages[0].Kind)
	assert.Contains(t, mail.messages[0].Body, "http://localhost:3000/reset-password?token=")

	stored := repo.users["alice@example.com"]
	require.NotNil(t, stored.ResetToken)
	token := *stored.ResetToken

	require.NoError(t, svc.ConfirmPasswordReset(ctx, token, "newpass"))

	assert.True(t, utils.CheckPassword(repo.users["alice@example.com"].PasswordHash, "newpass"))
	assert.Nil(t, repo.users["alice@example.com"].ResetToken)

	// The token was cleared on use, so a second attempt must fail.
	err = svc.ConfirmPasswordReset(ctx, token, "anotherpass")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestConfirmPasswordResetStoredExpirationPassed(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "oldpass"})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))

	stored := repo.users["alice@example.com"]
	require.NotNil(t, stored.ResetToken)
	token := *stored.ResetToken

	// The stored expiration governs even while the JWT itself is valid.
	expired := time.Now().Add(-time.Minute)
	stored.TokenExpiration = &expired

	err = svc.ConfirmPasswordReset(ctx, token, "newpass")
	assert.ErrorIs(t, err, appErrors.ErrTokenExpired)
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	svc, _, mail := newTestService()

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domainUser.ErrUserNotFound)
	assert.Empty(t, mail.messages)
}

func TestConfirmPasswordResetBadToken(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.ConfirmPasswordReset(context.Background(), "not-a-jwt", "newpass")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestConfirmPasswordResetMissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.ConfirmPasswordReset(context.Background(), "", "")
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Token and password are required.", appErr.Message)
}

func TestUpdateProfile(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	name := "Alicia"
	resp, err := svc.UpdateProfile(ctx, "alice@example.com", &UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", resp.Name)
	assert.Equal(t, "Alicia", repo.users["alice@example.com"].Name)

	// Password unchanged by a name-only update.
	assert.True(t, utils.CheckPassword(repo.users["alice@example.com"].PasswordHash, "secret123"))

	password := "newpass"
	_, err = svc.UpdateProfile(ctx, "alice@example.com", &UpdateProfileRequest{NewPassword: &password})
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(repo.users["alice@example.com"].PasswordHash, "newpass"))
}

func TestUpdateProfileNoChanges(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, &SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, "alice@example.com", &UpdateProfileRequest{})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "No updates were provided.", appErr.Message)
}
