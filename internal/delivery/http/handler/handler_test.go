package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"padel-booking/internal/config"
	"padel-booking/internal/infrastructure/database/postgres"
	"padel-booking/internal/infrastructure/database/postgres/models"
	"padel-booking/internal/logger"
	"padel-booking/internal/mailer"
	"padel-booking/internal/middleware"
	"padel-booking/internal/usecase/auth"
	"padel-booking/internal/usecase/inquiry"
	"padel-booking/internal/usecase/reservation"
	"padel-booking/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type recordingMailer struct {
	messages []*mailer.Message
}

func (m *recordingMailer) Send(msg *mailer.Message) error {
	m.messages = append(m.messages, msg)
	return nil
}

// setupAPI wires the full handler stack against an in-memory database,
// mirroring the production route tree under /api.
func setupAPI(t *testing.T) (*gin.Engine, *recordingMailer) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	db := &postgres.DB{DB: gdb}
	require.NoError(t, db.Migrate())
	require.NoError(t, db.DB.Create(&models.CourtModel{Name: "Court A"}).Error)
	require.NoError(t, db.DB.Create(&models.CourtModel{Name: "Court B"}).Error)

	cfg := &config.Config{
		Server: config.ServerConfig{PublicURL: "http://localhost:3000"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
	mail := &recordingMailer{}

	authHandler := NewAuthHandler(auth.NewService(postgres.NewUserRepository(db), mail, cfg))
	inquiryHandler := NewInquiryHandler(inquiry.NewService(postgres.NewInquiryRepository(db), mail))
	reservationHandler := NewReservationHandler(reservation.NewService(
		postgres.NewReservationRepository(db), postgres.NewCourtRepository(db), mail))

	router := gin.New()
	api := router.Group("/api")
	authHandler.RegisterRoutes(api)
	inquiryHandler.RegisterRoutes(api)
	reservationHandler.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	authHandler.RegisterProtectedRoutes(protected)

	return router, mail
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupAndLoginEndpoints(t *testing.T) {
	router, _ := setupAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/signup",
		`{"Name":"Alice","Email":"alice@example.com","Password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var signup map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	assert.Equal(t, "User registered successfully.", signup["message"])
	assert.Equal(t, "alice@example.com", signup["Email"])
	assert.NotEmpty(t, signup["token"])

	w = doJSON(t, router, http.MethodPost, "/api/signup",
		`{"Name":"Alice","Email":"alice@example.com","Password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists.", w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/login",
		`{"Email":"alice@example.com","Password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, "Alice", login["Name"])
	assert.Equal(t, "user", login["Role"])

	w = doJSON(t, router, http.MethodPost, "/api/login",
		`{"Email":"alice@example.com","Password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials.", w.Body.String())
}

func TestPasswordResetEndpoints(t *testing.T) {
	router, mail := setupAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/signup",
		`{"Name":"Alice","Email":"alice@example.com","Password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/reset-password",
		`{"Email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No account with this email exists.", w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/reset-password",
		`{"Email":"alice@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password reset email sent.", w.Body.String())

	require.Len(t, mail.messages, 1)
	body := mail.messages[0].Body
	idx := strings.Index(body, "token=")
	require.Greater(t, idx, 0)
	token := body[idx+len("token="):]

	w = doJSON(t, router, http.MethodPut, "/api/reset-password",
		`{"ResetToken":"`+token+`","Password":"newpass"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password updated successfully.", w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/login",
		`{"Email":"alice@example.com","Password":"newpass"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// The stored token was cleared, so the same link is dead now.
	w = doJSON(t, router, http.MethodPut, "/api/reset-password",
		`{"ResetToken":"`+token+`","Password":"again"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid token.", w.Body.String())
}

func TestUpdateProfileEndpoint(t *testing.T) {
	router, _ := setupAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/signup",
		`{"Name":"Alice","Email":"alice@example.com","Password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var signup map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	token, _ := signup["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodPut, "/api/user/update", strings.NewReader(`{"Name":"Alicia"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized.", w.Body.String())

	req = httptest.NewRequest(http.MethodPut, "/api/user/update", strings.NewReader(`{"Name":"Alicia"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Name":"Alicia"}`, w.Body.String())

	expired, err := utils.GenerateToken("alice@example.com", "", "test-secret", -1)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPut, "/api/user/update", strings.NewReader(`{"Name":"Alicia"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token expired. Please log in again.", w.Body.String())
}

func TestReservationLifecycleEndpoints(t *testing.T) {
	router, mail := setupAPI(t)

	w := doJSON(t, router, http.MethodGet, "/api/courts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var courts []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courts))
	require.Len(t, courts, 2)
	assert.Equal(t, "Court A", courts[0]["CourtName"])

	w = doJSON(t, router, http.MethodPost, "/api/reservations",
		`{"court":"1","email":"alice@example.com","name":"Alice","date":"15/06/2025","startTime":"10:00","endTime":"12:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, float64(1), created["reservationID"])

	require.Len(t, mail.messages, 1)
	assert.NotEmpty(t, mail.messages[0].Calendar)

	w = doJSON(t, router, http.MethodGet, "/api/reservations/day?date=2025-06-15", "")
	require.Equal(t, http.StatusOK, w.Code)

	var day []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	require.Len(t, day, 1)
	assert.Equal(t, "Created", day[0]["Status"])
	assert.Equal(t, "Court A", day[0]["CourtName"])
	_, hasDuration := day[0]["Duration"]
	assert.False(t, hasDuration)

	// Cancelling without a reason is rejected and leaves the booking alone.
	w = doJSON(t, router, http.MethodPut, "/api/reservations/1/cancel", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cancellation reason is required.", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/reservations?email=alice@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var mine []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "Created", mine[0]["Status"])
	assert.Equal(t, float64(2), mine[0]["Duration"])

	w = doJSON(t, router, http.MethodPut, "/api/reservations/1/cancel", `{"CancellationReason":"Rain"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reservation cancelled successfully.", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/reservations/day?date=2025-06-15", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	require.Len(t, day, 1)
	assert.Equal(t, "Cancelled", day[0]["Status"])
	assert.Equal(t, "Rain", day[0]["CancellationReason"])

	w = doJSON(t, router, http.MethodPut, "/api/reservations/99/cancel", `{"CancellationReason":"Rain"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Reservation not found.", w.Body.String())
}

func TestReservationValidationEndpoints(t *testing.T) {
	router, _ := setupAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/reservations",
		`{"court":"1","email":"alice@example.com","name":"Alice","date":"2025-06-15","startTime":"10:00","endTime":"12:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid date.", w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/reservations",
		`{"court":"9","email":"alice@example.com","name":"Alice","date":"15/06/2025","startTime":"10:00","endTime":"12:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid court.", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/reservations", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required.", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/reservations/day", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Date is required.", w.Body.String())
}

func TestAvailabilityEndpoint(t *testing.T) {
	router, _ := setupAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/reservations",
		`{"court":"1","email":"alice@example.com","name":"Alice","date":"15/06/2025","startTime":"10:00","endTime":"12:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/reservations/availability?date=2025-06-15&email=bob@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var grid map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	assert.Equal(t, "2025-06-15", grid["Date"])

	rows, ok := grid["Rows"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 15)

	row := rows[2].(map[string]interface{})
	assert.Equal(t, "10:00", row["Time"])
	cells := row["Cells"].([]interface{})
	require.Len(t, cells, 2)
	assert.Equal(t, "reserved", cells[0].(map[string]interface{})["State"])
	assert.Equal(t, "available", cells[1].(map[string]interface{})["State"])
}

func TestInquiryEndpoints(t *testing.T) {
	router, mail := setupAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/inquiries",
		`{"Email":"alice@example.com","Category":"Booking","Description":"No subject here"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Email, subject, and message are required."}`, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/inquiries",
		`{"Email":"alice@example.com","Category":"Booking","Subject":"Wrong court","Description":"I booked A, got B.","Notification":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Open", created["Status"])

	w = doJSON(t, router, http.MethodGet, "/api/inquiries?email=alice@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	w = doJSON(t, router, http.MethodPut, "/api/inquiries/1",
		`{"status":"Closed","response":"Court A is yours."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Inquiry updated successfully."}`, w.Body.String())

	require.Len(t, mail.messages, 1)
	assert.Equal(t, "Inquiry Response", mail.messages[0].Subject)

	w = doJSON(t, router, http.MethodPut, "/api/inquiries/99",
		`{"status":"Closed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Inquiry not found."}`, w.Body.String())
}
