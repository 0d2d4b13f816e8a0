package reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	domainCourt "padel-booking/internal/domain/court"
	domainReservation "padel-booking/internal/domain/reservation"
	"padel-booking/internal/logger"
	"padel-booking/internal/mailer"
	appErrors "padel-booking/pkg/errors"
	"padel-booking/pkg/utils"
)

const (
	// Create requests and notification emails use dd/mm/yyyy; day queries
	// use ISO dates.
	displayDateLayout = "02/01/2006"
	dayQueryLayout    = "2006-01-02"
)

// Service implements the reservation use cases: court listing, booking,
// cancellation, per-user and per-day listings and the availability grid.
type Service struct {
	resRepo   domainReservation.Repository
	courtRepo domainCourt.Repository
	mailer    mailer.Mailer
	now       func() time.Time
}

func NewService(resRepo domainReservation.Repository, courtRepo domainCourt.Repository, m mailer.Mailer) *Service {
	return &Service{
		resRepo:   resRepo,
		courtRepo: courtRepo,
		mailer:    m,
		now:       time.Now,
	}
}

func (s *Service) ListCourts(ctx context.Context) ([]*CourtResponse, error) {
	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*CourtResponse, 0, len(courts))
	for _, c := range courts {
		responses = append(responses, toCourtResponse(c))
	}
	return responses, nil
}

// Create books a court and emails a confirmation with a calendar invite.
// There is deliberately no overlap check against existing reservations: two
// bookings of the same court and hour both succeed.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*CreateResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("All fields are required.")
	}

	date, err := time.ParseInLocation(displayDateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, appErrors.NewValidationError("Invalid date.")
	}

	if err := validateSlot(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	courtID, err := strconv.ParseInt(req.Court, 10, 64)
	if err != nil {
		return nil, appErrors.NewValidationError("Invalid court.")
	}
	c, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, domainCourt.ErrCourtNotFound) {
			return nil, appErrors.NewValidationError("Invalid court.")
		}
		return nil, err
	}

	r := &domainReservation.Reservation{
		CourtID:   c.ID,
		CourtName: c.Name,
		Name:      req.Name,
		Email:     req.Email,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domainReservation.StatusCreated,
	}
	if err := s.resRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	logger.Info("Reservation created",
		zap.Int64("reservation_id", r.ID),
		zap.Int64("court_id", c.ID),
		zap.String("email", r.Email),
		zap.String("date", req.Date),
		zap.String("start", req.StartTime),
		zap.String("end", req.EndTime),
		zap.String("event", "reservation_created"),
	)

	s.sendConfirmation(r, c.Name)

	return &CreateResponse{ReservationID: r.ID}, nil
}

// Cancel marks a reservation cancelled and emails the requester. It is not
// idempotent: cancelling twice succeeds twice and re-sends the notice.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) error {
	if reason == "" {
		return appErrors.NewValidationError("Cancellation reason is required.")
	}

	r, err := s.resRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.Status.Transition(domainReservation.StatusCancelled); err != nil {
		return appErrors.NewValidationError("Invalid status.")
	}

	if err := s.resRepo.UpdateStatus(ctx, id, domainReservation.StatusCancelled, &reason); err != nil {
		return err
	}

	logger.Info("Reservation cancelled",
		zap.Int64("reservation_id", id),
		zap.String("email", r.Email),
		zap.String("reason", reason),
		zap.String("event", "reservation_cancelled"),
	)

	body := fmt.Sprintf("Your reservation for %s on %s from %s to %s has been cancelled.\nReason: %s",
		r.CourtName, r.Date.Format(displayDateLayout), r.StartTime, r.EndTime, reason)

	if err := s.mailer.Send(&mailer.Message{
		To:      r.Email,
		Subject: "Reservation Cancelled",
		Body:    body,
		Kind:    "reservation_cancelled",
	}); err != nil {
		logger.Error("Failed to enqueue cancellation email",
			zap.Int64("reservation_id", id),
			zap.Error(err),
		)
	}

	return nil
}

// ListByEmail returns the requester's reservations with court name and a
// derived duration in hours, ordered by date then start time.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]*Response, error) {
	if email == "" {
		return nil, appErrors.NewValidationError("Email is required.")
	}

	reservations, err := s.resRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, toResponse(r, true))
	}
	return responses, nil
}

// ListByDay returns every reservation on the given day, any status and user,
// which is what the shared availability grid is rendered from.
func (s *Service) ListByDay(ctx context.Context, dateStr string) ([]*Response, error) {
	date, err := s.parseDay(dateStr)
	if err != nil {
		return nil, err
	}

	reservations, err := s.resRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, toResponse(r, false))
	}
	return responses, nil
}

// AvailabilityGrid renders the (hour x court) matrix for one day. The email,
// when given, marks the caller's own bookings distinctly.
func (s *Service) AvailabilityGrid(ctx context.Context, dateStr, email string) (*GridResponse, error) {
	date, err := s.parseDay(dateStr)
	if err != nil {
		return nil, err
	}

	courts, err := s.courtRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.resRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &GridResponse{
		Date: date.Format(dayQueryLayout),
		Rows: buildGrid(courts, reservations, date, email, s.now()),
	}, nil
}

func (s *Service) parseDay(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, appErrors.NewValidationError("Date is required.")
	}
	date, err := time.ParseInLocation(dayQueryLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, appErrors.NewValidationError("Invalid date.")
	}
	return date, nil
}

func (s *Service) sendConfirmation(r *domainReservation.Reservation, courtName string) {
	start, err1 := eventTime(r.Date, r.StartTime)
	end, err2 := eventTime(r.Date, r.EndTime)
	if err1 != nil || err2 != nil {
		logger.Error("Failed to build calendar invite",
			zap.Int64("reservation_id", r.ID),
			zap.String("start", r.StartTime),
			zap.String("end", r.EndTime),
		)
		return
	}

	invite := buildCalendarInvite(courtName, start, end, s.now())
	body := fmt.Sprintf("Your reservation for %s on %s from %s to %s has been created.",
		courtName, r.Date.Format(displayDateLayout), r.StartTime, r.EndTime)

	if err := s.mailer.Send(&mailer.Message{
		To:       r.Email,
		Subject:  "Reservation Created",
		Body:     body,
		Calendar: []byte(invite),
		Kind:     "reservation_created",
	}); err != nil {
		logger.Error("Failed to enqueue confirmation email",
			zap.Int64("reservation_id", r.ID),
			zap.Error(err),
		)
	}
}

// validateSlot enforces the booking window: whole hours only, starting no
// earlier than 08:00, 1 to 5 hours long, ending by 23:00.
func validateSlot(startTime, endTime string) error {
	start, err := time.Parse("15:04", startTime)
	if err != nil || start.Minute() != 0 {
		return appErrors.NewValidationError("Invalid time.")
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil || end.Minute() != 0 {
		return appErrors.NewValidationError("Invalid time.")
	}

	startHour, endHour := start.Hour(), end.Hour()
	if startHour < GridOpenHour {
		return appErrors.NewValidationError("Invalid time.")
	}
	if endHour > GridCloseHour {
		return appErrors.NewValidationError("Invalid duration: Reservations cannot end after 23:00.")
	}

	duration := endHour - startHour
	if duration < MinDurationHours || duration > MaxDurationHours {
		return appErrors.NewValidationError("Invalid duration.")
	}

	return nil
}
