package inquiry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainInquiry "padel-booking/internal/domain/inquiry"
	"padel-booking/internal/logger"
	"padel-booking/internal/mailer"
	appErrors "padel-booking/pkg/errors"
	"padel-booking/pkg/utils"
)

// Service implements the support inquiry use cases.
type Service struct {
	repo   domainInquiry.Repository
	mailer mailer.Mailer
}

func NewService(repo domainInquiry.Repository, m mailer.Mailer) *Service {
	return &Service{repo: repo, mailer: m}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Response, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("Email, subject, and message are required.")
	}

	inq := &domainInquiry.Inquiry{
		Email:        req.Email,
		Category:     req.Category,
		Subject:      req.Subject,
		Description:  req.Description,
		Notification: req.Notification,
		Status:       domainInquiry.StatusOpen,
		Created:      time.Now(),
	}
	if err := s.repo.Create(ctx, inq); err != nil {
		return nil, err
	}

	logger.Info("Inquiry created",
		zap.Int64("inquiry_id", inq.ID),
		zap.String("email", inq.Email),
		zap.String("category", inq.Category),
		zap.String("event", "inquiry_created"),
	)

	return toResponse(inq), nil
}

// List returns all inquiries, or only those for the given email, newest-first.
func (s *Service) List(ctx context.Context, email string) ([]*Response, error) {
	inquiries, err := s.repo.List(ctx, email)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(inquiries))
	for _, inq := range inquiries {
		responses = append(responses, toResponse(inq))
	}
	return responses, nil
}

// Update applies a partial status/answer update. If the requester opted into
// notifications and a non-empty response is being set, they get an email
// summarizing the inquiry and its new state.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) error {
	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var status *domainInquiry.Status
	if req.Status != nil {
		next := domainInquiry.Status(*req.Status)
		if err := inq.Status.Transition(next); err != nil {
			return appErrors.NewValidationError("Invalid status.")
		}
		status = &next
	}

	if err := s.repo.Update(ctx, id, status, req.Response); err != nil {
		return err
	}

	logger.Info("Inquiry updated",
		zap.Int64("inquiry_id", id),
		zap.Bool("status_changed", status != nil),
		zap.Bool("answered", req.Response != nil),
		zap.String("event", "inquiry_updated"),
	)

	if inq.Notification && req.Response != nil && *req.Response != "" {
		newStatus := inq.Status
		if status != nil {
			newStatus = *status
		}
		if err := s.mailer.Send(&mailer.Message{
			To:      inq.Email,
			Subject: "Inquiry Response",
			Body:    responseBody(inq, *req.Response, newStatus),
			Kind:    "inquiry_response",
		}); err != nil {
			logger.Error("Failed to enqueue inquiry response email",
				zap.Int64("inquiry_id", id),
				zap.Error(err),
			)
		}
	}

	return nil
}

func responseBody(inq *domainInquiry.Inquiry, response string, status domainInquiry.Status) string {
	return fmt.Sprintf(
		"Your inquiry (%s) \"%s\"\n\n%s\n\nhas been responded to:\n\n%s\n\nStatus: %s",
		inq.Category, inq.Subject, inq.Description, response, status,
	)
}
