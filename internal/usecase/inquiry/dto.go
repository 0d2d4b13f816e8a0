package inquiry

import (
	"time"

	domainInquiry "padel-booking/internal/domain/inquiry"
)

type CreateRequest struct {
	Email        string `json:"Email" validate:"required,email"`
	Category     string `json:"Category"`
	Subject      string `json:"Subject" validate:"required"`
	Description  string `json:"Description" validate:"required"`
	Notification bool   `json:"Notification"`
}

type UpdateRequest struct {
	Status   *string `json:"status"`
	Response *string `json:"response"`
}

type Response struct {
	ID           int64      `json:"Id"`
	Email        string     `json:"Email"`
	Category     string     `json:"Category"`
	Subject      string     `json:"Subject"`
	Description  string     `json:"Description"`
	Notification bool       `json:"Notification"`
	Status       string     `json:"Status"`
	Answer       *string    `json:"Answer"`
	Created      time.Time  `json:"Created"`
	UpdatedDate  *time.Time `json:"UpdatedDate"`
}

func toResponse(inq *domainInquiry.Inquiry) *Response {
	return &Response{
		ID:           inq.ID,
		Email:        inq.Email,
		Category:     inq.Category,
		Subject:      inq.Subject,
		Description:  inq.Description,
		Notification: inq.Notification,
		Status:       string(inq.Status),
		Answer:       inq.Answer,
		Created:      inq.Created,
		UpdatedDate:  inq.UpdatedDate,
	}
}
