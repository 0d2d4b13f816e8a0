package reservation

import (
	domainCourt "padel-booking/internal/domain/court"
	domainReservation "padel-booking/internal/domain/reservation"
)

type CreateRequest struct {
	Court     string `json:"court" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date" validate:"required"`      // dd/mm/yyyy
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
}

type CreateResponse struct {
	ReservationID int64 `json:"reservationID"`
}

type CancelRequest struct {
	CancellationReason string `json:"CancellationReason"`
}

type CourtResponse struct {
	CourtID   int64  `json:"CourtID"`
	CourtName string `json:"CourtName"`
}

// Response mirrors the joined reservation rows the API has always returned.
// Duration (hours, end minus start) is only present on per-user listings.
type Response struct {
	ReservationID      int64    `json:"ReservationID"`
	CourtID            int64    `json:"CourtID"`
	CourtName          string   `json:"CourtName"`
	Name               string   `json:"Name"`
	Email              string   `json:"Email"`
	Date               string   `json:"Date"` // yyyy-mm-dd
	StartTime          string   `json:"StartTime"`
	EndTime            string   `json:"EndTime"`
	Status             string   `json:"Status"`
	CancellationReason *string  `json:"CancellationReason"`
	Duration           *float64 `json:"Duration,omitempty"`
}

func toCourtResponse(c *domainCourt.Court) *CourtResponse {
	return &CourtResponse{CourtID: c.ID, CourtName: c.Name}
}

func toResponse(r *domainReservation.Reservation, withDuration bool) *Response {
	resp := &Response{
		ReservationID:      r.ID,
		CourtID:            r.CourtID,
		CourtName:          r.CourtName,
		Name:               r.Name,
		Email:              r.Email,
		Date:               r.Date.Format("2006-01-02"),
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
	}
	if withDuration {
		d := r.DurationHours()
		resp.Duration = &d
	}
	return resp
}
