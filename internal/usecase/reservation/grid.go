package reservation

import (
	"fmt"
	"time"

	domainCourt "padel-booking/internal/domain/court"
	domainReservation "padel-booking/internal/domain/reservation"
)

// Booking window: slots start at 08:00, the last one ends at 23:00.
const (
	GridOpenHour  = 8
	GridCloseHour = 23

	MinDurationHours = 1
	MaxDurationHours = 5
)

type CellState string

const (
	CellAvailable CellState = "available"
	CellReserved  CellState = "reserved"
	CellYours     CellState = "yours"
)

type GridCell struct {
	CourtID   int64     `json:"CourtID"`
	CourtName string    `json:"CourtName"`
	State     CellState `json:"State"`
	// Past marks available slots whose start time has already gone by.
	Past bool `json:"Past"`
}

type GridRow struct {
	Time  string     `json:"Time"`
	Cells []GridCell `json:"Cells"`
}

type GridResponse struct {
	Date string    `json:"Date"`
	Rows []GridRow `json:"Rows"`
}

// buildGrid derives the (hour x court) availability matrix for one day.
// A reservation covers a cell when its court matches and the cell hour falls
// in [start hour, end hour); cancelled reservations cover nothing. The email
// distinguishes the caller's own bookings from other people's.
func buildGrid(courts []*domainCourt.Court, reservations []*domainReservation.Reservation, date time.Time, email string, now time.Time) []GridRow {
	rows := make([]GridRow, 0, GridCloseHour-GridOpenHour)

	for hour := GridOpenHour; hour < GridCloseHour; hour++ {
		slotStart := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)

		row := GridRow{
			Time:  fmt.Sprintf("%02d:00", hour),
			Cells: make([]GridCell, 0, len(courts)),
		}

		for _, c := range courts {
			cell := GridCell{
				CourtID:   c.ID,
				CourtName: c.Name,
				State:     CellAvailable,
				Past:      slotStart.Before(now),
			}

			if covering := coveringReservation(reservations, c.ID, hour); covering != nil {
				cell.Past = false
				if email != "" && covering.Email == email {
					cell.State = CellYours
				} else {
					cell.State = CellReserved
				}
			}

			row.Cells = append(row.Cells, cell)
		}

		rows = append(rows, row)
	}

	return rows
}

func coveringReservation(reservations []*domainReservation.Reservation, courtID int64, hour int) *domainReservation.Reservation {
	for _, r := range reservations {
		if r.CourtID == courtID && r.Covers(hour) {
			return r
		}
	}
	return nil
}
