package inquiry

import "time"

// Inquiry is a support ticket submitted via the contact form. Answer and
// UpdatedDate are set by operator updates; Notification records whether the
// requester opted into email updates at creation time.
type Inquiry struct {
	ID           int64
	Email        string
	Category     string
	Subject      string
	Description  string
	Notification bool
	Status       Status
	Answer       *string
	Created      time.Time
	UpdatedDate  *time.Time
}
