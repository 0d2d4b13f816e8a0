package mailer

// Message is one outbound notification. Calendar, when set, is attached as a
// text/calendar part with method=REQUEST so mail clients render an invite.
type Message struct {
	To       string
	Subject  string
	Body     string
	Calendar []byte
	// Kind labels the message for metrics (reservation_created, reservation_cancelled,
	// password_reset, inquiry_response).
	Kind string
}

// Mailer delivers notifications best-effort. Implementations must never block
// the caller on network I/O; delivery failures are logged, not returned.
type Mailer interface {
	Send(msg *Message) error
}
