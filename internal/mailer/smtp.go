package mailer

import (
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"padel-booking/internal/config"
	"padel-booking/internal/logger"
	"padel-booking/internal/metrics"
)

// SMTPMailer sends mail through the configured SMTP account. Each Send
// dispatches on its own goroutine: the data mutation that triggered the
// notification has already committed, so delivery must not fail the request.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(msg *Message) error {
	go m.deliver(msg)
	return nil
}

func (m *SMTPMailer) deliver(msg *Message) {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, "4Locos Padel")
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if len(msg.Calendar) > 0 {
		gm.Attach("invite.ics",
			gomail.SetHeader(map[string][]string{
				"Content-Type": {`text/calendar; charset=UTF-8; method=REQUEST`},
			}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(msg.Calendar)
				return err
			}),
		)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		metrics.IncEmail(msg.Kind, "error")
		logger.Error("Failed to send notification email",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.String("kind", msg.Kind),
			zap.Error(err),
		)
		return
	}

	metrics.IncEmail(msg.Kind, "sent")
	logger.Debug("Notification email sent",
		zap.String("to", msg.To),
		zap.String("kind", msg.Kind),
	)
}

var _ Mailer = (*SMTPMailer)(nil)
