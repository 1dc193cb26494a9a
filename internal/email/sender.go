package email

import (
	"fmt"

	"devjobs_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional mail. The only mail this application sends
// is the password-reset link.
type Sender interface {
	Send(to, subject, body string) error
	SendPasswordReset(to, token string) error
}

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (e *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUsername,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (e *SMTPSender) SendPasswordReset(to, token string) error {
	resetURL := fmt.Sprintf("%s/reestablecer-password/%s", e.cfg.Email.BaseURL, token)
	body := fmt.Sprintf(
		`<p>Para reestablecer tu password haz click en el siguiente enlace:</p>
<p><a href="%s">Reestablecer Password</a></p>
<p>Si no solicitaste este cambio, ignora este correo.</p>`,
		resetURL,
	)
	return e.Send(to, "Reestablece tu password en devJobs", body)
}
