// Package mail sends transactional email. Handlers depend on the Mailer
// interface so tests can swap in a recording fake.
package mail

import (
	"fmt"
	"net/smtp"
)

type Mailer interface {
	Send(to, subject, html string) error
}

// SMTPMailer sends through a plain-auth SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.Username, to, subject, html,
	)

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(addr, auth, m.Username, []string{to}, []byte(msg))
}
