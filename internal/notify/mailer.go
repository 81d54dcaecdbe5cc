package notify

import (
	"fmt"
	"net/smtp"
)

// Sender delivers one email. Implementations must be safe for concurrent use.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender sends mail through a plain-auth SMTP relay.
type SMTPSender struct {
	Host     string
	Port     string
	From     string
	Password string
}

func (s SMTPSender) Send(to, subject, htmlBody string) error {
	if s.Host == "" || s.From == "" {
		return fmt.Errorf("smtp sender is not configured")
	}

	msg := []byte("From: " + s.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody)

	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.From, []string{to}, msg)
}
