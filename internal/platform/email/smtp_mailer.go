package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

var _ Mailer = &SMTPMailer{}

type SMTPMailer struct {
	from   string
	pass   string
	host   string
	port   int
	sender string
}

func NewSMTPMailer(cfg *SMTPConfig, sender string) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.User,
		pass:   cfg.Password,
		host:   cfg.Host,
		port:   cfg.Port,
		sender: sender,
	}
}

func (e *SMTPMailer) SendPlain(to []string, subject, body string) error {
	return e.send(to, subject, body, "text/plain")
}

func (e *SMTPMailer) send(to []string, subject, body, contentType string) error {
	from := e.from
	host := e.host
	auth := smtp.PlainAuth(
		"",
		from,
		e.pass,
		host,
	)

	recipients := strings.Join(to, ", ")
	headers := "From: " + e.sender + "\r\n" +
		"To: " + recipients + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"UTF-8\"\r\n\r\n"

	message := headers + body
	addr := fmt.Sprintf("%s:%d", host, e.port)

	err := smtp.SendMail(
		addr,
		auth,
		from,
		to,
		[]byte(message),
	)

	if err != nil {
		return fmt.Errorf("sending email from %q to %q: %w", from, to, err)
	}

	slog.Info("Email sent.")
	return nil
}
