package notifications

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// SMTPServiceImpl implements domain.MailService over plain SMTP.
type SMTPServiceImpl struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPService creates a new SMTP mail service
func NewSMTPService(host string, port int, username, password, from string) domain.MailService {
	return &SMTPServiceImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendEmail implements domain.MailService. When no SMTP host is
// configured the message is logged instead of sent, so local setups can
// read OTP codes from the log.
func (s *SMTPServiceImpl) SendEmail(to, subject, body string) error {
	if s.host == "" {
		log.Printf("MAIL_MOCK: to=%s subject=%q body=%q", to, subject, body)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
