package mailer

import (
	"log"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	Send(toEmail, subject, htmlBody string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	configured  bool
}

// NewEmailService builds the SMTP sender. Without credentials it degrades to
// a log-only no-op instead of failing, so local environments work unconfigured.
func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	configured := host != "" && username != "" && password != ""
	var d *gomail.Dialer
	if configured {
		d = gomail.NewDialer(host, port, username, password)
	}

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		configured:  configured,
	}
}

func (s *emailService) Send(toEmail, subject, htmlBody string) error {
	if !s.configured {
		log.Printf("[MAILER] Email would be sent to %s: %s", toEmail, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}
