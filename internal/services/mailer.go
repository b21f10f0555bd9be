package services

import (
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"syscall"

	"gopkg.in/gomail.v2"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/config"
)

// Mailer sends a single HTML message. The SMTP implementation is used in
// production; tests substitute a fake.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers mail through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from the SMTP settings in cfg.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

// Send delivers the message synchronously and returns the transport error
// unclassified; callers classify with ClassifyMailError.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

// ClassifyMailError maps an SMTP delivery failure onto the error taxonomy:
// rejected recipient (550) is the caller's fault, unreachable or unknown
// host is a transport outage, anything else is internal.
func ClassifyMailError(err error) *apperrors.Error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) && protoErr.Code == 550 {
		return apperrors.BadRequestf("invalid recipient email address")
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return apperrors.Unavailablef("SMTP server not found")
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return apperrors.Unavailablef("could not connect to the SMTP server")
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return apperrors.Unavailablef("could not connect to the SMTP server")
	}

	return &apperrors.Error{
		Kind:    apperrors.Internal,
		Message: "an unexpected error occurred while sending the email",
		Err:     fmt.Errorf("send mail: %w", err),
	}
}
