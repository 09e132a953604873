package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nxtgenhub/lead-relay/internal/entity"
	"github.com/nxtgenhub/lead-relay/internal/usecase"
)

type dialer interface {
	Dial() (gomail.SendCloser, error)
}

// EmailSender opens gomail SMTP sessions.
type EmailSender struct {
	dialer dialer
}

func NewEmailSender(s SMTPSettings) *EmailSender {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if s.TLSSkipVerify {
		d.TLSConfig = &tls.Config{ServerName: s.Host, InsecureSkipVerify: true}
	}
	return &EmailSender{dialer: d}
}

// Open dials and authenticates. gomail has no context support, so ctx is
// only checked before dialing.
func (s *EmailSender) Open(ctx context.Context) (usecase.MailSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sc, err := s.dialer.Dial()
	if err != nil {
		return nil, fmt.Errorf("smtp connection failed: %w", err)
	}
	return &session{sc: sc}, nil
}

type session struct {
	sc gomail.SendCloser
}

func (s *session) Send(msg entity.Message) error {
	if err := gomail.Send(s.sc, BuildMessage(msg)); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", msg.To, err)
	}
	return nil
}

func (s *session) Close() error {
	return s.sc.Close()
}

// BuildMessage renders msg as multipart/alternative when both bodies are
// present, text part first.
func BuildMessage(msg entity.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}
	return m
}
