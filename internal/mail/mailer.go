package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/config"
	gomail "github.com/wneessen/go-mail"
)

type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers messages through an authenticated SMTP relay (Gmail by default).
type SMTPSender struct {
	client *gomail.Client
}

func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPSender{client: client}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mail: failed to send to %s: %w", msg.To, err)
	}

	log.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail: message sent")
	return nil
}

func buildMsg(msg Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("mail: invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("mail: invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}

// NopSender drops every message. Used when no SMTP credentials are configured.
type NopSender struct{}

func (NopSender) Send(_ context.Context, msg Message) error {
	log.Warn().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail: delivery disabled, message dropped")
	return nil
}
