package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

type smtpSender struct {
	client *mail.Client
	config Config
}

// NewSMTPSender creates an SMTP-backed email sender. STARTTLS is used when the
// server offers it. Authentication is enabled only when a username is set.
func NewSMTPSender(cfg Config) (EmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("%w: SMTPPort must be positive", ErrInvalidConfig)
	}
	if !validAddress(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &smtpSender{client: client, config: cfg}, nil
}

// SendEmail makes one delivery attempt. No retries.
func (s *smtpSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	msg, err := buildMessage(s.config, params)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}

// buildMessage renders params into a MIME message. When both bodies are set
// the text part is primary and HTML is the alternative.
func buildMessage(cfg Config, params SendEmailParams) (*mail.Msg, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(cfg.SenderEmail); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return nil, errors.Join(ErrInvalidParams, err)
	}
	if cfg.SupportEmail != "" {
		if err := msg.ReplyTo(cfg.SupportEmail); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
	}
	msg.Subject(params.Subject)

	switch {
	case params.BodyText != "" && params.BodyHTML != "":
		msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
		msg.AddAlternativeString(mail.TypeTextHTML, params.BodyHTML)
	case params.BodyText != "":
		msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
	default:
		msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)
	}

	return msg, nil
}
