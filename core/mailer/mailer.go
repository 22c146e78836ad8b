package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// Mailer sends run notifications over SMTP. It implements the reporting
// contract the rates feature consumes: recipients learn whether their
// upload produced a rate file, and successful runs carry it attached.
type Mailer struct {
	cfg    Config
	client *mail.Client
}

// New creates a mailer from the configuration. Authentication is only
// negotiated when a username is configured.
func New(cfg Config) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Mailer{cfg: cfg, client: client}, nil
}

// Report notifies the requester about a finished reconciliation run.
// detail is the artifact location on success or the failure cause
// otherwise; attachment, when non-empty, is a local file path attached
// to success mail.
func (m *Mailer) Report(ctx context.Context, to, vendor string, success bool, detail, attachment string) error {
	msg, err := m.compose(to, vendor, success, detail, attachment)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send report to %s: %w", to, err)
	}
	return nil
}

// compose builds the notification message. Split from Report so the
// rendering is testable without an SMTP server.
func (m *Mailer) compose(to, vendor string, success bool, detail, attachment string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %s: %w", to, err)
	}

	if success {
		msg.Subject(fmt.Sprintf("Rate comparison for %s generated", vendor))
		msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
			"The rate comparison for %s finished successfully.\n\nRate file: %s\n",
			vendor, detail,
		))
		if attachment != "" {
			msg.AttachFile(attachment)
		}
		return msg, nil
	}

	msg.Subject(fmt.Sprintf("Rate comparison for %s failed", vendor))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"The rate comparison for %s could not be completed.\n\nReason: %s\n",
		vendor, detail,
	))
	return msg, nil
}
