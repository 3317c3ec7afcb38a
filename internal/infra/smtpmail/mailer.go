// Package smtpmail delivers notifications as plain-text email over SMTP.
package smtpmail

import (
	"context"

	"github.com/wneessen/go-mail"

	"github.com/avenlon/domainwatch/internal/domain"
	"github.com/avenlon/domainwatch/internal/ports"
)

type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

// New builds the SMTP client from config. Port 465 speaks implicit TLS; any
// other port negotiates STARTTLS.
func New(cfg domain.SMTPConfig) (*Mailer, error) {
	defaults := domain.DefaultConfig().SMTP

	port := cfg.Port
	if port == 0 {
		port = defaults.Port
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaults.Timeout
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(timeout),
	}
	if port == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "notify.client",
			Kind: domain.KindNotify,
			Err:  err,
		}
	}

	return &Mailer{
		client: client,
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

var _ ports.Notifier = (*Mailer)(nil)

func (m *Mailer) Notify(ctx context.Context, n domain.Notification) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return &domain.OpError{
			Op:   "notify.from",
			Kind: domain.KindNotify,
			Err:  err,
		}
	}
	if err := msg.To(m.to); err != nil {
		return &domain.OpError{
			Op:   "notify.to",
			Kind: domain.KindNotify,
			Err:  err,
		}
	}
	msg.Subject(n.Subject)
	msg.SetBodyString(mail.TypeTextPlain, n.Body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return &domain.OpError{
			Op:   "notify.send",
			Kind: domain.KindNotify,
			Err:  err,
		}
	}
	return nil
}
