package notification

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	from    string
	deliver func(ctx context.Context, msg *gomail.Msg) error
}

// NewSMTPMailer relays through cfg.Host, upgrading to TLS when the server offers it.
func NewSMTPMailer(cfg SMTPConfig) (Mailer, error) {
	opts := []gomail.Option{
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &smtpMailer{
		from: cfg.From,
		deliver: func(ctx context.Context, msg *gomail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := newMessage(m.from, mail)
	if err != nil {
		return err
	}
	if err := m.deliver(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// newMessage builds the MIME message. Addresses are parsed and the subject is RFC 2047
// encoded by go-mail; line breaks in the subject are folded into spaces first.
func newMessage(from string, mail Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(mail.To...); err != nil {
		return nil, fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(headerValue(mail.Subject))
	msg.SetBodyString(gomail.TypeTextHTML, mail.HTML)
	return msg, nil
}

func headerValue(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// logMailer stands in when SMTP is not configured.
type logMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) Mailer {
	return &logMailer{logger: logger.Named("notification.mailer")}
}

func (m *logMailer) Send(_ context.Context, mail Mail) error {
	m.logger.Info("smtp disabled, mail not sent",
		zap.Strings("to", mail.To),
		zap.String("subject", headerValue(mail.Subject)),
	)
	return nil
}
