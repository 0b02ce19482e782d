package infrastructure

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"yelpcamp/internal/application/interfaces"
	"yelpcamp/internal/config"
)

// NewMailer picks the delivery backend named by cfg.Provider.
func NewMailer(cfg config.MailConfig, logger *zap.Logger) (interfaces.Mailer, error) {
	switch cfg.Provider {
	case "sendgrid":
		return NewSendGridMailer(cfg.APIKey, cfg.Sender, logger), nil
	case "resend":
		return NewResendMailer(cfg.APIKey, cfg.Sender, logger), nil
	case "log", "":
		return NewLogMailer(logger), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

// LogMailer writes messages to the log instead of sending them. Used in development.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the envelope at info. The body can carry a live reset link, so it is only
// logged at debug.
func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("mail not sent (log provider)",
		zap.String("to", to),
		zap.String("subject", subject))
	m.logger.Debug("mail body (log provider)",
		zap.String("to", to),
		zap.String("body", body))
	return nil
}
