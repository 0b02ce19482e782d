package infrastructure

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendGridMailer struct {
	client *sendgrid.Client
	sender string
	logger *zap.Logger
}

func NewSendGridMailer(apiKey, sender string, logger *zap.Logger) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
		logger: logger,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, body string) error {
	from := mail.NewEmail("YelpCamp", m.sender)
	message := mail.NewSingleEmailPlainText(from, subject, mail.NewEmail("", to), body)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		m.logger.Error("sendgrid send failed", zap.String("to", to), zap.Error(err))
		return err
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d: %s", response.StatusCode, response.Body)
	}

	m.logger.Info("email sent", zap.String("to", to), zap.Int("status", response.StatusCode))
	return nil
}
