package infrastructure

import (
	"context"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

type ResendMailer struct {
	client *resend.Client
	sender string
	logger *zap.Logger
}

func NewResendMailer(apiKey, sender string, logger *zap.Logger) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		sender: sender,
		logger: logger,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    m.sender,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	response, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		m.logger.Error("resend send failed", zap.String("to", to), zap.Error(err))
		return err
	}

	m.logger.Info("email sent", zap.String("to", to), zap.String("id", response.Id))
	return nil
}
