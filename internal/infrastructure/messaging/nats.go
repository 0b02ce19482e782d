package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"yelpcamp/internal/application/common"
)

const CampgroundCreatedSubject = "campground.created"

// Publisher sends domain events over NATS. A Publisher without a connection drops events.
type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

// ConnectNats dials url. An empty url yields a Publisher that publishes nothing.
func ConnectNats(url string, logger *zap.Logger) (*Publisher, error) {
	if url == "" {
		logger.Info("NATS_URL not set, event publishing disabled")
		return &Publisher{logger: logger}, nil
	}

	opts := []nats.Option{
		nats.Name("yelpcamp"),
		nats.Timeout(5 * time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("NATS reconnected")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("NATS error", zap.Error(err))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	logger.Info("connected to NATS", zap.String("url", nc.ConnectedUrl()))
	return &Publisher{nc: nc, logger: logger}, nil
}

func NewPublisher(nc *nats.Conn, logger *zap.Logger) *Publisher {
	return &Publisher{nc: nc, logger: logger}
}

func (p *Publisher) PublishCampgroundCreated(ctx context.Context, event *common.CampgroundCreatedEvent) error {
	if p.nc == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.nc.Publish(CampgroundCreatedSubject, data); err != nil {
		return fmt.Errorf("publish %s: %w", CampgroundCreatedSubject, err)
	}

	p.logger.Debug("event published",
		zap.String("subject", CampgroundCreatedSubject),
		zap.String("campground_id", event.CampgroundId))
	return nil
}

// Close drains pending messages and closes the connection.
func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("NATS drain failed", zap.Error(err))
		p.nc.Close()
	}
}
