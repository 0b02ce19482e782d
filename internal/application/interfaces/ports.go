package interfaces

import (
	"context"

	"yelpcamp/internal/application/common"
	"yelpcamp/internal/domain/entities"
)

// Mailer delivers plain-text email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Geocoder resolves a free-text address. It returns entities.ErrInvalidAddress when the
// address has no match.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*entities.Location, error)
}

// EventPublisher announces domain events to other services.
type EventPublisher interface {
	PublishCampgroundCreated(ctx context.Context, event *common.CampgroundCreatedEvent) error
}
