package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
	"yelpcamp/internal/domain/entities"
)

// GoogleGeocoder resolves addresses with the Google Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create geocoder: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (*entities.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, entities.ErrInvalidAddress
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidAddress, err)
	}
	if len(results) == 0 {
		return nil, entities.ErrInvalidAddress
	}

	first := results[0]
	return &entities.Location{
		Address: first.FormattedAddress,
		Lat:     first.Geometry.Location.Lat,
		Lng:     first.Geometry.Location.Lng,
	}, nil
}
