package storage

import (
	"context"
	"errors"

	"foodmarket/marketplace-svc/internal/domain"

	"github.com/shopspring/decimal"
	"googlemaps.github.io/maps"
)

var ErrAddressNotFound = errors.New("address could not be located")

type GeocodingAPI interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type GoogleGeocoder struct {
	Client GeocodingAPI
	Region string
}

func NewGoogleGeocoder(apiKey, region string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GoogleGeocoder{Client: client, Region: region}, nil
}

// Geocode resolves a free-text address to the coordinates of the first match.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	results, err := g.Client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  g.Region,
	})
	if err != nil {
		return domain.Coordinates{}, err
	}
	if len(results) == 0 {
		return domain.Coordinates{}, ErrAddressNotFound
	}

	location := results[0].Geometry.Location
	return domain.Coordinates{
		Latitude:  decimal.NewFromFloat(location.Lat),
		Longitude: decimal.NewFromFloat(location.Lng),
	}, nil
}
