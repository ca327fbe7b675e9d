package geo

import (
	"testing"

	"foodmarket/marketplace-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantAt(id int, lat, lng float64, active bool, days ...int) domain.Restaurant {
	hours := make([]domain.OperatingHours, 0, len(days))
	for _, d := range days {
		hours = append(hours, domain.OperatingHours{Day: d, Opens: "09:00", Closes: "21:00"})
	}
	return domain.Restaurant{
		ID:        id,
		Latitude:  decimal.NewFromFloat(lat),
		Longitude: decimal.NewFromFloat(lng),
		Active:    active,
		Hours:     hours,
	}
}

func TestDistanceMeters(t *testing.T) {
	durban := Point{Lat: -29.8587, Lng: 31.0218}
	pietermaritzburg := Point{Lat: -29.6006, Lng: 30.3794}

	assert.InDelta(t, 0, DistanceMeters(durban, durban), 0.001)
	assert.InDelta(t, 67800, DistanceMeters(durban, pietermaritzburg), 1500)
	assert.InDelta(t, DistanceMeters(durban, pietermaritzburg), DistanceMeters(pietermaritzburg, durban), 0.001)
}

func TestBoxContainsRadius(t *testing.T) {
	center := Point{Lat: -29.8587, Lng: 31.0218}
	box := Box(center, DefaultRadiusMeters)

	north := Point{Lat: center.Lat + 0.2, Lng: center.Lng}
	require.Less(t, DistanceMeters(center, north), float64(DefaultRadiusMeters))
	assert.GreaterOrEqual(t, box.MaxLat, north.Lat)
	assert.Less(t, box.MinLat, center.Lat)
	assert.Less(t, box.MinLng, center.Lng)
	assert.Greater(t, box.MaxLng, center.Lng)
}

func TestBoxLngRanges(t *testing.T) {
	tests := []struct {
		name       string
		box        BoundingBox
		west, east LngRange
	}{
		{
			name: "inside",
			box:  BoundingBox{MinLng: 30.8, MaxLng: 31.2},
			west: LngRange{Min: 30.8, Max: 31.2},
			east: LngRange{Min: 30.8, Max: 31.2},
		},
		{
			name: "past east edge",
			box:  BoundingBox{MinLng: 179.5, MaxLng: 180.5},
			west: LngRange{Min: 179.5, Max: 180},
			east: LngRange{Min: -180, Max: -179.5},
		},
		{
			name: "past west edge",
			box:  BoundingBox{MinLng: -180.5, MaxLng: -179.5},
			west: LngRange{Min: 179.5, Max: 180},
			east: LngRange{Min: -180, Max: -179.5},
		},
		{
			name: "whole circle",
			box:  BoundingBox{MinLng: -200, MaxLng: 160},
			west: LngRange{Min: -180, Max: 180},
			east: LngRange{Min: -180, Max: 180},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			west, east := testCase.box.LngRanges()

			assert.InDelta(t, testCase.west.Min, west.Min, 1e-9)
			assert.InDelta(t, testCase.west.Max, west.Max, 1e-9)
			assert.InDelta(t, testCase.east.Min, east.Min, 1e-9)
			assert.InDelta(t, testCase.east.Max, east.Max, 1e-9)
		})
	}
}

func TestBoxNearAntimeridianFindsOtherSide(t *testing.T) {
	center := Point{Lat: -18.1, Lng: 179.95}
	other := Point{Lat: -18.1, Lng: -179.95}
	require.Less(t, DistanceMeters(center, other), float64(DefaultRadiusMeters))

	_, east := Box(center, DefaultRadiusMeters).LngRanges()

	assert.GreaterOrEqual(t, other.Lng, east.Min)
	assert.LessOrEqual(t, other.Lng, east.Max)
}

func TestWithinRadius(t *testing.T) {
	origin := Point{Lat: -29.8587, Lng: 31.0218}
	const tuesday = 1

	candidates := []domain.Restaurant{
		restaurantAt(1, -29.8000, 31.0300, true, 0, 1, 2),
		restaurantAt(2, -29.8590, 31.0220, true, 1),
		restaurantAt(3, -29.8500, 31.0200, true, 0),
		restaurantAt(4, -29.8500, 31.0200, false, 1),
		restaurantAt(5, -29.6006, 30.3794, true, 1),
	}

	got := WithinRadius(candidates, origin, DefaultRadiusMeters, tuesday)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
	assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
	assert.InDelta(t, 6.6, got[1].DistanceKm, 0.5)
	assert.Equal(t, "21:00", got[0].Closes)
}

func TestWithinRadius_MondayOnlyExcludedOnTuesday(t *testing.T) {
	origin := Point{Lat: -29.8587, Lng: 31.0218}
	mondayOnly := restaurantAt(7, -29.8587, 31.0218, true, 0)

	assert.Len(t, WithinRadius([]domain.Restaurant{mondayOnly}, origin, DefaultRadiusMeters, 0), 1)
	assert.Empty(t, WithinRadius([]domain.Restaurant{mondayOnly}, origin, DefaultRadiusMeters, 1))
}
