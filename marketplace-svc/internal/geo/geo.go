package geo

import (
	"math"
	"sort"

	"foodmarket/marketplace-svc/internal/domain"
)

const (
	EarthRadiusMeters   = 6371008.8
	DefaultRadiusMeters = 25000
	metersPerDegreeLat  = 111320.0
)

type Point struct {
	Lat float64
	Lng float64
}

type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// DistanceMeters is the haversine great-circle distance between a and b.
func DistanceMeters(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Box returns a rectangle that contains every point within radius of center.
// It is only a prefilter; callers still check DistanceMeters.
func Box(center Point, radiusMeters float64) BoundingBox {
	dLat := radiusMeters / metersPerDegreeLat
	cos := math.Cos(center.Lat * math.Pi / 180)
	dLng := 180.0
	if cos > 1e-9 {
		dLng = math.Min(180, radiusMeters/(metersPerDegreeLat*cos))
	}
	return BoundingBox{
		MinLat: math.Max(-90, center.Lat-dLat),
		MaxLat: math.Min(90, center.Lat+dLat),
		MinLng: center.Lng - dLng,
		MaxLng: center.Lng + dLng,
	}
}

type LngRange struct {
	Min, Max float64
}

// LngRanges splits the box's longitude span into ranges inside [-180, 180].
// A box crossing the antimeridian yields two ranges; otherwise both are the
// same.
func (b BoundingBox) LngRanges() (LngRange, LngRange) {
	switch {
	case b.MaxLng-b.MinLng >= 360:
		whole := LngRange{Min: -180, Max: 180}
		return whole, whole
	case b.MinLng < -180:
		return LngRange{Min: b.MinLng + 360, Max: 180}, LngRange{Min: -180, Max: b.MaxLng}
	case b.MaxLng > 180:
		return LngRange{Min: b.MinLng, Max: 180}, LngRange{Min: -180, Max: b.MaxLng - 360}
	}
	span := LngRange{Min: b.MinLng, Max: b.MaxLng}
	return span, span
}

func PointOf(r domain.Restaurant) Point {
	return Point{Lat: r.Latitude.InexactFloat64(), Lng: r.Longitude.InexactFloat64()}
}

// WithinRadius keeps the active candidates that have operating hours for day
// and lie within radiusMeters of origin, nearest first.
func WithinRadius(candidates []domain.Restaurant, origin Point, radiusMeters float64, day int) []domain.NearbyRestaurant {
	result := make([]domain.NearbyRestaurant, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.Active {
			continue
		}
		hours, open := hoursFor(candidate.Hours, day)
		if !open {
			continue
		}
		distance := DistanceMeters(origin, PointOf(candidate))
		if distance > radiusMeters {
			continue
		}
		result = append(result, domain.NearbyRestaurant{
			Restaurant: candidate,
			DistanceKm: math.Round(distance) / 1000,
			Closes:     hours.Closes,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})
	return result
}

func hoursFor(hours []domain.OperatingHours, day int) (domain.OperatingHours, bool) {
	for _, h := range hours {
		if h.Day == day {
			return h, true
		}
	}
	return domain.OperatingHours{}, false
}
