package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"foodmarket/marketplace-svc/internal/cache"
	"foodmarket/marketplace-svc/internal/domain"
	"foodmarket/marketplace-svc/internal/geo"
	"foodmarket/marketplace-svc/internal/storage"
)

const prepopKey = "prepop"

// Upload is a file received from a client, e.g. a restaurant banner.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

func restaurantKey(slug string) string {
	return "get/?slug=" + slug
}

type RestaurantService struct {
	repo         RestaurantRepository
	objects      ObjectStore
	geocoder     Geocoder
	caches       Caches
	radiusMeters float64
	now          func() time.Time
}

func NewRestaurantService(repo RestaurantRepository, objects ObjectStore, geocoder Geocoder, caches Caches, radiusMeters float64) *RestaurantService {
	if radiusMeters <= 0 {
		radiusMeters = geo.DefaultRadiusMeters
	}
	return &RestaurantService{
		repo:         repo,
		objects:      objects,
		geocoder:     geocoder,
		caches:       caches,
		radiusMeters: radiusMeters,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to decide what "today" is.
func (s *RestaurantService) WithClock(now func() time.Time) *RestaurantService {
	s.now = now
	return s
}

// Create uploads the banner, geocodes the address and only then persists the
// restaurant. If geocoding or the insert fails the banner is deleted again.
func (s *RestaurantService) Create(ctx context.Context, appuserID int, req domain.RestaurantCreateRequest, banner Upload) (*domain.Restaurant, error) {
	if err := validateRestaurantCreate(req); err != nil {
		return nil, err
	}
	if banner.Body == nil {
		return nil, domain.ValidationError{Field: "banner", Message: "is required"}
	}

	bannerKey := storage.BannerKey(banner.Filename)
	bannerURL, err := s.objects.Upload(ctx, bannerKey, banner.Body, banner.ContentType)
	if err != nil {
		return nil, domain.DependencyError{Dependency: "object storage", Err: err}
	}

	coords, err := s.geocoder.Geocode(ctx, FormatAddress(req.AddressLine1, req.AddressLine2, req.Suburb, req.City))
	if err != nil {
		s.discardBanner(ctx, bannerKey)
		return nil, domain.DependencyError{Dependency: "geocoding", Err: err}
	}

	rest := &domain.Restaurant{
		AppUserID:    appuserID,
		Name:         strings.TrimSpace(req.Name),
		Slug:         domain.Slugify(req.Name),
		AddressLine1: strings.TrimSpace(req.AddressLine1),
		AddressLine2: strings.TrimSpace(req.AddressLine2),
		Suburb:       strings.TrimSpace(req.Suburb),
		City:         strings.TrimSpace(req.City),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Website:      strings.TrimSpace(req.Website),
		Tagline:      strings.TrimSpace(req.Tagline),
		Cuisine:      strings.TrimSpace(req.Cuisine),
		Capacity:     req.Capacity,
		BannerURL:    bannerURL,
		Latitude:     coords.Latitude,
		Longitude:    coords.Longitude,
		Hours:        req.Hours,
	}
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		s.discardBanner(ctx, bannerKey)
		return nil, err
	}

	if _, err := s.SetPrepop(ctx); err != nil {
		log.Printf("[RESTAURANTS] refresh prepop: %v", err)
	}
	return rest, nil
}

// Update changes the mutable fields. The slug stays as created.
func (s *RestaurantService) Update(ctx context.Context, id int, req domain.RestaurantUpdateRequest) (*domain.Restaurant, error) {
	if err := validateRestaurantUpdate(req); err != nil {
		return nil, err
	}
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	rest.Name = strings.TrimSpace(req.Name)
	rest.AddressLine1 = strings.TrimSpace(req.AddressLine1)
	rest.AddressLine2 = strings.TrimSpace(req.AddressLine2)
	rest.Suburb = strings.TrimSpace(req.Suburb)
	rest.City = strings.TrimSpace(req.City)
	rest.Tagline = strings.TrimSpace(req.Tagline)
	rest.Cuisine = strings.TrimSpace(req.Cuisine)
	rest.Capacity = req.Capacity
	if err := s.repo.UpdateRestaurant(ctx, rest); err != nil {
		return nil, err
	}

	if _, err := cache.Refresh(ctx, s.caches.Restaurants, restaurantKey(rest.Slug), cache.TTLDefault, func(ctx context.Context) (*domain.Restaurant, error) {
		return s.repo.GetRestaurantBySlug(ctx, rest.Slug)
	}); err != nil {
		s.caches.Restaurants.Delete(ctx, restaurantKey(rest.Slug))
	}
	if _, err := s.SetPrepop(ctx); err != nil {
		log.Printf("[RESTAURANTS] refresh prepop: %v", err)
	}
	return rest, nil
}

// discardBanner removes a banner whose restaurant was never stored.
func (s *RestaurantService) discardBanner(ctx context.Context, key string) {
	if err := s.objects.Delete(ctx, key); err != nil {
		log.Printf("[RESTAURANTS] discard banner %s: %v", key, err)
	}
}

func (s *RestaurantService) Get(ctx context.Context, slug string) (*domain.Restaurant, error) {
	return cache.Fetch(ctx, s.caches.Restaurants, restaurantKey(slug), cache.TTLDefault, func(ctx context.Context) (*domain.Restaurant, error) {
		return s.repo.GetRestaurantBySlug(ctx, slug)
	})
}

func (s *RestaurantService) ListByAppUser(ctx context.Context, appuserID, page, size int) (domain.PagedCollection[domain.Restaurant], error) {
	page, size = NormalisePage(page, size)
	key := fmt.Sprintf("get_by_appuser/?appuser_id=%d&page=%d&size=%d", appuserID, page, size)
	return cache.Fetch(ctx, s.caches.Restaurants, key, cache.TTLDefault, func(ctx context.Context) (domain.PagedCollection[domain.Restaurant], error) {
		restaurants, total, err := s.repo.ListByAppUser(ctx, appuserID, size, pageOffset(page, size))
		if err != nil {
			return domain.PagedCollection[domain.Restaurant]{}, err
		}
		return newPagedCollection(restaurants, total, page, size), nil
	})
}

// Search matches active restaurants open today by name, city, suburb or
// cuisine. A blank query matches nothing.
func (s *RestaurantService) Search(ctx context.Context, query string, page, size int) (domain.PagedCollection[domain.Restaurant], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return newPagedCollection[domain.Restaurant](nil, 0, 0, 0), nil
	}
	page, size = NormalisePage(page, size)
	day := domain.Weekday(s.now())

	key := fmt.Sprintf("search/?q=%s&day=%d&page=%d&size=%d", query, day, page, size)
	return cache.Fetch(ctx, s.caches.Restaurants, key, cache.TTLDefault, func(ctx context.Context) (domain.PagedCollection[domain.Restaurant], error) {
		restaurants, total, err := s.repo.SearchRestaurants(ctx, query, day, size, pageOffset(page, size))
		if err != nil {
			return domain.PagedCollection[domain.Restaurant]{}, err
		}
		return newPagedCollection(restaurants, total, page, size), nil
	})
}

// GetWithinRadius lists active restaurants open today within the configured
// radius of (lat, lng), nearest first.
func (s *RestaurantService) GetWithinRadius(ctx context.Context, lat, lng float64) ([]domain.NearbyRestaurant, error) {
	if lat < -90 || lat > 90 {
		return nil, domain.ValidationError{Field: "lat", Message: "must be between -90 and 90"}
	}
	if lng < -180 || lng > 180 {
		return nil, domain.ValidationError{Field: "lng", Message: "must be between -180 and 180"}
	}

	origin := geo.Point{Lat: lat, Lng: lng}
	day := domain.Weekday(s.now())

	key := fmt.Sprintf("get_within_radius/?lat=%.5f&lng=%.5f&day=%d", lat, lng, day)
	return cache.Fetch(ctx, s.caches.Restaurants, key, cache.TTLDefault, func(ctx context.Context) ([]domain.NearbyRestaurant, error) {
		candidates, err := s.repo.ListNearbyCandidates(ctx, geo.Box(origin, s.radiusMeters), day)
		if err != nil {
			return nil, err
		}
		return geo.WithinRadius(candidates, origin, s.radiusMeters, day), nil
	})
}

// SetPrepop rebuilds the search-box suggestion list from active restaurants.
func (s *RestaurantService) SetPrepop(ctx context.Context) ([]string, error) {
	return cache.Refresh(ctx, s.caches.Restaurants, prepopKey, cache.TTLStatic, s.loadPrepop)
}

func (s *RestaurantService) QueryPrepop(ctx context.Context, query string) ([]string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}, nil
	}

	terms, err := cache.Fetch(ctx, s.caches.Restaurants, prepopKey, cache.TTLStatic, s.loadPrepop)
	if err != nil {
		return nil, err
	}

	matches := []string{}
	for _, term := range terms {
		if strings.Contains(strings.ToLower(term), query) {
			matches = append(matches, term)
		}
	}
	return matches, nil
}

func (s *RestaurantService) loadPrepop(ctx context.Context) ([]string, error) {
	rows, err := s.repo.ListPrepopFields(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	terms := []string{}
	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" || seen[strings.ToLower(term)] {
			return
		}
		seen[strings.ToLower(term)] = true
		terms = append(terms, term)
	}
	for _, row := range rows {
		add(row.Name)
		add(row.Suburb)
		add(row.City)
		for _, cuisine := range strings.Split(row.Cuisine, ",") {
			add(cuisine)
		}
	}
	sort.Strings(terms)
	return terms, nil
}

// FormatAddress joins the address parts the way they are sent to the geocoder.
func FormatAddress(line1, line2, suburb, city string) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{line1, line2, suburb, city} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

type fieldRule struct {
	field    string
	value    string
	required bool
	max      int
}

func checkFields(rules []fieldRule) error {
	for _, rule := range rules {
		value := strings.TrimSpace(rule.value)
		if rule.required && value == "" {
			return domain.ValidationError{Field: rule.field, Message: "is required"}
		}
		if utf8.RuneCountInString(value) > rule.max {
			return domain.ValidationError{Field: rule.field, Message: fmt.Sprintf("must be at most %d characters", rule.max)}
		}
	}
	return nil
}

func validateRestaurantCreate(req domain.RestaurantCreateRequest) error {
	if err := checkFields([]fieldRule{
		{"name", req.Name, true, 50},
		{"address_line1", req.AddressLine1, true, 50},
		{"address_line2", req.AddressLine2, false, 50},
		{"suburb", req.Suburb, true, 50},
		{"city", req.City, true, 50},
		{"phone", req.Phone, true, 10},
		{"email", req.Email, false, 100},
		{"website", req.Website, false, 100},
		{"tagline", req.Tagline, false, 150},
		{"cuisine", req.Cuisine, true, 150},
	}); err != nil {
		return err
	}
	if domain.Slugify(req.Name) == "" {
		return domain.ValidationError{Field: "name", Message: "must contain letters or digits"}
	}
	if req.Capacity < 0 {
		return domain.ValidationError{Field: "capacity", Message: "must not be negative"}
	}
	return validateHours(req.Hours)
}

func validateRestaurantUpdate(req domain.RestaurantUpdateRequest) error {
	if err := checkFields([]fieldRule{
		{"name", req.Name, true, 50},
		{"address_line1", req.AddressLine1, true, 50},
		{"address_line2", req.AddressLine2, false, 50},
		{"suburb", req.Suburb, true, 50},
		{"city", req.City, true, 50},
		{"tagline", req.Tagline, false, 150},
		{"cuisine", req.Cuisine, true, 150},
	}); err != nil {
		return err
	}
	if req.Capacity < 0 {
		return domain.ValidationError{Field: "capacity", Message: "must not be negative"}
	}
	return nil
}

func validateHours(hours []domain.OperatingHours) error {
	seen := make(map[int]bool, len(hours))
	for _, h := range hours {
		if h.Day < 0 || h.Day > 6 {
			return domain.ValidationError{Field: "operating_hours.day", Message: "must be between 0 (Monday) and 6 (Sunday)"}
		}
		if seen[h.Day] {
			return domain.ValidationError{Field: "operating_hours.day", Message: fmt.Sprintf("day %d listed more than once", h.Day)}
		}
		seen[h.Day] = true

		if _, err := time.Parse("15:04", h.Opens); err != nil {
			return domain.ValidationError{Field: "operating_hours.opens", Message: "must be HH:MM"}
		}
		if _, err := time.Parse("15:04", h.Closes); err != nil {
			return domain.ValidationError{Field: "operating_hours.closes", Message: "must be HH:MM"}
		}
	}
	return nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
