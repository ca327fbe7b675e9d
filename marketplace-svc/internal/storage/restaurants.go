package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodmarket/marketplace-svc/internal/domain"
	"foodmarket/marketplace-svc/internal/geo"
)

const maxSlugAttempts = 20

const restaurantColumns = `r.id, r.appuser_id, r.name, r.slug, r.address_line1, r.address_line2,
	r.suburb, r.city, r.phone, COALESCE(r.email, ''), COALESCE(r.website, ''), r.tagline,
	r.cuisine, r.capacity, r.banner_url, r.latitude, r.longitude, r.active,
	r.created_on, r.last_updated`

func scanRestaurant(row rowScanner, extra ...any) (domain.Restaurant, error) {
	var rest domain.Restaurant
	dest := []any{
		&rest.ID, &rest.AppUserID, &rest.Name, &rest.Slug, &rest.AddressLine1, &rest.AddressLine2,
		&rest.Suburb, &rest.City, &rest.Phone, &rest.Email, &rest.Website, &rest.Tagline,
		&rest.Cuisine, &rest.Capacity, &rest.BannerURL, &rest.Latitude, &rest.Longitude, &rest.Active,
		&rest.CreatedOn, &rest.LastUpdated,
	}
	err := row.Scan(append(dest, extra...)...)
	return rest, err
}

// CreateRestaurant inserts the restaurant and its operating hours in one
// transaction. rest.Slug is the base slug; on collision it becomes base-2,
// base-3 and so on.
func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	base := rest.Slug
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		rest.Slug = domain.NthSlug(base, attempt)
		err := r.insertRestaurant(ctx, rest)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err, "restaurants_slug_key") {
			return err
		}
	}
	return domain.ValidationError{Field: "name", Message: "could not derive a unique slug"}
}

func (r *PostgresRepository) insertRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO restaurants (appuser_id, name, slug, address_line1, address_line2, suburb, city,
			phone, email, website, tagline, cuisine, capacity, banner_url, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13, $14, $15, $16)
		RETURNING id, active, created_on, last_updated`,
		rest.AppUserID, rest.Name, rest.Slug, rest.AddressLine1, rest.AddressLine2, rest.Suburb, rest.City,
		rest.Phone, rest.Email, rest.Website, rest.Tagline, rest.Cuisine, rest.Capacity, rest.BannerURL,
		rest.Latitude, rest.Longitude,
	).Scan(&rest.ID, &rest.Active, &rest.CreatedOn, &rest.LastUpdated)
	if err != nil {
		if isUniqueViolation(err, "restaurants_name_appuser_key") {
			return domain.ValidationError{Field: "name", Message: "you already have a restaurant with this name"}
		}
		return err
	}

	for _, h := range rest.Hours {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO restaurants_operating_hours (restaurant_id, day, opens, closes)
			VALUES ($1, $2, $3, $4)`, rest.ID, h.Day, h.Opens, h.Closes); err != nil {
			return fmt.Errorf("insert operating hours for day %d: %w", h.Day, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants r WHERE r.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("restaurant", id)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants r WHERE r.slug = $1 AND r.active = TRUE`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("restaurant", slug)
	}
	if err != nil {
		return nil, err
	}

	hours, err := r.listOperatingHours(ctx, rest.ID)
	if err != nil {
		return nil, err
	}
	rest.Hours = hours
	return &rest, nil
}

func (r *PostgresRepository) listOperatingHours(ctx context.Context, restaurantID int) ([]domain.OperatingHours, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT day, to_char(opens, 'HH24:MI'), to_char(closes, 'HH24:MI')
		FROM restaurants_operating_hours
		WHERE restaurant_id = $1
		ORDER BY day`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []domain.OperatingHours
	for rows.Next() {
		var h domain.OperatingHours
		if err := rows.Scan(&h.Day, &h.Opens, &h.Closes); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

// UpdateRestaurant never touches the slug.
func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	updated, err := scanRestaurant(r.DB.QueryRowContext(ctx, `
		UPDATE restaurants r
		SET name = $1, address_line1 = $2, address_line2 = $3, suburb = $4, city = $5,
			tagline = $6, cuisine = $7, capacity = $8, last_updated = NOW()
		WHERE r.id = $9
		RETURNING `+restaurantColumns,
		rest.Name, rest.AddressLine1, rest.AddressLine2, rest.Suburb, rest.City,
		rest.Tagline, rest.Cuisine, rest.Capacity, rest.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("restaurant", rest.ID)
	}
	if err != nil {
		return err
	}
	*rest = updated
	return nil
}

func (r *PostgresRepository) ListByAppUser(ctx context.Context, appuserID, limit, offset int) ([]domain.Restaurant, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM restaurants WHERE appuser_id = $1`, appuserID).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants r
		WHERE r.appuser_id = $1
		ORDER BY r.id DESC
		LIMIT $2 OFFSET $3`, appuserID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants, err := collectRestaurants(rows)
	return restaurants, total, err
}

// SearchRestaurants matches query against name, city, suburb or cuisine of
// active restaurants that have operating hours on day.
func (r *PostgresRepository) SearchRestaurants(ctx context.Context, query string, day, limit, offset int) ([]domain.Restaurant, int, error) {
	const filter = `
		FROM restaurants r
		WHERE r.active = TRUE
		  AND (r.name ILIKE $1 OR r.city ILIKE $1 OR r.suburb ILIKE $1 OR r.cuisine ILIKE $1)
		  AND EXISTS (
			SELECT 1 FROM restaurants_operating_hours h
			WHERE h.restaurant_id = r.id AND h.day = $2
		  )`

	pattern := likePattern(query)

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*)`+filter, pattern, day).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT `+restaurantColumns+filter+`
		ORDER BY r.name, r.id
		LIMIT $3 OFFSET $4`, pattern, day, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants, err := collectRestaurants(rows)
	return restaurants, total, err
}

// ListNearbyCandidates returns active restaurants inside box with their
// operating hours row for day. Exact distance filtering happens in geo.
func (r *PostgresRepository) ListNearbyCandidates(ctx context.Context, box geo.BoundingBox, day int) ([]domain.Restaurant, error) {
	west, east := box.LngRanges()
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+restaurantColumns+`, h.day, to_char(h.opens, 'HH24:MI'), to_char(h.closes, 'HH24:MI')
		FROM restaurants r
		INNER JOIN restaurants_operating_hours h ON h.restaurant_id = r.id
		WHERE r.active = TRUE
		  AND h.day = $1
		  AND r.latitude BETWEEN $2 AND $3
		  AND (r.longitude BETWEEN $4 AND $5 OR r.longitude BETWEEN $6 AND $7)`,
		day, box.MinLat, box.MaxLat, west.Min, west.Max, east.Min, east.Max)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var h domain.OperatingHours
		rest, err := scanRestaurant(rows, &h.Day, &h.Opens, &h.Closes)
		if err != nil {
			return nil, err
		}
		rest.Hours = []domain.OperatingHours{h}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) ListPrepopFields(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT DISTINCT name, suburb, city, cuisine
		FROM restaurants
		WHERE active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.Name, &rest.Suburb, &rest.City, &rest.Cuisine); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func collectRestaurants(rows *sql.Rows) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}
