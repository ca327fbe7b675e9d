package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

func likePattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(query))
	return "%" + escaped + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS appusers (
		id SERIAL PRIMARY KEY,
		cellphone VARCHAR(10) NOT NULL UNIQUE,
		nickname VARCHAR(20),
		created_on TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		appuser_id INT NOT NULL REFERENCES appusers(id) ON DELETE CASCADE,
		name VARCHAR(50) NOT NULL,
		slug VARCHAR(100) NOT NULL,
		address_line1 VARCHAR(50) NOT NULL,
		address_line2 VARCHAR(50) NOT NULL DEFAULT '',
		suburb VARCHAR(50) NOT NULL,
		city VARCHAR(50) NOT NULL,
		phone VARCHAR(10) NOT NULL,
		email VARCHAR(100),
		website VARCHAR(100),
		tagline VARCHAR(150) NOT NULL DEFAULT '',
		cuisine VARCHAR(150) NOT NULL,
		capacity INT NOT NULL DEFAULT 0,
		banner_url VARCHAR(200) NOT NULL,
		latitude NUMERIC(20, 16) NOT NULL,
		longitude NUMERIC(20, 16) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT FALSE,
		created_on TIMESTAMP NOT NULL DEFAULT NOW(),
		last_updated TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT restaurants_slug_key UNIQUE (slug),
		CONSTRAINT restaurants_name_appuser_key UNIQUE (name, appuser_id)
	)`,
	`CREATE INDEX IF NOT EXISTS restaurants_lat_lng_idx ON restaurants (latitude, longitude)`,
	`CREATE TABLE IF NOT EXISTS restaurants_operating_hours (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		day SMALLINT NOT NULL CHECK (day BETWEEN 0 AND 6),
		opens TIME NOT NULL,
		closes TIME NOT NULL,
		UNIQUE (restaurant_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants_menu_items_categories (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name VARCHAR(50) NOT NULL,
		slug VARCHAR(100) NOT NULL DEFAULT '',
		created_on TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT menu_categories_restaurant_name_key UNIQUE (restaurant_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants_menu_items (
		id SERIAL PRIMARY KEY,
		category_id INT NOT NULL REFERENCES restaurants_menu_items_categories(id) ON DELETE CASCADE,
		name VARCHAR(50) NOT NULL,
		slug VARCHAR(100) NOT NULL DEFAULT '',
		price NUMERIC(6, 2) NOT NULL CHECK (price >= 0),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_on TIMESTAMP NOT NULL DEFAULT NOW(),
		last_updated TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS option_categories (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		heading VARCHAR(50) NOT NULL,
		mandatory BOOLEAN NOT NULL DEFAULT FALSE,
		multiple_choice BOOLEAN NOT NULL DEFAULT FALSE,
		num_choose INT NOT NULL DEFAULT 1,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		CONSTRAINT option_categories_restaurant_heading_key UNIQUE (restaurant_id, heading)
	)`,
	`CREATE TABLE IF NOT EXISTS options (
		id SERIAL PRIMARY KEY,
		category_id INT NOT NULL REFERENCES option_categories(id) ON DELETE CASCADE,
		name VARCHAR(50) NOT NULL,
		price NUMERIC(10, 2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_menuitem_options (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		menu_item_id INT NOT NULL REFERENCES restaurants_menu_items(id) ON DELETE CASCADE,
		option_category_id INT NOT NULL REFERENCES option_categories(id) ON DELETE CASCADE,
		UNIQUE (menu_item_id, option_category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		appuser_id INT NOT NULL REFERENCES appusers(id) ON DELETE CASCADE,
		status VARCHAR(12) NOT NULL DEFAULT 'Submitted' CHECK (status IN ('Submitted', 'Accepted', 'Cancelled')),
		total NUMERIC(10, 2) NOT NULL DEFAULT 0,
		note VARCHAR(200) NOT NULL DEFAULT '',
		created_on TIMESTAMP NOT NULL DEFAULT NOW(),
		last_updated TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_restaurant_status_idx ON orders (restaurant_id, status, created_on)`,
	`CREATE TABLE IF NOT EXISTS order_line_items (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id INT NOT NULL REFERENCES restaurants_menu_items(id),
		unit_price NUMERIC(6, 2) NOT NULL,
		quantity INT NOT NULL CHECK (quantity > 0),
		sub_total NUMERIC(10, 2) NOT NULL,
		created_on TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

func (r *PostgresRepository) EnsureSchema() error {
	for _, stmt := range schema {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return strings.TrimSpace(stmt[:i])
	}
	return stmt
}
