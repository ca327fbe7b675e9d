package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MARKETPLACE_PORT", "")
	t.Setenv("SEARCH_RADIUS_METERS", "")
	t.Setenv("NOTIFICATIONS_TOPIC", "")

	s := Load()

	assert.Equal(t, "8080", s.MarketplacePort)
	assert.Equal(t, 25000.0, s.SearchRadiusMeters)
	assert.Equal(t, NotificationsTopic, s.NotificationsTopic)
}

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name   string
		radius string
		want   float64
	}{
		{name: "valid radius", radius: "5000", want: 5000},
		{name: "not a number", radius: "far", want: 25000},
		{name: "negative", radius: "-1", want: 25000},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "production")
			t.Setenv("SEARCH_RADIUS_METERS", testCase.radius)

			assert.Equal(t, testCase.want, Load().SearchRadiusMeters)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	s := Settings{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "secret", DBName: "foodmarket", DBSSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=foodmarket sslmode=disable", s.PostgresDSN())
}

func TestRequire(t *testing.T) {
	s := Settings{JWTSecret: "k"}

	assert.NoError(t, s.Require("JWT_SECRET"))
	assert.EqualError(t, s.Require("JWT_SECRET", "S3_BUCKET"), "missing env var: S3_BUCKET")
}
