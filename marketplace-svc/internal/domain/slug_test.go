package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Mama's Kitchen", want: "mama-s-kitchen"},
		{name: "collapses separators", in: "  Pizza  &  Pasta!! ", want: "pizza-pasta"},
		{name: "digits kept", in: "Route 66 Diner", want: "route-66-diner"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Slugify(testCase.in))
		})
	}
}

func TestNthSlug(t *testing.T) {
	assert.Equal(t, "burger-bar", NthSlug("burger-bar", 1))
	assert.Equal(t, "burger-bar-2", NthSlug("burger-bar", 2))
	assert.Equal(t, "burger-bar-7", NthSlug("burger-bar", 7))
}

func TestWeekday(t *testing.T) {
	monday := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Weekday(monday))
	assert.Equal(t, 1, Weekday(monday.AddDate(0, 0, 1)))
	assert.Equal(t, 6, Weekday(monday.AddDate(0, 0, 6)))
}
