package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusSubmitted OrderStatus = "Submitted"
	StatusAccepted  OrderStatus = "Accepted"
	StatusCancelled OrderStatus = "Cancelled"
)

type Restaurant struct {
	ID           int              `json:"id"`
	AppUserID    int              `json:"appuser_id"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	AddressLine1 string           `json:"address_line1"`
	AddressLine2 string           `json:"address_line2"`
	Suburb       string           `json:"suburb"`
	City         string           `json:"city"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email,omitempty"`
	Website      string           `json:"website,omitempty"`
	Tagline      string           `json:"tagline,omitempty"`
	Cuisine      string           `json:"cuisine"`
	Capacity     int              `json:"capacity"`
	BannerURL    string           `json:"banner_url"`
	Latitude     decimal.Decimal  `json:"latitude"`
	Longitude    decimal.Decimal  `json:"longitude"`
	Active       bool             `json:"active"`
	Hours        []OperatingHours `json:"operating_hours,omitempty"`
	CreatedOn    time.Time        `json:"created_on"`
	LastUpdated  time.Time        `json:"last_updated"`
}

// OperatingHours uses Monday=0 through Sunday=6.
type OperatingHours struct {
	Day    int    `json:"day"`
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

type NearbyRestaurant struct {
	Restaurant
	DistanceKm float64 `json:"distance"`
	Closes     string  `json:"closes"`
}

type MenuCategory struct {
	ID           int        `json:"id"`
	RestaurantID int        `json:"restaurant_id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Items        []MenuItem `json:"menu_items"`
	CreatedOn    time.Time  `json:"created_on"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	CategoryID   int             `json:"category_id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Price        decimal.Decimal `json:"price"`
	Active       bool            `json:"active"`
	CreatedOn    time.Time       `json:"created_on"`
}

type OptionCategory struct {
	ID             int      `json:"id"`
	RestaurantID   int      `json:"restaurant_id"`
	Heading        string   `json:"heading"`
	Mandatory      bool     `json:"mandatory"`
	MultipleChoice bool     `json:"multiple_choice"`
	NumChoose      int      `json:"num_choose"`
	Active         bool     `json:"active"`
	Options        []Option `json:"options"`
}

type Option struct {
	ID         int             `json:"id"`
	CategoryID int             `json:"category_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
}

type Order struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	AppUserID    int             `json:"appuser_id"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	Note         string          `json:"note"`
	LineItems    []OrderLineItem `json:"line_items"`
	CreatedOn    time.Time       `json:"created_on"`
	LastUpdated  time.Time       `json:"last_updated"`
}

type OrderLineItem struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	MenuItemID   int             `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	SubTotal     decimal.Decimal `json:"sub_total"`
	CreatedOn    time.Time       `json:"created_on"`
}

// PagedCollection is the page envelope returned by listing and search endpoints.
type PagedCollection[T any] struct {
	TotalPages int  `json:"total_pages"`
	PageNumber int  `json:"page_number"`
	PageSize   int  `json:"page_size"`
	TotalCount int  `json:"total_count"`
	NextPage   *int `json:"next_page"`
	Data       []T  `json:"data"`
}

type Coordinates struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

// MenuItemRef names a menu item by the slugs used in public URLs.
type MenuItemRef struct {
	RestaurantSlug string
	ItemSlug       string
}

const NotificationSMS = "sms"

// Notification is the message published for the notifier to deliver.
type Notification struct {
	Type        string    `json:"type"`
	Destination string    `json:"destination"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}
