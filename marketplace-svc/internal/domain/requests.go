package domain

import "github.com/shopspring/decimal"

type LineItemRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type OrderCreateRequest struct {
	RestaurantID int               `json:"restaurant_id"`
	Note         string            `json:"note"`
	LineItems    []LineItemRequest `json:"line_items"`
}

type OrderUpdateRequest struct {
	Note      string            `json:"note"`
	LineItems []LineItemRequest `json:"line_items"`
}

type RestaurantCreateRequest struct {
	Name         string           `json:"name"`
	AddressLine1 string           `json:"address_line1"`
	AddressLine2 string           `json:"address_line2"`
	Suburb       string           `json:"suburb"`
	City         string           `json:"city"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	Website      string           `json:"website"`
	Tagline      string           `json:"tagline"`
	Cuisine      string           `json:"cuisine"`
	Capacity     int              `json:"capacity"`
	Hours        []OperatingHours `json:"operating_hours"`
}

type RestaurantUpdateRequest struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	Suburb       string `json:"suburb"`
	City         string `json:"city"`
	Tagline      string `json:"tagline"`
	Cuisine      string `json:"cuisine"`
	Capacity     int    `json:"capacity"`
}

type CategoryCreateRequest struct {
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
}

type CategoryUpdateRequest struct {
	Name string `json:"name"`
}

type MenuItemCreateRequest struct {
	CategoryID int             `json:"category_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
}

type MenuItemUpdateRequest struct {
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Active bool            `json:"active"`
}

type OptionCategoryCreateRequest struct {
	RestaurantID   int    `json:"restaurant_id"`
	Heading        string `json:"heading"`
	Mandatory      bool   `json:"mandatory"`
	MultipleChoice bool   `json:"multiple_choice"`
	NumChoose      int    `json:"num_choose"`
}

type OptionCategoryUpdateRequest struct {
	Heading string `json:"heading"`
	Active  bool   `json:"active"`
}

type OptionCreateRequest struct {
	CategoryID int             `json:"category_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
}
