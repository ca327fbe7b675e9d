package service

import (
	"context"
	"io"
	"time"

	"foodmarket/marketplace-svc/internal/domain"
	"foodmarket/marketplace-svc/internal/geo"
	"foodmarket/marketplace-svc/internal/storage"

	"github.com/shopspring/decimal"
)

type RestaurantGetter interface {
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
}

type RestaurantRepository interface {
	RestaurantGetter
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListByAppUser(ctx context.Context, appuserID, limit, offset int) ([]domain.Restaurant, int, error)
	SearchRestaurants(ctx context.Context, query string, day, limit, offset int) ([]domain.Restaurant, int, error)
	ListNearbyCandidates(ctx context.Context, box geo.BoundingBox, day int) ([]domain.Restaurant, error)
	ListPrepopFields(ctx context.Context) ([]domain.Restaurant, error)
}

type MenuRepository interface {
	GetMenu(ctx context.Context, restaurantSlug string) ([]domain.MenuCategory, error)
	ListActiveMenuItems(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	ListOptions(ctx context.Context, restaurantSlug, menuItemSlug string) ([]domain.OptionCategory, error)
	ListOptionCategoriesByRestaurant(ctx context.Context, restaurantID int) ([]domain.OptionCategory, error)
	CreateCategory(ctx context.Context, category *domain.MenuCategory) error
	GetCategory(ctx context.Context, id int) (*domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, category *domain.MenuCategory) error
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	CreateOptionCategory(ctx context.Context, category *domain.OptionCategory) error
	GetOptionCategory(ctx context.Context, id int) (*domain.OptionCategory, error)
	UpdateOptionCategory(ctx context.Context, category *domain.OptionCategory) error
	CreateOption(ctx context.Context, option *domain.Option) error
	AttachOptionCategory(ctx context.Context, restaurantID, menuItemID, optionCategoryID int) error
	ListOptionCategoryItems(ctx context.Context, optionCategoryID int) ([]domain.MenuItemRef, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	ReplaceOrderItems(ctx context.Context, order *domain.Order, expected domain.OrderStatus) (domain.OrderStatus, error)
	TransitionStatus(ctx context.Context, orderID int, from, to domain.OrderStatus) (domain.OrderStatus, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListAppUserOrders(ctx context.Context, appuserID int) ([]domain.Order, error)
	ListPendingOrders(ctx context.Context, restaurantID int, since time.Time) ([]domain.Order, error)
	GetAppUserCellphone(ctx context.Context, appuserID int) (string, error)
}

type OwnershipRepository interface {
	IsRestaurantAdmin(ctx context.Context, appuserID, restaurantID int) (bool, error)
	IsCategoryAdmin(ctx context.Context, appuserID, categoryID int) (bool, error)
	IsMenuItemAdmin(ctx context.Context, appuserID, menuItemID int) (bool, error)
	IsOptionCategoryAdmin(ctx context.Context, appuserID, optionCategoryID int) (bool, error)
	IsOrderOwner(ctx context.Context, appuserID, orderID int) (bool, error)
	IsOrderMerchant(ctx context.Context, appuserID, orderID int) (bool, error)
}

type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

type Notifier interface {
	Notify(ctx context.Context, destination, message string) error
}

// MenuItemSource is the catalog view used to validate and price orders.
type MenuItemSource interface {
	GetMenuItemsByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type PricerInterface interface {
	Validate(ctx context.Context, restaurantID int, lineItems []domain.LineItemRequest) (bool, error)
	Price(ctx context.Context, restaurantID int, lineItems []domain.LineItemRequest) ([]domain.OrderLineItem, decimal.Decimal, error)
}

type MenuServiceInterface interface {
	MenuItemSource
	GetMenu(ctx context.Context, restaurantSlug string) ([]domain.MenuCategory, error)
	GetOptions(ctx context.Context, restaurantSlug, menuItemSlug string) ([]domain.OptionCategory, error)
	GetOptionCategoriesByRestaurant(ctx context.Context, restaurantID int) ([]domain.OptionCategory, error)
	CreateCategory(ctx context.Context, req domain.CategoryCreateRequest) (*domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, id int, req domain.CategoryUpdateRequest) (*domain.MenuCategory, error)
	CreateMenuItem(ctx context.Context, req domain.MenuItemCreateRequest) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, req domain.MenuItemUpdateRequest) (*domain.MenuItem, error)
	CreateOptionCategory(ctx context.Context, req domain.OptionCategoryCreateRequest) (*domain.OptionCategory, error)
	UpdateOptionCategory(ctx context.Context, id int, req domain.OptionCategoryUpdateRequest) (*domain.OptionCategory, error)
	AddOption(ctx context.Context, req domain.OptionCreateRequest) (*domain.Option, error)
	AttachOptionCategory(ctx context.Context, menuItemID, optionCategoryID int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, appuserID int, req domain.OrderCreateRequest) (*domain.Order, error)
	Update(ctx context.Context, orderID int, req domain.OrderUpdateRequest) (*domain.Order, error)
	Cancel(ctx context.Context, orderID int) error
	Accept(ctx context.Context, orderID int) error
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	ListByAppUser(ctx context.Context, appuserID int) ([]domain.Order, error)
	TodaysPendingOrders(ctx context.Context, restaurantID int) ([]domain.Order, error)
	QRCode(ctx context.Context, orderID int) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, appuserID int, req domain.RestaurantCreateRequest, banner Upload) (*domain.Restaurant, error)
	Update(ctx context.Context, id int, req domain.RestaurantUpdateRequest) (*domain.Restaurant, error)
	Get(ctx context.Context, slug string) (*domain.Restaurant, error)
	ListByAppUser(ctx context.Context, appuserID, page, size int) (domain.PagedCollection[domain.Restaurant], error)
	Search(ctx context.Context, query string, page, size int) (domain.PagedCollection[domain.Restaurant], error)
	GetWithinRadius(ctx context.Context, lat, lng float64) ([]domain.NearbyRestaurant, error)
	SetPrepop(ctx context.Context) ([]string, error)
	QueryPrepop(ctx context.Context, query string) ([]string, error)
}

type AuthorizerInterface interface {
	OwnershipRepository
}

var (
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ MenuRepository       = (*storage.PostgresRepository)(nil)
	_ OrderRepository      = (*storage.PostgresRepository)(nil)
	_ OwnershipRepository  = (*storage.PostgresRepository)(nil)
	_ ObjectStore          = (*storage.S3Store)(nil)
	_ Geocoder             = (*storage.GoogleGeocoder)(nil)
	_ Notifier             = (*storage.KafkaNotifier)(nil)
)
