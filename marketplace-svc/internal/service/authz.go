package service

import (
	"context"
	"fmt"

	"foodmarket/marketplace-svc/internal/cache"
)

// Caches groups the per-domain cache namespaces. A nil namespace disables
// caching for that domain.
type Caches struct {
	Menu             *cache.Namespace
	Restaurants      *cache.Namespace
	Categories       *cache.Namespace
	OptionCategories *cache.Namespace
	Orders           *cache.Namespace
}

func NewCaches(store cache.Store) Caches {
	return Caches{
		Menu:             cache.NewNamespace(store, "menu_"),
		Restaurants:      cache.NewNamespace(store, "restaurants_"),
		Categories:       cache.NewNamespace(store, "categories_"),
		OptionCategories: cache.NewNamespace(store, "option_categories_"),
		Orders:           cache.NewNamespace(store, "orders_"),
	}
}

func adminKey(appuserID, resourceID int) string {
	return fmt.Sprintf("is_appuser_admin?appuser_id=%d&id=%d", appuserID, resourceID)
}

func orderOwnerKey(appuserID, orderID int) string {
	return fmt.Sprintf("is_order_owner?appuser_id=%d&order_id=%d", appuserID, orderID)
}

func orderMerchantKey(appuserID, orderID int) string {
	return fmt.Sprintf("is_order_merchant?appuser_id=%d&order_id=%d", appuserID, orderID)
}

// Authorizer answers ownership questions for handlers. Answers are cached per
// (principal, resource) for the default TTL.
type Authorizer struct {
	repo   OwnershipRepository
	caches Caches
}

func NewAuthorizer(repo OwnershipRepository, caches Caches) *Authorizer {
	return &Authorizer{repo: repo, caches: caches}
}

func (a *Authorizer) check(ctx context.Context, ns *cache.Namespace, key string, load func(context.Context) (bool, error)) (bool, error) {
	return cache.Fetch(ctx, ns, key, cache.TTLDefault, load)
}

func (a *Authorizer) IsRestaurantAdmin(ctx context.Context, appuserID, restaurantID int) (bool, error) {
	return a.check(ctx, a.caches.Restaurants, adminKey(appuserID, restaurantID), func(ctx context.Context) (bool, error) {
		return a.repo.IsRestaurantAdmin(ctx, appuserID, restaurantID)
	})
}

func (a *Authorizer) IsCategoryAdmin(ctx context.Context, appuserID, categoryID int) (bool, error) {
	return a.check(ctx, a.caches.Categories, adminKey(appuserID, categoryID), func(ctx context.Context) (bool, error) {
		return a.repo.IsCategoryAdmin(ctx, appuserID, categoryID)
	})
}

func (a *Authorizer) IsMenuItemAdmin(ctx context.Context, appuserID, menuItemID int) (bool, error) {
	return a.check(ctx, a.caches.Menu, adminKey(appuserID, menuItemID), func(ctx context.Context) (bool, error) {
		return a.repo.IsMenuItemAdmin(ctx, appuserID, menuItemID)
	})
}

func (a *Authorizer) IsOptionCategoryAdmin(ctx context.Context, appuserID, optionCategoryID int) (bool, error) {
	return a.check(ctx, a.caches.OptionCategories, adminKey(appuserID, optionCategoryID), func(ctx context.Context) (bool, error) {
		return a.repo.IsOptionCategoryAdmin(ctx, appuserID, optionCategoryID)
	})
}

func (a *Authorizer) IsOrderOwner(ctx context.Context, appuserID, orderID int) (bool, error) {
	return a.check(ctx, a.caches.Orders, orderOwnerKey(appuserID, orderID), func(ctx context.Context) (bool, error) {
		return a.repo.IsOrderOwner(ctx, appuserID, orderID)
	})
}

func (a *Authorizer) IsOrderMerchant(ctx context.Context, appuserID, orderID int) (bool, error) {
	return a.check(ctx, a.caches.Orders, orderMerchantKey(appuserID, orderID), func(ctx context.Context) (bool, error) {
		return a.repo.IsOrderMerchant(ctx, appuserID, orderID)
	})
}

var _ AuthorizerInterface = (*Authorizer)(nil)
