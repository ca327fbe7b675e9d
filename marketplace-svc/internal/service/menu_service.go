package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"foodmarket/marketplace-svc/internal/cache"
	"foodmarket/marketplace-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const maxNameLength = 50

var maxMenuPrice = decimal.NewFromInt(10000)

func menuKey(restaurantSlug string) string {
	return "get_menu/?name=" + restaurantSlug
}

func menuItemsKey(restaurantID int) string {
	return fmt.Sprintf("get_menu_items_by_restaurant?restaurant_id=%d", restaurantID)
}

func optionsKey(restaurantSlug, menuItemSlug string) string {
	return fmt.Sprintf("get_options/?restaurant=%s&menu_item=%s", restaurantSlug, menuItemSlug)
}

func optionCategoriesKey(restaurantID int) string {
	return fmt.Sprintf("get_by_restaurant/?restaurant=%d", restaurantID)
}

// MenuService owns the catalog read paths and keeps their cache entries in
// step with every catalog write.
type MenuService struct {
	repo        MenuRepository
	restaurants RestaurantGetter
	caches      Caches
}

func NewMenuService(repo MenuRepository, restaurants RestaurantGetter, caches Caches) *MenuService {
	return &MenuService{repo: repo, restaurants: restaurants, caches: caches}
}

func (s *MenuService) GetMenu(ctx context.Context, restaurantSlug string) ([]domain.MenuCategory, error) {
	return cache.Fetch(ctx, s.caches.Menu, menuKey(restaurantSlug), cache.TTLAggregate, func(ctx context.Context) ([]domain.MenuCategory, error) {
		return s.repo.GetMenu(ctx, restaurantSlug)
	})
}

// GetMenuItemsByRestaurant returns the orderable (active) items only.
func (s *MenuService) GetMenuItemsByRestaurant(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	return cache.Fetch(ctx, s.caches.Menu, menuItemsKey(restaurantID), cache.TTLDefault, func(ctx context.Context) ([]domain.MenuItem, error) {
		return s.repo.ListActiveMenuItems(ctx, restaurantID)
	})
}

func (s *MenuService) GetOptions(ctx context.Context, restaurantSlug, menuItemSlug string) ([]domain.OptionCategory, error) {
	return cache.Fetch(ctx, s.caches.Menu, optionsKey(restaurantSlug, menuItemSlug), cache.TTLDefault, func(ctx context.Context) ([]domain.OptionCategory, error) {
		return s.repo.ListOptions(ctx, restaurantSlug, menuItemSlug)
	})
}

func (s *MenuService) GetOptionCategoriesByRestaurant(ctx context.Context, restaurantID int) ([]domain.OptionCategory, error) {
	return cache.Fetch(ctx, s.caches.OptionCategories, optionCategoriesKey(restaurantID), cache.TTLDefault, func(ctx context.Context) ([]domain.OptionCategory, error) {
		return s.repo.ListOptionCategoriesByRestaurant(ctx, restaurantID)
	})
}

func (s *MenuService) CreateCategory(ctx context.Context, req domain.CategoryCreateRequest) (*domain.MenuCategory, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	rest, err := s.restaurants.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	category := &domain.MenuCategory{
		RestaurantID: rest.ID,
		Name:         name,
		Slug:         domain.Slugify(name),
		Items:        []domain.MenuItem{},
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.refreshMenu(ctx, rest)
	return category, nil
}

func (s *MenuService) UpdateCategory(ctx context.Context, id int, req domain.CategoryUpdateRequest) (*domain.MenuCategory, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.refreshRestaurantMenu(ctx, category.RestaurantID)
	return category, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, req domain.MenuItemCreateRequest) (*domain.MenuItem, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice("price", req.Price); err != nil {
		return nil, err
	}
	category, err := s.repo.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		CategoryID:   category.ID,
		RestaurantID: category.RestaurantID,
		Name:         name,
		Slug:         domain.Slugify(name),
		Price:        req.Price.Round(2),
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	s.refreshRestaurantMenu(ctx, item.RestaurantID)
	return item, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, id int, req domain.MenuItemUpdateRequest) (*domain.MenuItem, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice("price", req.Price); err != nil {
		return nil, err
	}
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.Price = req.Price.Round(2)
	item.Active = req.Active
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	s.refreshRestaurantMenu(ctx, item.RestaurantID)
	return item, nil
}

func (s *MenuService) CreateOptionCategory(ctx context.Context, req domain.OptionCategoryCreateRequest) (*domain.OptionCategory, error) {
	heading, err := requireName("heading", req.Heading)
	if err != nil {
		return nil, err
	}
	numChoose := 1
	if req.MultipleChoice {
		if req.NumChoose < 1 {
			return nil, domain.ValidationError{Field: "num_choose", Message: "must be at least 1 for multiple choice"}
		}
		numChoose = req.NumChoose
	}
	rest, err := s.restaurants.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	category := &domain.OptionCategory{
		RestaurantID:   rest.ID,
		Heading:        heading,
		Mandatory:      req.Mandatory,
		MultipleChoice: req.MultipleChoice,
		NumChoose:      numChoose,
		Options:        []domain.Option{},
	}
	if err := s.repo.CreateOptionCategory(ctx, category); err != nil {
		return nil, err
	}

	s.refreshOptionCategories(ctx, rest.ID)
	return category, nil
}

func (s *MenuService) UpdateOptionCategory(ctx context.Context, id int, req domain.OptionCategoryUpdateRequest) (*domain.OptionCategory, error) {
	heading, err := requireName("heading", req.Heading)
	if err != nil {
		return nil, err
	}
	category, err := s.repo.GetOptionCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Heading = heading
	category.Active = req.Active
	if err := s.repo.UpdateOptionCategory(ctx, category); err != nil {
		return nil, err
	}

	s.refreshOptionCategories(ctx, category.RestaurantID)
	s.dropOptions(ctx, category.ID)
	return category, nil
}

func (s *MenuService) AddOption(ctx context.Context, req domain.OptionCreateRequest) (*domain.Option, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice("price", req.Price); err != nil {
		return nil, err
	}
	category, err := s.repo.GetOptionCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	option := &domain.Option{CategoryID: category.ID, Name: name, Price: req.Price.Round(2)}
	if err := s.repo.CreateOption(ctx, option); err != nil {
		return nil, err
	}

	s.refreshOptionCategories(ctx, category.RestaurantID)
	s.dropOptions(ctx, category.ID)
	return option, nil
}

// AttachOptionCategory offers an option category on a menu item. Both must
// belong to the same restaurant.
func (s *MenuService) AttachOptionCategory(ctx context.Context, menuItemID, optionCategoryID int) error {
	item, err := s.repo.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return err
	}
	category, err := s.repo.GetOptionCategory(ctx, optionCategoryID)
	if err != nil {
		return err
	}
	if item.RestaurantID != category.RestaurantID {
		return domain.ValidationError{Field: "option_category_id", Message: "option category belongs to another restaurant"}
	}
	rest, err := s.restaurants.GetRestaurant(ctx, item.RestaurantID)
	if err != nil {
		return err
	}

	if err := s.repo.AttachOptionCategory(ctx, rest.ID, item.ID, category.ID); err != nil {
		return err
	}

	s.caches.Menu.Delete(ctx, optionsKey(rest.Slug, item.Slug))
	return nil
}

func (s *MenuService) refreshRestaurantMenu(ctx context.Context, restaurantID int) {
	rest, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		log.Printf("[MENU] refresh restaurant %d: %v", restaurantID, err)
		s.caches.Menu.Delete(ctx, menuItemsKey(restaurantID))
		return
	}
	s.refreshMenu(ctx, rest)
}

// refreshMenu rewrites both menu read paths of the restaurant. If the reload
// fails the keys are dropped so the next read goes to the database.
func (s *MenuService) refreshMenu(ctx context.Context, rest *domain.Restaurant) {
	if _, err := cache.Refresh(ctx, s.caches.Menu, menuKey(rest.Slug), cache.TTLAggregate, func(ctx context.Context) ([]domain.MenuCategory, error) {
		return s.repo.GetMenu(ctx, rest.Slug)
	}); err != nil {
		log.Printf("[MENU] refresh menu %s: %v", rest.Slug, err)
		s.caches.Menu.Delete(ctx, menuKey(rest.Slug))
	}

	if _, err := cache.Refresh(ctx, s.caches.Menu, menuItemsKey(rest.ID), cache.TTLDefault, func(ctx context.Context) ([]domain.MenuItem, error) {
		return s.repo.ListActiveMenuItems(ctx, rest.ID)
	}); err != nil {
		log.Printf("[MENU] refresh menu items %d: %v", rest.ID, err)
		s.caches.Menu.Delete(ctx, menuItemsKey(rest.ID))
	}
}

func (s *MenuService) refreshOptionCategories(ctx context.Context, restaurantID int) {
	if _, err := cache.Refresh(ctx, s.caches.OptionCategories, optionCategoriesKey(restaurantID), cache.TTLDefault, func(ctx context.Context) ([]domain.OptionCategory, error) {
		return s.repo.ListOptionCategoriesByRestaurant(ctx, restaurantID)
	}); err != nil {
		log.Printf("[MENU] refresh option categories %d: %v", restaurantID, err)
		s.caches.OptionCategories.Delete(ctx, optionCategoriesKey(restaurantID))
	}
}

func (s *MenuService) dropOptions(ctx context.Context, optionCategoryID int) {
	refs, err := s.repo.ListOptionCategoryItems(ctx, optionCategoryID)
	if err != nil {
		log.Printf("[MENU] list items of option category %d: %v", optionCategoryID, err)
		return
	}
	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, optionsKey(ref.RestaurantSlug, ref.ItemSlug))
	}
	s.caches.Menu.Delete(ctx, keys...)
}

func requireName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domain.ValidationError{Field: field, Message: "is required"}
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return "", domain.ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}
	return value, nil
}

func validatePrice(field string, price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.ValidationError{Field: field, Message: "must not be negative"}
	}
	if !price.Equal(price.Round(2)) {
		return domain.ValidationError{Field: field, Message: "must have at most 2 decimal places"}
	}
	if price.GreaterThanOrEqual(maxMenuPrice) {
		return domain.ValidationError{Field: field, Message: "must be less than 10000"}
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
