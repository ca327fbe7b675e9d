package tests

import (
	"context"
	"encoding/json"
	"testing"

	"foodmarket/marketplace-svc/internal/domain"
	"foodmarket/marketplace-svc/internal/mocks"
	"foodmarket/marketplace-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuService_GetMenuItemsByRestaurantIsCached(t *testing.T) {
	caches, _ := newTestCaches(t)
	repo := mocks.NewMenuRepository(t)
	repo.On("ListActiveMenuItems", mock.Anything, 3).Return(sampleMenu()[:1], nil).Once()

	svc := service.NewMenuService(repo, nil, caches)

	first, err := svc.GetMenuItemsByRestaurant(context.Background(), 3)
	require.NoError(t, err)
	second, err := svc.GetMenuItemsByRestaurant(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.True(t, first[0].Price.Equal(second[0].Price))
}

func TestMenuService_UpdateMenuItemWritesThrough(t *testing.T) {
	ctx := context.Background()
	caches, mr := newTestCaches(t)
	repo := mocks.NewMenuRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	stale := []domain.MenuItem{{ID: 1, RestaurantID: 3, Name: "A", Price: decimal.RequireFromString("10.00"), Active: true}}
	fresh := []domain.MenuItem{{ID: 1, RestaurantID: 3, Name: "A", Price: decimal.RequireFromString("12.50"), Active: true}}

	repo.On("ListActiveMenuItems", mock.Anything, 3).Return(stale, nil).Once()
	repo.On("GetMenuItem", mock.Anything, 1).Return(&domain.MenuItem{ID: 1, RestaurantID: 3, Name: "A", Slug: "a", Price: decimal.RequireFromString("10.00"), Active: true}, nil).Once()
	repo.On("UpdateMenuItem", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()
	restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3, Slug: "burger-bar"}, nil).Once()
	repo.On("GetMenu", mock.Anything, "burger-bar").Return([]domain.MenuCategory{}, nil).Once()
	repo.On("ListActiveMenuItems", mock.Anything, 3).Return(fresh, nil).Once()

	svc := service.NewMenuService(repo, restaurants, caches)

	_, err := svc.GetMenuItemsByRestaurant(ctx, 3)
	require.NoError(t, err)

	updated, err := svc.UpdateMenuItem(ctx, 1, domain.MenuItemUpdateRequest{Name: "A", Price: decimal.RequireFromString("12.50"), Active: true})
	require.NoError(t, err)
	assert.Equal(t, "12.50", updated.Price.StringFixed(2))

	raw, err := mr.Get("menu_get_menu_items_by_restaurant?restaurant_id=3")
	require.NoError(t, err)
	var cached []domain.MenuItem
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, "12.50", cached[0].Price.StringFixed(2))

	items, err := svc.GetMenuItemsByRestaurant(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "12.50", items[0].Price.StringFixed(2))
}

func TestMenuService_UpdateCategoryWritesThrough(t *testing.T) {
	ctx := context.Background()
	caches, mr := newTestCaches(t)
	repo := mocks.NewMenuRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	repo.On("GetMenu", mock.Anything, "burger-bar").Return([]domain.MenuCategory{{ID: 8, Name: "Mains", Slug: "mains"}}, nil).Once()
	repo.On("GetCategory", mock.Anything, 8).Return(&domain.MenuCategory{ID: 8, RestaurantID: 3, Name: "Mains", Slug: "mains"}, nil).Once()
	repo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *domain.MenuCategory) bool {
		return c.ID == 8 && c.Name == "Burgers" && c.Slug == "mains"
	})).Return(nil).Once()
	restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3, Slug: "burger-bar"}, nil).Once()
	repo.On("GetMenu", mock.Anything, "burger-bar").Return([]domain.MenuCategory{{ID: 8, Name: "Burgers", Slug: "mains"}}, nil).Once()
	repo.On("ListActiveMenuItems", mock.Anything, 3).Return([]domain.MenuItem{}, nil).Once()

	svc := service.NewMenuService(repo, restaurants, caches)

	_, err := svc.GetMenu(ctx, "burger-bar")
	require.NoError(t, err)

	category, err := svc.UpdateCategory(ctx, 8, domain.CategoryUpdateRequest{Name: "  Burgers "})
	require.NoError(t, err)
	assert.Equal(t, "Burgers", category.Name)
	assert.True(t, mr.Exists("menu_get_menu/?name=burger-bar"))

	menu, err := svc.GetMenu(ctx, "burger-bar")
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Burgers", menu[0].Name)
}

func TestMenuService_UpdateCategoryValidation(t *testing.T) {
	svc := service.NewMenuService(mocks.NewMenuRepository(t), mocks.NewRestaurantRepository(t), service.Caches{})

	_, err := svc.UpdateCategory(context.Background(), 8, domain.CategoryUpdateRequest{Name: " "})

	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestMenuService_RefreshFailureDropsKey(t *testing.T) {
	ctx := context.Background()
	caches, mr := newTestCaches(t)
	repo := mocks.NewMenuRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)

	repo.On("ListActiveMenuItems", mock.Anything, 3).Return(sampleMenu(), nil).Once()
	repo.On("GetCategory", mock.Anything, 8).Return(&domain.MenuCategory{ID: 8, RestaurantID: 3}, nil).Once()
	repo.On("CreateMenuItem", mock.Anything, mock.Anything).Return(nil).Once()
	restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3, Slug: "burger-bar"}, nil).Once()
	repo.On("GetMenu", mock.Anything, "burger-bar").Return(nil, assert.AnError).Once()
	repo.On("ListActiveMenuItems", mock.Anything, 3).Return(nil, assert.AnError).Once()

	svc := service.NewMenuService(repo, restaurants, caches)
	_, err := svc.GetMenuItemsByRestaurant(ctx, 3)
	require.NoError(t, err)
	require.True(t, mr.Exists("menu_get_menu_items_by_restaurant?restaurant_id=3"))

	item, err := svc.CreateMenuItem(ctx, domain.MenuItemCreateRequest{CategoryID: 8, Name: "Chip Roll", Price: decimal.RequireFromString("35")})
	require.NoError(t, err)
	assert.Equal(t, "chip-roll", item.Slug)

	assert.False(t, mr.Exists("menu_get_menu_items_by_restaurant?restaurant_id=3"))
}

func TestMenuService_CreateMenuItemValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   domain.MenuItemCreateRequest
		field string
	}{
		{name: "blank name", req: domain.MenuItemCreateRequest{CategoryID: 1, Name: "  ", Price: decimal.NewFromInt(1)}, field: "name"},
		{name: "negative price", req: domain.MenuItemCreateRequest{CategoryID: 1, Name: "Tea", Price: decimal.NewFromInt(-1)}, field: "price"},
		{name: "three decimals", req: domain.MenuItemCreateRequest{CategoryID: 1, Name: "Tea", Price: decimal.RequireFromString("1.005")}, field: "price"},
		{name: "too expensive", req: domain.MenuItemCreateRequest{CategoryID: 1, Name: "Tea", Price: decimal.NewFromInt(10000)}, field: "price"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			svc := service.NewMenuService(repo, nil, service.Caches{})

			_, err := svc.CreateMenuItem(context.Background(), testCase.req)

			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, testCase.field, verr.Field)
		})
	}
}

func TestMenuService_CreateOptionCategory(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.OptionCategoryCreateRequest
		wantNumChoose int
		wantErr       bool
	}{
		{
			name:          "single choice forces one",
			req:           domain.OptionCategoryCreateRequest{RestaurantID: 3, Heading: "Sauce", NumChoose: 4},
			wantNumChoose: 1,
		},
		{
			name:          "multiple choice keeps count",
			req:           domain.OptionCategoryCreateRequest{RestaurantID: 3, Heading: "Toppings", MultipleChoice: true, NumChoose: 3},
			wantNumChoose: 3,
		},
		{
			name:    "multiple choice without count",
			req:     domain.OptionCategoryCreateRequest{RestaurantID: 3, Heading: "Toppings", MultipleChoice: true},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			restaurants := mocks.NewRestaurantRepository(t)
			if !testCase.wantErr {
				restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3}, nil).Once()
				repo.On("CreateOptionCategory", mock.Anything, mock.Anything).Return(nil).Once()
				repo.On("ListOptionCategoriesByRestaurant", mock.Anything, 3).Return([]domain.OptionCategory{}, nil).Once()
			}

			svc := service.NewMenuService(repo, restaurants, service.Caches{})
			category, err := svc.CreateOptionCategory(context.Background(), testCase.req)

			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantNumChoose, category.NumChoose)
		})
	}
}

func TestMenuService_AttachOptionCategory(t *testing.T) {
	t.Run("same restaurant", func(t *testing.T) {
		caches, mr := newTestCaches(t)
		repo := mocks.NewMenuRepository(t)
		restaurants := mocks.NewRestaurantRepository(t)

		require.NoError(t, mr.Set("menu_get_options/?restaurant=burger-bar&menu_item=chip-roll", "[]"))
		repo.On("GetMenuItem", mock.Anything, 5).Return(&domain.MenuItem{ID: 5, RestaurantID: 3, Slug: "chip-roll"}, nil).Once()
		repo.On("GetOptionCategory", mock.Anything, 9).Return(&domain.OptionCategory{ID: 9, RestaurantID: 3}, nil).Once()
		restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3, Slug: "burger-bar"}, nil).Once()
		repo.On("AttachOptionCategory", mock.Anything, 3, 5, 9).Return(nil).Once()

		err := service.NewMenuService(repo, restaurants, caches).AttachOptionCategory(context.Background(), 5, 9)

		require.NoError(t, err)
		assert.False(t, mr.Exists("menu_get_options/?restaurant=burger-bar&menu_item=chip-roll"))
	})

	t.Run("other restaurant", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		repo.On("GetMenuItem", mock.Anything, 5).Return(&domain.MenuItem{ID: 5, RestaurantID: 3}, nil).Once()
		repo.On("GetOptionCategory", mock.Anything, 9).Return(&domain.OptionCategory{ID: 9, RestaurantID: 4}, nil).Once()

		err := service.NewMenuService(repo, nil, service.Caches{}).AttachOptionCategory(context.Background(), 5, 9)

		var verr domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "option_category_id", verr.Field)
	})
}

func TestMenuService_AddOptionDropsItemOptions(t *testing.T) {
	caches, mr := newTestCaches(t)
	repo := mocks.NewMenuRepository(t)

	require.NoError(t, mr.Set("menu_get_options/?restaurant=burger-bar&menu_item=chip-roll", "[]"))
	repo.On("GetOptionCategory", mock.Anything, 9).Return(&domain.OptionCategory{ID: 9, RestaurantID: 3}, nil).Once()
	repo.On("CreateOption", mock.Anything, mock.AnythingOfType("*domain.Option")).Return(nil).Once()
	repo.On("ListOptionCategoriesByRestaurant", mock.Anything, 3).Return([]domain.OptionCategory{{ID: 9}}, nil).Once()
	repo.On("ListOptionCategoryItems", mock.Anything, 9).Return([]domain.MenuItemRef{{RestaurantSlug: "burger-bar", ItemSlug: "chip-roll"}}, nil).Once()

	option, err := service.NewMenuService(repo, nil, caches).AddOption(context.Background(), domain.OptionCreateRequest{
		CategoryID: 9,
		Name:       "Cheese",
		Price:      decimal.RequireFromString("7.5"),
	})

	require.NoError(t, err)
	assert.Equal(t, "7.50", option.Price.StringFixed(2))
	assert.False(t, mr.Exists("menu_get_options/?restaurant=burger-bar&menu_item=chip-roll"))
	assert.True(t, mr.Exists("option_categories_get_by_restaurant/?restaurant=3"))
}
