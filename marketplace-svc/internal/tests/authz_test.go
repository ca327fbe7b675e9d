package tests

import (
	"context"
	"testing"

	"foodmarket/marketplace-svc/internal/mocks"
	"foodmarket/marketplace-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthorizer_CachesAnswers(t *testing.T) {
	caches, mr := newTestCaches(t)
	repo := mocks.NewOwnershipRepository(t)
	repo.On("IsRestaurantAdmin", mock.Anything, 7, 3).Return(true, nil).Once()
	repo.On("IsRestaurantAdmin", mock.Anything, 8, 3).Return(false, nil).Once()

	authz := service.NewAuthorizer(repo, caches)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := authz.IsRestaurantAdmin(ctx, 7, 3)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = authz.IsRestaurantAdmin(ctx, 8, 3)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.True(t, mr.Exists("restaurants_is_appuser_admin?appuser_id=7&id=3"))
}

func TestAuthorizer_ErrorsAreNotCached(t *testing.T) {
	repo := mocks.NewOwnershipRepository(t)
	repo.On("IsOrderOwner", mock.Anything, 7, 42).Return(false, assert.AnError).Once()
	repo.On("IsOrderOwner", mock.Anything, 7, 42).Return(true, nil).Once()

	caches, _ := newTestCaches(t)
	authz := service.NewAuthorizer(repo, caches)

	_, err := authz.IsOrderOwner(context.Background(), 7, 42)
	assert.Error(t, err)

	ok, err := authz.IsOrderOwner(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizer_Checks(t *testing.T) {
	tests := []struct {
		name   string
		method string
		call   func(*service.Authorizer) (bool, error)
	}{
		{name: "category", method: "IsCategoryAdmin", call: func(a *service.Authorizer) (bool, error) { return a.IsCategoryAdmin(context.Background(), 7, 5) }},
		{name: "menu item", method: "IsMenuItemAdmin", call: func(a *service.Authorizer) (bool, error) { return a.IsMenuItemAdmin(context.Background(), 7, 5) }},
		{name: "option category", method: "IsOptionCategoryAdmin", call: func(a *service.Authorizer) (bool, error) { return a.IsOptionCategoryAdmin(context.Background(), 7, 5) }},
		{name: "order merchant", method: "IsOrderMerchant", call: func(a *service.Authorizer) (bool, error) { return a.IsOrderMerchant(context.Background(), 7, 5) }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOwnershipRepository(t)
			repo.On(testCase.method, mock.Anything, 7, 5).Return(true, nil).Once()

			ok, err := testCase.call(service.NewAuthorizer(repo, service.Caches{}))

			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}
