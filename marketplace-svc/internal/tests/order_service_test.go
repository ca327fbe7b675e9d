package tests

import (
	"context"
	"testing"
	"time"

	"foodmarket/marketplace-svc/internal/cache"
	"foodmarket/marketplace-svc/internal/domain"
	"foodmarket/marketplace-svc/internal/mocks"
	"foodmarket/marketplace-svc/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCaches(t *testing.T) (service.Caches, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return service.NewCaches(cache.NewRedisStore(client)), mr
}

func sampleMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, RestaurantID: 3, Name: "A", Price: decimal.RequireFromString("10.00"), Active: true},
		{ID: 2, RestaurantID: 3, Name: "B", Price: decimal.RequireFromString("5.00"), Active: false},
	}
}

func TestPricer_Validate(t *testing.T) {
	tests := []struct {
		name      string
		menu      []domain.MenuItem
		lineItems []domain.LineItemRequest
		want      bool
	}{
		{
			name:      "active item",
			menu:      sampleMenu(),
			lineItems: []domain.LineItemRequest{{MenuItemID: 1, Quantity: 2}},
			want:      true,
		},
		{
			name:      "inactive item",
			menu:      sampleMenu(),
			lineItems: []domain.LineItemRequest{{MenuItemID: 2, Quantity: 1}},
			want:      false,
		},
		{
			name:      "item of another restaurant",
			menu:      sampleMenu(),
			lineItems: []domain.LineItemRequest{{MenuItemID: 1, Quantity: 1}, {MenuItemID: 99, Quantity: 1}},
			want:      false,
		},
		{
			name:      "empty catalog",
			menu:      []domain.MenuItem{},
			lineItems: []domain.LineItemRequest{{MenuItemID: 1, Quantity: 1}},
			want:      false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			source := mocks.NewMenuItemSource(t)
			source.On("GetMenuItemsByRestaurant", mock.Anything, 3).Return(testCase.menu, nil).Once()

			ok, err := service.NewPricer(source).Validate(context.Background(), 3, testCase.lineItems)

			require.NoError(t, err)
			assert.Equal(t, testCase.want, ok)
		})
	}
}

func TestPricer_Price(t *testing.T) {
	source := mocks.NewMenuItemSource(t)
	source.On("GetMenuItemsByRestaurant", mock.Anything, 3).Return(sampleMenu(), nil).Once()

	lines, total, err := service.NewPricer(source).Price(context.Background(), 3, []domain.LineItemRequest{{MenuItemID: 1, Quantity: 2}})

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "10.00", lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "20.00", lines[0].SubTotal.StringFixed(2))
	assert.Equal(t, "A", lines[0].MenuItemName)
	assert.Equal(t, "20.00", total.StringFixed(2))
}

func TestPricer_PriceRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name      string
		lineItems []domain.LineItemRequest
		field     string
		loadsMenu bool
	}{
		{name: "no line items", lineItems: nil, field: "line_items"},
		{name: "zero quantity", lineItems: []domain.LineItemRequest{{MenuItemID: 1, Quantity: 0}}, field: "line_items[0].quantity"},
		{name: "inactive item", lineItems: []domain.LineItemRequest{{MenuItemID: 2, Quantity: 1}}, field: "line_items", loadsMenu: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			source := mocks.NewMenuItemSource(t)
			if testCase.loadsMenu {
				source.On("GetMenuItemsByRestaurant", mock.Anything, 3).Return(sampleMenu(), nil).Once()
			}

			_, _, err := service.NewPricer(source).Price(context.Background(), 3, testCase.lineItems)

			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, testCase.field, verr.Field)
		})
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	caches, mr := newTestCaches(t)

	repo := mocks.NewOrderRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	notifier := mocks.NewNotifier(t)
	source := mocks.NewMenuItemSource(t)

	restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3, Phone: "0821234567"}, nil).Once()
	source.On("GetMenuItemsByRestaurant", mock.Anything, 3).Return(sampleMenu(), nil).Once()
	repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*domain.Order)
			order.ID = 42
			order.Status = domain.StatusSubmitted
		}).
		Return(nil).Once()
	notifier.On("Notify", mock.Anything, "0821234567", "New order #42 received. Total: R20.00").Return(nil).Once()

	svc := service.NewOrderService(repo, restaurants, service.NewPricer(source), notifier, nil, caches)
	order, err := svc.Create(ctx, 7, domain.OrderCreateRequest{
		RestaurantID: 3,
		LineItems:    []domain.LineItemRequest{{MenuItemID: 1, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.Equal(t, 7, order.AppUserID)
	assert.Equal(t, "20.00", order.Total.StringFixed(2))
	assert.True(t, mr.Exists("orders_is_order_owner?appuser_id=7&order_id=42"))
}

func TestOrderService_CreateRejectsInactiveItem(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	source := mocks.NewMenuItemSource(t)

	restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3}, nil).Once()
	source.On("GetMenuItemsByRestaurant", mock.Anything, 3).Return(sampleMenu(), nil).Once()

	svc := service.NewOrderService(repo, restaurants, service.NewPricer(source), nil, nil, service.Caches{})
	_, err := svc.Create(context.Background(), 7, domain.OrderCreateRequest{
		RestaurantID: 3,
		LineItems:    []domain.LineItemRequest{{MenuItemID: 2, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestOrderService_CreateSurvivesNotificationFailure(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	pricer := mocks.NewPricerInterface(t)
	notifier := mocks.NewNotifier(t)

	lines := []domain.OrderLineItem{{MenuItemID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(10), SubTotal: decimal.NewFromInt(10)}}
	restaurants.On("GetRestaurant", mock.Anything, 3).Return(&domain.Restaurant{ID: 3, Phone: "0821234567"}, nil).Once()
	pricer.On("Price", mock.Anything, 3, mock.Anything).Return(lines, decimal.NewFromInt(10), nil).Once()
	repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("Notify", mock.Anything, "0821234567", mock.Anything).Return(assert.AnError).Once()

	svc := service.NewOrderService(repo, restaurants, pricer, notifier, nil, service.Caches{})
	order, err := svc.Create(context.Background(), 7, domain.OrderCreateRequest{
		RestaurantID: 3,
		LineItems:    []domain.LineItemRequest{{MenuItemID: 1, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, "10.00", order.Total.StringFixed(2))
}

func TestOrderService_Accept(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.OrderStatus
		repoErr    error
		wantReason string
	}{
		{name: "submitted order", status: domain.StatusAccepted},
		{name: "cancelled by customer", status: domain.StatusCancelled, repoErr: domain.ErrStatusMismatch, wantReason: domain.MsgCancelledByCustomer},
		{name: "already accepted", status: domain.StatusAccepted, repoErr: domain.ErrStatusMismatch, wantReason: domain.MsgAlreadyAccepted},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			notifier := mocks.NewNotifier(t)

			repo.On("TransitionStatus", mock.Anything, 42, domain.StatusSubmitted, domain.StatusAccepted).
				Return(testCase.status, testCase.repoErr).Once()
			if testCase.repoErr == nil {
				repo.On("GetOrder", mock.Anything, 42).Return(&domain.Order{ID: 42, AppUserID: 7}, nil).Once()
				repo.On("GetAppUserCellphone", mock.Anything, 7).Return("0831112222", nil).Once()
				notifier.On("Notify", mock.Anything, "0831112222", "Your order #42 has been accepted and is being prepared.").Return(nil).Once()
			}

			svc := service.NewOrderService(repo, nil, nil, notifier, nil, service.Caches{})
			err := svc.Accept(context.Background(), 42)

			if testCase.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var conflict domain.StateConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, testCase.wantReason, conflict.Reason)
		})
	}
}

func TestOrderService_AcceptNotFound(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	repo.On("TransitionStatus", mock.Anything, 404, domain.StatusSubmitted, domain.StatusAccepted).
		Return(domain.OrderStatus(""), domain.NotFound("order", 404)).Once()

	svc := service.NewOrderService(repo, nil, nil, nil, nil, service.Caches{})
	err := svc.Accept(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.OrderStatus
		repoErr    error
		wantReason string
	}{
		{name: "submitted order", status: domain.StatusCancelled},
		{name: "accepted order", status: domain.StatusAccepted, repoErr: domain.ErrStatusMismatch, wantReason: domain.MsgCannotChangeAccepted},
		{name: "cancelled twice", status: domain.StatusCancelled, repoErr: domain.ErrStatusMismatch, wantReason: domain.MsgAlreadyCancelled},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			repo.On("TransitionStatus", mock.Anything, 42, domain.StatusSubmitted, domain.StatusCancelled).
				Return(testCase.status, testCase.repoErr).Once()

			svc := service.NewOrderService(repo, nil, nil, nil, nil, service.Caches{})
			err := svc.Cancel(context.Background(), 42)

			if testCase.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrStateConflict)
			assert.EqualError(t, err, testCase.wantReason)
		})
	}
}

func TestOrderService_Update(t *testing.T) {
	req := domain.OrderUpdateRequest{Note: "no onions", LineItems: []domain.LineItemRequest{{MenuItemID: 1, Quantity: 3}}}

	t.Run("submitted order is repriced", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		source := mocks.NewMenuItemSource(t)

		repo.On("GetOrder", mock.Anything, 42).Return(&domain.Order{ID: 42, RestaurantID: 3, Status: domain.StatusSubmitted}, nil).Once()
		source.On("GetMenuItemsByRestaurant", mock.Anything, 3).Return(sampleMenu(), nil).Once()
		repo.On("ReplaceOrderItems", mock.Anything, mock.AnythingOfType("*domain.Order"), domain.StatusSubmitted).
			Return(domain.StatusSubmitted, nil).Once()

		svc := service.NewOrderService(repo, nil, service.NewPricer(source), nil, nil, service.Caches{})
		order, err := svc.Update(context.Background(), 42, req)

		require.NoError(t, err)
		assert.Equal(t, "30.00", order.Total.StringFixed(2))
		assert.Equal(t, "no onions", order.Note)
	})

	t.Run("accepted order is rejected before pricing", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		pricer := mocks.NewPricerInterface(t)
		repo.On("GetOrder", mock.Anything, 42).Return(&domain.Order{ID: 42, RestaurantID: 3, Status: domain.StatusAccepted}, nil).Once()

		svc := service.NewOrderService(repo, nil, pricer, nil, nil, service.Caches{})
		_, err := svc.Update(context.Background(), 42, req)

		assert.ErrorIs(t, err, domain.ErrStateConflict)
		assert.EqualError(t, err, domain.MsgCannotChangeAccepted)
	})

	t.Run("accepted between read and write", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		source := mocks.NewMenuItemSource(t)

		repo.On("GetOrder", mock.Anything, 42).Return(&domain.Order{ID: 42, RestaurantID: 3, Status: domain.StatusSubmitted}, nil).Once()
		source.On("GetMenuItemsByRestaurant", mock.Anything, 3).Return(sampleMenu(), nil).Once()
		repo.On("ReplaceOrderItems", mock.Anything, mock.Anything, domain.StatusSubmitted).
			Return(domain.StatusAccepted, domain.ErrStatusMismatch).Once()

		svc := service.NewOrderService(repo, nil, service.NewPricer(source), nil, nil, service.Caches{})
		_, err := svc.Update(context.Background(), 42, req)

		assert.EqualError(t, err, domain.MsgCannotChangeAccepted)
	})

	t.Run("cancelled order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrder", mock.Anything, 42).Return(&domain.Order{ID: 42, Status: domain.StatusCancelled}, nil).Once()

		svc := service.NewOrderService(repo, nil, nil, nil, nil, service.Caches{})
		_, err := svc.Update(context.Background(), 42, req)

		assert.EqualError(t, err, domain.MsgCannotChangeCancelled)
	})
}

func TestOrderService_TodaysPendingOrders(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	now := time.Date(2024, 3, 6, 15, 30, 0, 0, loc)
	midnight := time.Date(2024, 3, 6, 0, 0, 0, 0, loc)

	repo := mocks.NewOrderRepository(t)
	repo.On("ListPendingOrders", mock.Anything, 3, midnight).Return([]domain.Order{{ID: 1}}, nil).Once()

	svc := service.NewOrderService(repo, nil, nil, nil, nil, service.Caches{}).
		WithClock(func() time.Time { return now })
	orders, err := svc.TodaysPendingOrders(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_QRCode(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)

	repo.On("GetOrder", mock.Anything, 42).Return(&domain.Order{ID: 42}, nil).Once()
	qr.On("Generate", 42).Return([]byte("png"), nil).Once()
	repo.On("GetOrder", mock.Anything, 43).Return(nil, domain.NotFound("order", 43)).Once()

	svc := service.NewOrderService(repo, nil, nil, nil, qr, service.Caches{})

	png, err := svc.QRCode(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.QRCode(context.Background(), 43)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPickupLink(t *testing.T) {
	assert.Equal(t, "https://food.example/orders/9/pickup", service.PickupLink("https://food.example", 9))

	png, err := service.DefaultQRGenerator{BaseURL: "https://food.example"}.Generate(9)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
