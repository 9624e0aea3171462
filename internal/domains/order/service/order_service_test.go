package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/internal/domains/order/model"
	restaurantModel "eats-backend/internal/domains/restaurant/model"
	restaurantRepo "eats-backend/internal/domains/restaurant/repository"
	userModel "eats-backend/internal/domains/user/model"
	"eats-backend/internal/infrastructure/pubsub"
)

// =====================================================
// FAKES
// =====================================================

type fakeOrderRepo struct {
	orders     map[uuid.UUID]*model.Order
	createErr  error
	failCreate bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (f *fakeOrderRepo) CreateWithItems(_ context.Context, order *model.Order) error {
	if f.failCreate {
		return f.createErr
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return model.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) AssignDriver(_ context.Context, orderID, driverID uuid.UUID) error {
	o, ok := f.orders[orderID]
	if !ok {
		return model.ErrOrderNotFound
	}
	if o.DriverID != nil {
		return model.ErrDriverAssigned
	}
	o.DriverID = &driverID
	return nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, customerID uuid.UUID, status *model.OrderStatus) ([]model.Order, error) {
	return f.list(func(o *model.Order) bool { return o.CustomerID == customerID }, status), nil
}

func (f *fakeOrderRepo) ListByDriver(_ context.Context, driverID uuid.UUID, status *model.OrderStatus) ([]model.Order, error) {
	return f.list(func(o *model.Order) bool { return o.DriverID != nil && *o.DriverID == driverID }, status), nil
}

func (f *fakeOrderRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, status *model.OrderStatus) ([]model.Order, error) {
	return f.list(func(o *model.Order) bool { return o.RestaurantOwnerID == ownerID }, status), nil
}

func (f *fakeOrderRepo) list(match func(*model.Order) bool, status *model.OrderStatus) []model.Order {
	var out []model.Order
	for _, o := range f.orders {
		if !match(o) {
			continue
		}
		if status != nil && o.Status != *status {
			continue
		}
		out = append(out, *o)
	}
	return out
}

// fakeRestaurantStore implements only the lookups the order service
// needs; the embedded interface panics on anything else.
type fakeRestaurantStore struct {
	restaurantRepo.RestaurantRepository
	restaurants map[uuid.UUID]*restaurantModel.Restaurant
	dishes      map[uuid.UUID]*restaurantModel.Dish
}

func newFakeRestaurantStore() *fakeRestaurantStore {
	return &fakeRestaurantStore{
		restaurants: make(map[uuid.UUID]*restaurantModel.Restaurant),
		dishes:      make(map[uuid.UUID]*restaurantModel.Dish),
	}
}

func (f *fakeRestaurantStore) GetByID(_ context.Context, id uuid.UUID) (*restaurantModel.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, restaurantModel.ErrRestaurantNotFound
	}
	return r, nil
}

func (f *fakeRestaurantStore) GetDishByID(_ context.Context, id uuid.UUID) (*restaurantModel.Dish, error) {
	d, ok := f.dishes[id]
	if !ok {
		return nil, restaurantModel.ErrDishNotFound
	}
	return d, nil
}

// =====================================================
// FIXTURE
// =====================================================

type fixture struct {
	orders      *fakeOrderRepo
	restaurants *fakeRestaurantStore
	bus         *pubsub.InMemoryBus
	svc         OrderService

	owner      *userModel.User
	client     *userModel.User
	driver     *userModel.User
	restaurant *restaurantModel.Restaurant
	dish       *restaurantModel.Dish
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		orders:      newFakeOrderRepo(),
		restaurants: newFakeRestaurantStore(),
		bus:         pubsub.NewInMemoryBus(),
		owner:       &userModel.User{ID: uuid.New(), Role: userModel.RoleOwner},
		client:      &userModel.User{ID: uuid.New(), Role: userModel.RoleClient},
		driver:      &userModel.User{ID: uuid.New(), Role: userModel.RoleDelivery},
	}
	f.svc = NewOrderService(f.orders, f.restaurants, f.bus)

	extra := decimal.NewFromInt(2)
	f.restaurant = &restaurantModel.Restaurant{
		ID:      uuid.New(),
		Name:    "Golden Dragon",
		OwnerID: f.owner.ID,
	}
	f.dish = &restaurantModel.Dish{
		ID:           uuid.New(),
		RestaurantID: f.restaurant.ID,
		Name:         "Fried Rice",
		Price:        decimal.NewFromInt(10),
		Options: []restaurantModel.DishOption{
			{Name: "Extra Egg", Extra: &extra},
		},
	}
	f.restaurants.restaurants[f.restaurant.ID] = f.restaurant
	f.restaurants.dishes[f.dish.ID] = f.dish

	return f
}

func (f *fixture) placeOrder(t *testing.T) *model.Order {
	t.Helper()
	order, err := f.svc.CreateOrder(context.Background(), f.client, model.CreateOrderRequest{
		RestaurantID: f.restaurant.ID,
		Items:        []model.CreateOrderItemInput{{DishID: f.dish.ID}},
	})
	require.NoError(t, err)
	return order
}

func receive(t *testing.T, ch <-chan pubsub.Message) pubsub.Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for bus message")
		return pubsub.Message{}
	}
}

func assertSilent(t *testing.T, ch <-chan pubsub.Message) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("unexpected bus message on %s", msg.Topic)
	case <-time.After(50 * time.Millisecond):
	}
}

// =====================================================
// TESTS
// =====================================================

func TestCreateOrderComputesTotalAndNotifiesOwner(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pending := f.bus.Subscribe(ctx, pubsub.TopicPendingOrders)

	order, err := f.svc.CreateOrder(context.Background(), f.client, model.CreateOrderRequest{
		RestaurantID: f.restaurant.ID,
		Items: []model.CreateOrderItemInput{
			{DishID: f.dish.ID, Options: []model.OrderItemOption{{Name: "Extra Egg"}}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(12)), "10 base + 2 extra")
	require.Len(t, order.Items, 1)
	assert.Contains(t, f.orders.orders, order.ID)

	msg := receive(t, pending)
	event, ok := msg.Payload.(model.PendingOrderEvent)
	require.True(t, ok)
	assert.Equal(t, f.owner.ID, event.OwnerID)
	assert.Equal(t, order.ID, event.Order.ID)
}

func TestCreateOrderUnknownRestaurant(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), f.client, model.CreateOrderRequest{
		RestaurantID: uuid.New(),
		Items:        []model.CreateOrderItemInput{{DishID: f.dish.ID}},
	})
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeOrderNotFound, orderErr.Code)
}

func TestCreateOrderUnknownDish(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), f.client, model.CreateOrderRequest{
		RestaurantID: f.restaurant.ID,
		Items:        []model.CreateOrderItemInput{{DishID: uuid.New()}},
	})
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeOrderNotFound, orderErr.Code)
	assert.Empty(t, f.orders.orders, "nothing may be persisted")
}

func TestCreateOrderRejectsDishFromAnotherRestaurant(t *testing.T) {
	f := newFixture(t)

	other := &restaurantModel.Restaurant{ID: uuid.New(), OwnerID: uuid.New()}
	foreignDish := &restaurantModel.Dish{
		ID:           uuid.New(),
		RestaurantID: other.ID,
		Name:         "Pho",
		Price:        decimal.NewFromInt(99),
	}
	f.restaurants.restaurants[other.ID] = other
	f.restaurants.dishes[foreignDish.ID] = foreignDish

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pending := f.bus.Subscribe(ctx, pubsub.TopicPendingOrders)

	_, err := f.svc.CreateOrder(context.Background(), f.client, model.CreateOrderRequest{
		RestaurantID: f.restaurant.ID,
		Items:        []model.CreateOrderItemInput{{DishID: foreignDish.ID}},
	})
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeOrderNotFound, orderErr.Code)
	assert.Empty(t, f.orders.orders, "nothing may be persisted")
	assertSilent(t, pending)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), f.client, model.CreateOrderRequest{
		RestaurantID: f.restaurant.ID,
	})
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeInvalidInput, orderErr.Code)
}

func TestGetOrderVisibility(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)

	got, err := f.svc.GetOrder(context.Background(), f.client, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = f.svc.GetOrder(context.Background(), f.owner, order.ID)
	require.NoError(t, err)

	stranger := &userModel.User{ID: uuid.New(), Role: userModel.RoleClient}
	_, err = f.svc.GetOrder(context.Background(), stranger, order.ID)
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeNotAllowed, orderErr.Code)

	_, err = f.svc.GetOrder(context.Background(), f.driver, order.ID)
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeNotAllowed, orderErr.Code, "unassigned driver can not see the order")
}

func TestGetOrderNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetOrder(context.Background(), f.client, uuid.New())
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeOrderNotFound, orderErr.Code)
}

func TestGetOrdersScopedByRole(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)

	clientOrders, err := f.svc.GetOrders(context.Background(), f.client, nil)
	require.NoError(t, err)
	require.Len(t, clientOrders, 1)
	assert.Equal(t, order.ID, clientOrders[0].ID)

	ownerOrders, err := f.svc.GetOrders(context.Background(), f.owner, nil)
	require.NoError(t, err)
	assert.Len(t, ownerOrders, 1)

	driverOrders, err := f.svc.GetOrders(context.Background(), f.driver, nil)
	require.NoError(t, err)
	assert.Empty(t, driverOrders)
}

func TestGetOrdersStatusFilter(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)
	require.NoError(t, f.orders.UpdateStatus(context.Background(), order.ID, model.StatusCooked))

	cooked := model.StatusCooked
	orders, err := f.svc.GetOrders(context.Background(), f.client, &cooked)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	pending := model.StatusPending
	orders, err = f.svc.GetOrders(context.Background(), f.client, &pending)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestEditOrderOwnerCookedFiresBothEvents(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cooked := f.bus.Subscribe(ctx, pubsub.TopicCookedOrders)
	updates := f.bus.Subscribe(ctx, pubsub.TopicOrderUpdates)

	updated, err := f.svc.EditOrder(context.Background(), f.owner, model.EditOrderRequest{
		OrderID: order.ID,
		Status:  model.StatusCooked,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCooked, updated.Status)

	cookedMsg := receive(t, cooked)
	cookedEvent, ok := cookedMsg.Payload.(model.CookedOrderEvent)
	require.True(t, ok)
	assert.Equal(t, order.ID, cookedEvent.Order.ID)

	updateMsg := receive(t, updates)
	updateEvent, ok := updateMsg.Payload.(model.OrderUpdateEvent)
	require.True(t, ok)
	assert.Equal(t, model.StatusCooked, updateEvent.Order.Status)
}

func TestEditOrderOwnerCookingForbidden(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := f.bus.Subscribe(ctx, pubsub.TopicOrderUpdates)

	_, err := f.svc.EditOrder(context.Background(), f.owner, model.EditOrderRequest{
		OrderID: order.ID,
		Status:  model.StatusCooking,
	})
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeNotAllowed, orderErr.Code)
	assert.Equal(t, model.StatusPending, f.orders.orders[order.ID].Status)
	assertSilent(t, updates)
}

func TestEditOrderClientForbidden(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)

	_, err := f.svc.EditOrder(context.Background(), f.client, model.EditOrderRequest{
		OrderID: order.ID,
		Status:  model.StatusDelivered,
	})
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeNotAllowed, orderErr.Code)
}

func TestEditOrderInvisibleOrderForbidden(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)

	otherOwner := &userModel.User{ID: uuid.New(), Role: userModel.RoleOwner}
	_, err := f.svc.EditOrder(context.Background(), otherOwner, model.EditOrderRequest{
		OrderID: order.ID,
		Status:  model.StatusCooked,
	})
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeNotAllowed, orderErr.Code)
}

func TestTakeOrderAssignsOnce(t *testing.T) {
	f := newFixture(t)
	order := f.placeOrder(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates := f.bus.Subscribe(ctx, pubsub.TopicOrderUpdates)

	taken, err := f.svc.TakeOrder(context.Background(), f.driver, order.ID)
	require.NoError(t, err)
	require.NotNil(t, taken.DriverID)
	assert.Equal(t, f.driver.ID, *taken.DriverID)

	msg := receive(t, updates)
	event, ok := msg.Payload.(model.OrderUpdateEvent)
	require.True(t, ok)
	require.NotNil(t, event.Order.DriverID)

	secondDriver := &userModel.User{ID: uuid.New(), Role: userModel.RoleDelivery}
	_, err = f.svc.TakeOrder(context.Background(), secondDriver, order.ID)
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeDriverAssigned, orderErr.Code)
	assert.Equal(t, f.driver.ID, *f.orders.orders[order.ID].DriverID, "driver must remain the first taker")
}

func TestTakeOrderNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TakeOrder(context.Background(), f.driver, uuid.New())
	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeOrderNotFound, orderErr.Code)
}

func TestCreateOrderPersistFailureIsGeneric(t *testing.T) {
	f := newFixture(t)
	f.orders.failCreate = true
	f.orders.createErr = assert.AnError

	_, err := f.svc.CreateOrder(context.Background(), f.client, model.CreateOrderRequest{
		RestaurantID: f.restaurant.ID,
		Items:        []model.CreateOrderItemInput{{DishID: f.dish.ID}},
	})
	require.Error(t, err)

	var orderErr *model.OrderError
	require.ErrorAs(t, err, &orderErr)
	assert.Equal(t, model.ErrCodeInternal, orderErr.Code)
	assert.Equal(t, "could not create order", orderErr.Message)
}
