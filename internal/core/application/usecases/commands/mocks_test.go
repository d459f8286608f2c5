package commands_test

import (
	"context"
	"testing"
	"time"

	"deliverya/internal/core/application/usecases/commands"
	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/message"
	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/core/domain/model/tracking"
	"deliverya/internal/core/domain/model/user"
	"deliverya/internal/core/ports"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fake = faker.New()

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AcceptExclusive(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInTransit(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForParticipant(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) Add(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*message.Message, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*message.Message), args.Error(1)
}

type MockTelemetryRepository struct{ mock.Mock }

func (m *MockTelemetryRepository) Add(ctx context.Context, p *tracking.Point) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockTelemetryRepository) GetLatest(ctx context.Context, orderID kernel.UUID) (*tracking.Point, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Point), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package; individual
// tests wire only the repositories their handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) MessageRepository() ports.MessageRepository {
	args := m.Called()
	return args.Get(0).(ports.MessageRepository)
}

func (m *MockUoW) TelemetryRepository() ports.TelemetryRepository {
	args := m.Called()
	return args.Get(0).(ports.TelemetryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderUserUoWFactory struct{ mock.Mock }

func (m *MockOrderUserUoWFactory) Create() commands.OrderUserUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUserUoW)
}

type MockAcceptUoWFactory struct{ mock.Mock }

func (m *MockAcceptUoWFactory) Create() commands.AcceptUoW {
	args := m.Called()
	return args.Get(0).(commands.AcceptUoW)
}

type MockChatUoWFactory struct{ mock.Mock }

func (m *MockChatUoWFactory) Create() commands.ChatUoW {
	args := m.Called()
	return args.Get(0).(commands.ChatUoW)
}

type MockTelemetryUoWFactory struct{ mock.Mock }

func (m *MockTelemetryUoWFactory) Create() commands.TelemetryUoW {
	args := m.Called()
	return args.Get(0).(commands.TelemetryUoW)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Resolve(ctx context.Context, address, regionHint string) (ports.GeocodedPlace, error) {
	args := m.Called(ctx, address, regionHint)
	return args.Get(0).(ports.GeocodedPlace), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePendingSettlement(
	ctx context.Context, orderID kernel.UUID, amount float64,
) (string, error) {
	args := m.Called(ctx, orderID, amount)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) ConfirmSettlement(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockOrderChangeNotifier struct{ mock.Mock }

func (m *MockOrderChangeNotifier) NotifyOrderChanged(o *order.Order) {
	m.Called(o)
}

type MockMessageNotifier struct{ mock.Mock }

func (m *MockMessageNotifier) NotifyMessage(msg *message.Message) {
	m.Called(msg)
}

// Fixtures

func fixturePoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func fixtureClient(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, fake.Person().Name(), fake.Internet().Email(),
		fake.Phone().Number(), user.Client, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func fixtureCourier(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, fake.Person().Name(), fake.Internet().Email(),
		fake.Phone().Number(), user.Courier, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func fixturePendingOrder(t *testing.T, orderID, clientID kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(orderID, clientID, fake.Person().Name(),
		fixturePoint(t, -35.0311, -63.0128), fixturePoint(t, -35.0250, -63.0050),
		fake.Address().StreetAddress(), fake.Address().StreetAddress(),
		fake.Lorem().Sentence(3), 1500, method, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func fixtureInTransitOrder(
	t *testing.T, orderID, clientID, courierID kernel.UUID, method order.PaymentMethod,
) *order.Order {
	t.Helper()
	o := fixturePendingOrder(t, orderID, clientID, method)
	require.NoError(t, o.Accept(courierID, fake.Person().Name(), time.Now().UTC()))
	return o
}
