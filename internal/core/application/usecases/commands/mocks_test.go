package commands_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/person"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/model/zone"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) FindActiveByCityPincode(
	ctx context.Context, city, pincode string,
) ([]*zone.Zone, error) {
	args := m.Called(ctx, city, pincode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockPersonRepository struct{ mock.Mock }

func (m *MockPersonRepository) Add(ctx context.Context, p *person.DeliveryPerson) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepository) Update(ctx context.Context, p *person.DeliveryPerson) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepository) Get(ctx context.Context, id kernel.UUID) (*person.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.DeliveryPerson), args.Error(1)
}

func (m *MockPersonRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*person.DeliveryPerson, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.DeliveryPerson), args.Error(1)
}

func (m *MockPersonRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*person.DeliveryPerson, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*person.DeliveryPerson), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
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

func (m *MockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Add(ctx context.Context, t *tracking.Tracking) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackingRepository) Update(ctx context.Context, t *tracking.Tracking) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackingRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Tracking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

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

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPersonRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockZoneUoWFactory struct{ mock.Mock }

func (m *MockZoneUoWFactory) Create() commands.ZoneUoW {
	args := m.Called()
	return args.Get(0).(commands.ZoneUoW)
}

type MockPersonUoWFactory struct{ mock.Mock }

func (m *MockPersonUoWFactory) Create() commands.PersonUoW {
	args := m.Called()
	return args.Get(0).(commands.PersonUoW)
}

type MockZonePersonUoWFactory struct{ mock.Mock }

func (m *MockZonePersonUoWFactory) Create() commands.ZonePersonUoW {
	args := m.Called()
	return args.Get(0).(commands.ZonePersonUoW)
}
