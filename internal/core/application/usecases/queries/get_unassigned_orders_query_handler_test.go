package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding data through repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetUnassignedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUnassignedOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUnassignedOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetUnassignedOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPendingUnassigned() {
	ctx := context.Background()

	pending1 := suite.createOrder("411001")
	pending2 := suite.createOrder("411002")

	assigned := suite.createOrder("411003")
	err := assigned.AssignDeliveryPerson(kernel.NewUUID(), time.Now().UTC().Add(24*time.Hour))
	suite.Require().NoError(err)

	cancelled := suite.createOrder("411004")
	suite.Require().NoError(cancelled.Cancel())

	for _, o := range []*order.Order{pending1, pending2, assigned, cancelled} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query := queries.NewGetUnassignedOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[pending1.ID()])
	suite.True(resultIDs[pending2.ID()])
	suite.False(resultIDs[assigned.ID()])
	suite.False(resultIDs[cancelled.ID()])
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) TestHandle_MapsOrderFields() {
	ctx := context.Background()

	testOrder := suite.createOrder("411001")
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	query := queries.NewGetUnassignedOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	resp := result[0]
	suite.True(resp.ID.IsEqual(testOrder.ID()))
	suite.True(resp.UserID.IsEqual(testOrder.UserID()))
	suite.Equal("12 MG Road", resp.Street)
	suite.Equal("Pune", resp.City)
	suite.Equal("411001", resp.Pincode)
	suite.InDelta(testOrder.TotalAmount(), resp.TotalAmount, 0.001)
	suite.Equal(order.PaymentUPI.String(), resp.PaymentMethod)
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUnassignedOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUnassignedOrdersQuery constructor")
}

func (suite *GetUnassignedOrdersQueryHandlerTestSuite) createOrder(pincode string) *order.Order {
	address, err := kernel.NewAddress("12 MG Road", "Pune", "Maharashtra", pincode, "", "+91-9000000000")
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), "USB-C Cable", 299, 1, "")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, address, order.PaymentUPI)
	suite.Require().NoError(err)
	return o
}

func TestGetUnassignedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUnassignedOrdersQueryHandlerTestSuite))
}
