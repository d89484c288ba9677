package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ecom/internal/adapters/out/postgres/invoicerepo"
	"ecom/internal/adapters/out/postgres/orderrepo"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/domain/model/order"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite exercises GormOrderRepository against a
// real PostgreSQL instance, including the unique order number constraint the
// creation workflow relies on.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{
		TranslateError: true,
	})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.LineDTO{},
		&invoicerepo.InvoiceDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, addresses, order_products, invoices").Error,
	)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsHeaderAndAddress() {
	ctx := context.Background()
	testOrder := suite.newTestOrder(1)

	stored, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Positive(stored.ID())
	suite.Equal("ORD-00001", stored.Number().String())
	suite.Equal(order.Pending, stored.Status())
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.AddressDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsAlreadyExists() {
	ctx := context.Background()

	_, err := suite.repository.Add(ctx, suite.newTestOrder(7))
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, suite.newTestOrder(7))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddLine_Update_GetByNumber_RoundTrip() {
	ctx := context.Background()

	stored, err := suite.repository.Add(ctx, suite.newTestOrder(2))
	suite.Require().NoError(err)

	lineOne, err := order.NewLine(11, 2, 30, 170)
	suite.Require().NoError(err)
	lineTwo, err := order.NewLine(12, 1, 0, 50)
	suite.Require().NoError(err)

	suite.Require().NoError(stored.AddLine(lineOne))
	suite.Require().NoError(stored.AddLine(lineTwo))
	suite.Require().NoError(suite.repository.AddLine(ctx, stored.ID(), lineOne))
	suite.Require().NoError(suite.repository.AddLine(ctx, stored.ID(), lineTwo))
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	retrieved, err := suite.repository.GetByNumber(ctx, stored.Number())
	suite.Require().NoError(err)

	suite.Equal(stored.ID(), retrieved.ID())
	suite.InDelta(220.0, retrieved.Amount(), 0.0001)
	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal(int64(11), retrieved.Lines()[0].ProductID())
	suite.Equal(int64(12), retrieved.Lines()[1].ProductID())
	suite.Equal("Baker Street", retrieved.Address().Street())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByID_NonExistent_ReturnsNotFound() {
	_, err := suite.repository.GetByID(context.Background(), 9999)

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	ghost, err := order.RestoreOrder(
		4242, suite.number(42), 1, 1, time.Now().UTC(),
		"card", order.Pending, 0, suite.address(), nil,
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, ghost)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMaxID_TracksInserts() {
	ctx := context.Background()

	maxID, err := suite.repository.MaxID(ctx)
	suite.Require().NoError(err)
	suite.Zero(maxID)

	stored, err := suite.repository.Add(ctx, suite.newTestOrder(3))
	suite.Require().NoError(err)

	maxID, err = suite.repository.MaxID(ctx)
	suite.Require().NoError(err)
	suite.Equal(stored.ID(), maxID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesAndDetachesInvoice() {
	ctx := context.Background()

	stored, err := suite.repository.Add(ctx, suite.newTestOrder(4))
	suite.Require().NoError(err)

	line, err := order.NewLine(11, 1, 0, 50)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddLine(ctx, stored.ID(), line))

	orderID := stored.ID()
	suite.Require().NoError(suite.db.Create(&invoicerepo.InvoiceDTO{
		InvoiceNumber: "INV-00004",
		CustomerName:  "Ada Lovelace",
		IssuedDate:    time.Now().UTC(),
		Amount:        50,
		Status:        "Unpaid",
		OrderID:       &orderID,
	}).Error)

	suite.Require().NoError(suite.repository.Delete(ctx, orderID))

	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&orderrepo.AddressDTO{}, 0)
	suite.assertCount(&orderrepo.LineDTO{}, 0)

	var invoiceDTO invoicerepo.InvoiceDTO
	suite.Require().NoError(suite.db.First(&invoiceDTO, "invoice_number = ?", "INV-00004").Error)
	suite.Nil(invoiceDTO.OrderID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistent_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), 9999)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder(sequence int64) *order.Order {
	testOrder, err := order.NewOrder(
		suite.number(sequence), 1, 1, time.Now().UTC(), "card", suite.address(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) number(sequence int64) kernel.OrderNumber {
	number, err := kernel.NewOrderNumber(sequence)
	suite.Require().NoError(err)
	return number
}

func (suite *OrderRepositoryIntegrationTestSuite) address() order.Address {
	address, err := order.NewAddress("221B", "1", "221", "Baker Street", "London", "UK")
	suite.Require().NoError(err)
	return address
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
