package queries_test

import (
	"context"
	"testing"
	"time"

	"ecom/internal/adapters/out/postgres/customerrepo"
	"ecom/internal/adapters/out/postgres/invoicerepo"
	"ecom/internal/adapters/out/postgres/orderrepo"
	"ecom/internal/adapters/out/postgres/productrepo"
	"ecom/internal/core/application/usecases/queries"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderQueriesIntegrationTestSuite exercises the order read models against a
// real PostgreSQL instance with rows seeded through the persistence DTOs.
type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.LineDTO{},
		&invoicerepo.InvoiceDTO{},
	))
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, addresses, order_products, customers, products, invoices",
	).Error)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByNumber_FullAggregate() {
	ctx := context.Background()
	customerID := suite.seedCustomer("Jane", "Doe", "jane@example.com")
	productID := suite.seedProduct("Widget", "widget")
	orderID := suite.seedOrder("ORD-00001", customerID, 1, "Pending", 170)
	suite.seedAddress(orderID, "Baker Street")
	suite.seedLine(orderID, productID, 2, 30, 170)

	handler := queries.NewGetOrderByNumberQueryHandler(suite.db)
	query, err := queries.NewGetOrderByNumberQuery(suite.number(1), 1)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("ORD-00001", response.OrderNumber)
	suite.Equal("Pending", response.Status)
	suite.InDelta(170.0, response.Amount, 0.0001)
	suite.Equal("Jane", response.Customer.FirstName)
	suite.Equal("jane@example.com", response.Customer.Email)
	suite.Equal("Baker Street", response.Address.Street)
	suite.Require().Len(response.Lines, 1)
	suite.Equal("Widget", response.Lines[0].ProductName)
	suite.Equal(2, response.Lines[0].Quantity)
	suite.InDelta(170.0, response.Lines[0].Subtotal, 0.0001)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByNumber_ScopedToUser() {
	ctx := context.Background()
	customerID := suite.seedCustomer("Jane", "Doe", "jane@example.com")
	orderID := suite.seedOrder("ORD-00002", customerID, 1, "Pending", 50)
	suite.seedAddress(orderID, "Baker Street")

	handler := queries.NewGetOrderByNumberQueryHandler(suite.db)

	foreign, err := queries.NewGetOrderByNumberQuery(suite.number(2), 2)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, foreign)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	unscoped, err := queries.NewGetOrderByNumberQuery(suite.number(2), 0)
	suite.Require().NoError(err)
	response, err := handler.Handle(ctx, unscoped)
	suite.Require().NoError(err)
	suite.Equal("ORD-00002", response.OrderNumber)
}

func (suite *OrderQueriesIntegrationTestSuite) TestFilterOrders_ByStatusAndCustomerName() {
	ctx := context.Background()
	janeID := suite.seedCustomer("Jane", "Doe", "jane@example.com")
	bobID := suite.seedCustomer("Bob", "Smith", "bob@example.com")
	suite.seedOrder("ORD-00001", janeID, 1, "Pending", 100)
	suite.seedOrder("ORD-00002", janeID, 1, "Delivered", 200)
	suite.seedOrder("ORD-00003", bobID, 1, "Pending", 300)

	handler := queries.NewFilterOrdersQueryHandler(suite.db)

	pending, err := handler.Handle(ctx, queries.NewFilterOrdersQuery(0, "Pending", ""))
	suite.Require().NoError(err)
	suite.Len(pending, 2)

	janes, err := handler.Handle(ctx, queries.NewFilterOrdersQuery(0, "", "jane d"))
	suite.Require().NoError(err)
	suite.Require().Len(janes, 2)
	suite.Equal("Jane Doe", janes[0].CustomerName)

	all, err := handler.Handle(ctx, queries.NewFilterOrdersQuery(0, "", ""))
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	// Newest first.
	suite.Equal("ORD-00003", all[0].OrderNumber)
}

func (suite *OrderQueriesIntegrationTestSuite) TestListShippingOrders_ExcludesCancelled() {
	ctx := context.Background()
	customerID := suite.seedCustomer("Jane", "Doe", "jane@example.com")
	shippableID := suite.seedOrder("ORD-00001", customerID, 1, "Processing", 100)
	cancelledID := suite.seedOrder("ORD-00002", customerID, 2, "Cancelled", 200)
	suite.seedAddress(shippableID, "Baker Street")
	suite.seedAddress(cancelledID, "Elm Street")

	handler := queries.NewListShippingOrdersQueryHandler(suite.db)

	shipping, err := handler.Handle(ctx, queries.NewListShippingOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(shipping, 1)
	suite.Equal("ORD-00001", shipping[0].OrderNumber)
	suite.Equal("Jane Doe", shipping[0].CustomerName)
	suite.Equal("Baker Street", shipping[0].Address.Street)
}

func (suite *OrderQueriesIntegrationTestSuite) TestUnbilledDeliveredOrders() {
	ctx := context.Background()
	customerID := suite.seedCustomer("Jane", "Doe", "jane@example.com")
	unbilledID := suite.seedOrder("ORD-00001", customerID, 1, "Delivered", 100)
	billedID := suite.seedOrder("ORD-00002", customerID, 1, "Delivered", 200)
	suite.seedOrder("ORD-00003", customerID, 1, "Pending", 300)

	suite.Require().NoError(suite.db.Create(&invoicerepo.InvoiceDTO{
		InvoiceNumber: "INV-00002",
		CustomerName:  "Jane Doe",
		IssuedDate:    time.Now().UTC(),
		Amount:        200,
		Status:        "Unpaid",
		OrderID:       &billedID,
	}).Error)

	handler := queries.NewUnbilledDeliveredOrdersQueryHandler(suite.db)

	unbilled, err := handler.Handle(ctx, queries.NewUnbilledDeliveredOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(unbilled, 1)
	suite.Equal(unbilledID, unbilled[0].ID)
	suite.Equal("Jane Doe", unbilled[0].CustomerName)
	suite.InDelta(100.0, unbilled[0].Amount, 0.0001)
}

func (suite *OrderQueriesIntegrationTestSuite) seedCustomer(first, last, email string) int64 {
	dto := customerrepo.CustomerDTO{FirstName: first, LastName: last, Email: email}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *OrderQueriesIntegrationTestSuite) seedProduct(name, permalink string) int64 {
	dto := productrepo.ProductDTO{Name: name, Permalink: permalink, RegularPrice: 100}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *OrderQueriesIntegrationTestSuite) seedOrder(
	number string, customerID, userID int64, status string, amount float64,
) int64 {
	dto := orderrepo.OrderDTO{
		OrderNumber:   number,
		CustomerID:    customerID,
		UserID:        userID,
		OrderDate:     time.Now().UTC(),
		PaymentMethod: "card",
		Status:        status,
		Amount:        amount,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *OrderQueriesIntegrationTestSuite) seedAddress(orderID int64, street string) {
	dto := orderrepo.AddressDTO{
		OrderID: orderID,
		Street:  street,
		City:    "London",
		Country: "UK",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *OrderQueriesIntegrationTestSuite) seedLine(
	orderID, productID int64, quantity int, discount, subtotal float64,
) {
	dto := orderrepo.LineDTO{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		Discount:  discount,
		Subtotal:  subtotal,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *OrderQueriesIntegrationTestSuite) number(sequence int64) kernel.OrderNumber {
	number, err := kernel.NewOrderNumber(sequence)
	suite.Require().NoError(err)
	return number
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
