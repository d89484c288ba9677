package queries

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		Conn: mockDB,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func Test_FilterOrdersQueryHandler_ScansSummaries(t *testing.T) {
	// Arrange
	db, mock := newMockGorm(t)
	orderDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "order_number", "order_date", "customer_name", "payment_method", "status", "amount",
	}).
		AddRow(2, "ORD-00002", orderDate, "Jane Doe", "card", "Pending", 150.0).
		AddRow(1, "ORD-00001", orderDate, "John Doe", "cod", "Delivered", 220.0)

	mock.ExpectQuery("SELECT (.+) FROM orders o").
		WithArgs(int64(7), int64(7), "", "", "", "").
		WillReturnRows(rows)

	handler := NewFilterOrdersQueryHandler(db)

	// Act
	summaries, err := handler.Handle(context.Background(), NewFilterOrdersQuery(7, "", ""))

	// Assert
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "ORD-00002", summaries[0].OrderNumber)
	assert.Equal(t, "Jane Doe", summaries[0].CustomerName)
	assert.InDelta(t, 150.0, summaries[0].Amount, 0.0001)
	assert.Equal(t, "Delivered", summaries[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_FilterOrdersQueryHandler_PassesFilters(t *testing.T) {
	// Arrange
	db, mock := newMockGorm(t)

	mock.ExpectQuery("SELECT (.+) FROM orders o").
		WithArgs(int64(0), int64(0), "Pending", "Pending", "doe", "doe").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_number", "order_date", "customer_name", "payment_method", "status", "amount",
		}))

	handler := NewFilterOrdersQueryHandler(db)

	// Act
	summaries, err := handler.Handle(context.Background(), NewFilterOrdersQuery(0, "Pending", "doe"))

	// Assert
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_FilterOrdersQuery_RejectsZeroValue(t *testing.T) {
	handler := NewFilterOrdersQueryHandler(nil)

	_, err := handler.Handle(context.Background(), FilterOrdersQuery{})

	assert.ErrorIs(t, err, ErrFilterOrdersQueryIsNotConstructed)
}
