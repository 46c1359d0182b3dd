package repository_test

import (
	"context"
	"errors"
	"regexp"
	"restaurant-platform/models"
	"restaurant-platform/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateWithNotification_SingleTransaction(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(gormDB)

	order := &models.Order{
		RestaurantID:  uuid.New(),
		OrderNumber:   "ORD-1700000000000-abc123",
		Items:         models.OrderLines{{Name: "Margherita", Price: 250, Quantity: 2}},
		CustomerPhone: "+995551234567",
		OrderType:     models.OrderTypePickup,
		TotalPrice:    500,
		Status:        models.OrderStatusPending,
	}
	notification := &models.Notification{
		RestaurantID: order.RestaurantID,
		Message:      "New order ORD-1700000000000-abc123",
		Type:         models.NotificationTypeNewOrder,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "notifications"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	err := repo.CreateWithNotification(context.Background(), order, notification)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, int64(42), notification.OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithNotification_RollsBackOnOrderFailure(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	err := repo.CreateWithNotification(context.Background(), &models.Order{
		OrderNumber: "ORD-1700000000000-abc123",
		Items:       models.OrderLines{{Name: "Cola", Price: 100, Quantity: 1}},
	}, &models.Notification{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBySlug_ScansItemsSnapshot(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(gormDB)

	restaurantID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "restaurant_id", "order_number", "items", "customer_phone",
		"order_type", "total_price", "status", "created_at", "updated_at",
	}).AddRow(
		1, restaurantID, "ORD-1700000000000-abc123",
		[]byte(`[{"name":"Margherita","price":250,"quantity":2}]`),
		"+995551234567", models.OrderTypePickup, 500, models.OrderStatusPending, now, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN restaurants ON restaurants.id = orders.restaurant_id`)).
		WithArgs("pizza-place").
		WillReturnRows(rows)

	orders, err := repo.ListBySlug(context.Background(), "pizza-place")
	assert.NoError(t, err)
	if assert.Len(t, orders, 1) {
		assert.Equal(t, "ORD-1700000000000-abc123", orders[0].OrderNumber)
		if assert.Len(t, orders[0].Items, 1) {
			assert.Equal(t, "Margherita", orders[0].Items[0].Name)
			assert.Equal(t, int64(250), orders[0].Items[0].Price)
		}
	}
}

func TestUpdateStatus_SingleColumn(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 42, models.OrderStatusReady)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
