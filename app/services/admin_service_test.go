package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vendora/app/models"
	"github.com/shashiranjanraj/vendora/app/services"
)

func TestDashboardAggregates(t *testing.T) {
	db := testDB(t)
	svc := services.NewAdminService(nil)
	orders := services.NewOrderService(nil)

	seedUser(t, db, "john@example.com", "x", false)
	seedUser(t, db, "admin@example.com", "x", true)
	lamp := seedProduct(t, db, "Desk Lamp", 34.99, 20)

	first, err := orders.Place(1, []services.CheckoutItem{{ProductID: lamp.ID, Quantity: 1}})
	require.NoError(t, err)
	second, err := orders.Place(1, []services.CheckoutItem{{ProductID: lamp.ID, Quantity: 2}})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(second.Number, models.OrderShipped)
	require.NoError(t, err)

	dash, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), dash.TotalUsers)
	assert.Equal(t, int64(2), dash.TotalOrders)
	assert.InDelta(t, first.Total+second.Total, dash.TotalRevenue, 0.001)
	assert.Equal(t, int64(1), dash.OrdersByStatus[models.OrderPending])
	assert.Equal(t, int64(1), dash.OrdersByStatus[models.OrderShipped])
}

func TestDashboardEmptyStore(t *testing.T) {
	testDB(t)
	svc := services.NewAdminService(nil)

	dash, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Zero(t, dash.TotalUsers)
	assert.Zero(t, dash.TotalOrders)
	assert.Zero(t, dash.TotalRevenue)
}

func TestUpdateStatus(t *testing.T) {
	db := testDB(t)
	svc := services.NewAdminService(nil)
	orders := services.NewOrderService(nil)

	chair := seedProduct(t, db, "Office Chair", 149.00, 3)
	placed, err := orders.Place(1, []services.CheckoutItem{{ProductID: chair.ID, Quantity: 1}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(placed.Number, models.OrderProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderProcessing, updated.Status)

	var got models.Order
	require.NoError(t, db.Where("number = ?", placed.Number).First(&got).Error)
	assert.Equal(t, models.OrderProcessing, got.Status)

	_, err = svc.UpdateStatus(placed.Number, "teleported")
	assert.ErrorIs(t, err, services.ErrUnknownStatus)

	_, err = svc.UpdateStatus("NOPE0000", models.OrderShipped)
	assert.Error(t, err)
}

func TestAdminOrdersPaginated(t *testing.T) {
	db := testDB(t)
	svc := services.NewAdminService(nil)
	orderSvc := services.NewOrderService(nil)

	pen := seedProduct(t, db, "Pen", 2.99, 100)
	for i := 0; i < 5; i++ {
		_, err := orderSvc.Place(1, []services.CheckoutItem{{ProductID: pen.ID, Quantity: 1}})
		require.NoError(t, err)
	}

	page, p, err := svc.Orders(1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(5), p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)

	last, _, err := svc.Orders(3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)
}
