package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit/internal/models/db_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	acc := testutil.CreateAccount(t, db, "alice")
	svc := NewCheckoutService(repositories.NewOrderRepository(db), queue.NewMemoryPublisher())

	_, err := svc.Checkout(context.Background(), acc.ID, "card")
	assert.ErrorIs(t, err, utils.ErrEmptyCart)

	var orders int64
	require.NoError(t, db.Model(&db_models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	db := testutil.NewTestDB(t)
	acc := testutil.CreateAccount(t, db, "alice")
	svc := NewCheckoutService(repositories.NewOrderRepository(db), nil)

	_, err := svc.Checkout(context.Background(), acc.ID, "cash")
	assert.ErrorIs(t, err, utils.ErrInvalidPaymentMethod)
}

func TestCheckoutUsesCurrentPricesAndEmptiesCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	cat := testutil.CreateCategory(t, db, "Gear")
	belt := testutil.CreateProduct(t, db, cat.ID, "Belt", "40.00", 5)
	rope := testutil.CreateProduct(t, db, cat.ID, "Rope", "9.50", 5)

	carts := repositories.NewCartRepository(db)
	_, err := carts.AddItem(ctx, acc.ID, belt.ID)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, acc.ID, belt.ID)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, acc.ID, rope.ID)
	require.NoError(t, err)

	// price changes after the item went into the cart
	require.NoError(t, db.Model(belt).Update("price", decimal.RequireFromString("35.00")).Error)

	pub := queue.NewMemoryPublisher()
	svc := NewCheckoutService(repositories.NewOrderRepository(db), pub)

	order, err := svc.Checkout(ctx, acc.ID, " UPI ")
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("79.50")), order.Total.String())
	assert.Equal(t, string(db_models.PaymentUPI), order.PaymentMethod)
	assert.Equal(t, string(db_models.OrderStatusCompleted), order.Status)
	require.Len(t, order.Items, 2)
	lines := map[string]int{}
	for _, it := range order.Items {
		lines[it.Name] = it.Quantity
		if it.Name == "Belt" {
			assert.True(t, it.Price.Equal(decimal.RequireFromString("35")), it.Price.String())
			assert.True(t, it.LineTotal.Equal(decimal.RequireFromString("70")), it.LineTotal.String())
		}
	}
	assert.Equal(t, map[string]int{"Belt": 2, "Rope": 1}, lines)

	n, err := carts.CountItems(ctx, acc.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	// checkout is stock neutral
	var stock int
	require.NoError(t, db.Model(&db_models.Product{}).Select("stock").Where("id = ?", belt.ID).Scan(&stock).Error)
	assert.Equal(t, 3, stock)

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, queue.EventOrderCompleted, events[0].Type)
	assert.Equal(t, order.ID.String(), events[0].ObjectID)

	orders, err := svc.ListOrders(ctx, acc.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
