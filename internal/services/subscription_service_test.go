package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

func newTestSubscriptionService(db *gorm.DB, pub queue.Publisher, now time.Time) *subscriptionService {
	svc := NewSubscriptionService(
		repositories.NewSubscriptionRepository(db),
		repositories.NewPlanRepository(db),
		pub,
	).(*subscriptionService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSubscribeCreatesThirtyDaySubscriptionAndOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	plan := testutil.CreatePlan(t, db, "Premium", "49.99", "Sauna", "Personal trainer")

	pub := queue.NewMemoryPublisher()
	svc := newTestSubscriptionService(db, pub, time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC))

	resp, err := svc.Subscribe(ctx, acc.ID, plan.ID, "card")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", resp.Subscription.StartDate)
	assert.Equal(t, "2024-04-09", resp.Subscription.EndDate)
	assert.True(t, resp.Subscription.Active)
	assert.Equal(t, string(db_models.SubStatusActive), resp.Subscription.Status)
	require.NotNil(t, resp.Subscription.Plan)
	assert.Equal(t, "Premium", resp.Subscription.Plan.Name)

	var sub db_models.PlanSubscription
	require.NoError(t, db.First(&sub, "id = ?", resp.Subscription.ID).Error)
	assert.Equal(t, int64(db_models.SubscriptionPeriodDays*86400), sub.EndDate-sub.StartDate)

	var order db_models.Order
	require.NoError(t, db.First(&order, "id = ?", resp.OrderID).Error)
	assert.Equal(t, acc.ID, order.AccountID)
	assert.Equal(t, db_models.OrderStatusCompleted, order.Status)
	assert.Equal(t, db_models.PaymentCard, order.PaymentMethod)
	assert.Equal(t, "49.99", order.Total.StringFixed(2))

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, queue.EventSubscriptionCreated, events[0].Type)
}

func TestSubscribeInvalidPaymentMethodWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	acc := testutil.CreateAccount(t, db, "alice")
	plan := testutil.CreatePlan(t, db, "Basic", "19.00")
	svc := newTestSubscriptionService(db, nil, time.Now())

	_, err := svc.Subscribe(context.Background(), acc.ID, plan.ID, "bogus")
	assert.ErrorIs(t, err, utils.ErrInvalidPaymentMethod)

	var subs, orders int64
	require.NoError(t, db.Model(&db_models.PlanSubscription{}).Count(&subs).Error)
	require.NoError(t, db.Model(&db_models.Order{}).Count(&orders).Error)
	assert.Zero(t, subs)
	assert.Zero(t, orders)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	db := testutil.NewTestDB(t)
	acc := testutil.CreateAccount(t, db, "alice")
	svc := newTestSubscriptionService(db, nil, time.Now())

	_, err := svc.Subscribe(context.Background(), acc.ID, uuid.New(), "upi")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestSubscriptionStatusIsDerivedAtReadTime(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	plan := testutil.CreatePlan(t, db, "Basic", "19.00")

	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestSubscriptionService(db, nil, start)
	resp, err := svc.Subscribe(ctx, acc.ID, plan.ID, "card")
	require.NoError(t, err)

	svc.now = func() time.Time { return start.AddDate(0, 2, 0) }
	got, err := svc.GetSubscription(ctx, acc.ID, resp.Subscription.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)
	assert.Equal(t, string(db_models.SubStatusExpired), got.Status)

	other := testutil.CreateAccount(t, db, "bob")
	_, err = svc.GetSubscription(ctx, other.ID, resp.Subscription.ID)
	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
}
