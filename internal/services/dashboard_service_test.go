package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit/internal/models/db_models"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2024, time.June, 30, 18, 45, 0, 0, time.UTC)

	rng := ResolveDateRange("", "garbage", now)
	assert.Equal(t, "2024-06-01", rng.From.Format(utils.DateLayout))
	assert.Equal(t, "2024-06-30", rng.To.Format(utils.DateLayout))
	assert.Equal(t, 30, rng.Days())

	rng = ResolveDateRange("2024-02-10", "2024-02-01", now)
	assert.Equal(t, "2024-02-01", rng.From.Format(utils.DateLayout))
	assert.Equal(t, "2024-02-10", rng.To.Format(utils.DateLayout))

	w := rng.Unix()
	assert.Equal(t, testutil.At(2024, time.February, 1, 0), w.Start)
	assert.Equal(t, testutil.At(2024, time.February, 11, 0)-1, w.End)
}

func TestSalesStatsAndOverview(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	alice := testutil.CreateAccount(t, db, "alice")

	seedOrder(t, db, alice.ID, "10", db_models.OrderStatusCompleted, testutil.At(2024, time.June, 28, 9))
	seedOrder(t, db, alice.ID, "20.5", db_models.OrderStatusCompleted, testutil.At(2024, time.June, 29, 9))
	seedOrder(t, db, alice.ID, "99", db_models.OrderStatusCompleted, testutil.At(2023, time.August, 15, 9))

	svc := NewDashboardService(
		repositories.NewDashboardRepository(db),
		repositories.NewReportRepository(db),
		repositories.NewNotificationRepository(db),
	).(*dashboardService)
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	stats, err := svc.SalesStats(ctx, LastDays(now, 7))
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Count)
	assert.True(t, stats.Total.Equal(decimal.RequireFromString("30.5")), stats.Total.String())
	assert.True(t, stats.Average.Equal(decimal.RequireFromString("15.25")), stats.Average.String())
	assert.Len(t, stats.Daily, 2)

	// unsupported windows fall back to 30 days
	overview, err := svc.Overview(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 30, overview.Range.Days)
	assert.EqualValues(t, 2, overview.OrderCount)

	overview, err = svc.Overview(ctx, 365)
	require.NoError(t, err)
	assert.EqualValues(t, 3, overview.OrderCount)
}
