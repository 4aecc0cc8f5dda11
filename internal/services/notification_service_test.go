package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymfit/internal/models/db_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

func TestNotificationsFromEvents(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	order := queue.NewEvent(queue.EventOrderCompleted, uuid.NewString(), uuid.NewString(), "Order of 79.50 paid by card", nil)
	require.NoError(t, svc.FromEvent(ctx, order))
	require.NoError(t, svc.FromEvent(ctx, queue.NewEvent("inventory.low", "", "p-1", "Belt is low", nil)))

	unread, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	page, err := svc.List(ctx, true, 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, DefaultAdminPageSize, page.PageSize)

	rows := page.Items.([]db_models.AdminNotification)
	titles := map[string]string{}
	for _, n := range rows {
		titles[n.Title] = n.Message
	}
	assert.Equal(t, "Order of 79.50 paid by card", titles["New order"])
	assert.Equal(t, "Belt is low", titles["inventory.low"])

	var stored db_models.AdminNotification
	require.NoError(t, db.Where("title = ?", "New order").First(&stored).Error)
	var decoded queue.Event
	require.NoError(t, json.Unmarshal(stored.Payload, &decoded))
	assert.Equal(t, order.ObjectID, decoded.ObjectID)

	require.NoError(t, svc.MarkRead(ctx, stored.ID))
	unread, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	n, err := svc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	assert.ErrorIs(t, svc.MarkRead(ctx, uuid.New()), utils.ErrNotificationNotFound)

	_, err = svc.List(ctx, false, 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}
