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
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

func newTestAdminResources(db *gorm.DB) *AdminResources {
	return NewAdminResources(
		db,
		repositories.NewAccountRepository(db),
		repositories.NewActivityRepository(db),
		repositories.NewNotificationRepository(db),
	)
}

func activitiesFor(t *testing.T, db *gorm.DB, model string) []db_models.AdminActivity {
	t.Helper()
	var rows []db_models.AdminActivity
	require.NoError(t, db.Where("model_affected = ?", model).Order("created_at ASC").Find(&rows).Error)
	return rows
}

func TestAdminCategoryCrudRecordsActivity(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	staff := testutil.CreateAccount(t, db, "staff")
	actor := Actor{AccountID: staff.ID, IP: "10.0.0.7"}
	admin := newTestAdminResources(db)

	created, err := admin.Categories.Create(ctx, actor, func(c *db_models.Category) error {
		c.Name = "Recovery"
		return nil
	})
	require.NoError(t, err)

	updated, err := admin.Categories.Update(ctx, actor, created.ID, func(c *db_models.Category) error {
		c.Name = "Recovery & Mobility"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Recovery & Mobility", updated.Name)

	require.NoError(t, admin.Categories.Delete(ctx, actor, created.ID))
	assert.ErrorIs(t, admin.Categories.Delete(ctx, actor, created.ID), utils.RecordNotFound)

	_, err = admin.Categories.Get(ctx, created.ID)
	assert.ErrorIs(t, err, utils.RecordNotFound)

	rows := activitiesFor(t, db, "Category")
	require.Len(t, rows, 3)
	actions := []string{rows[0].Action, rows[1].Action, rows[2].Action}
	assert.ElementsMatch(t, []string{ActionCreate, ActionUpdate, ActionDelete}, actions)
	for _, r := range rows {
		assert.Equal(t, staff.ID, r.AccountID)
		assert.Equal(t, "10.0.0.7", r.IPAddress)
		assert.Equal(t, created.ID.String(), r.ObjectID)
	}

	// categories do not notify
	var notes int64
	require.NoError(t, db.Model(&db_models.AdminNotification{}).Count(&notes).Error)
	assert.Zero(t, notes)
}

func TestAdminAccountCreateAddsProfileAndRejectsClash(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	testutil.CreateAccount(t, db, "alice")
	admin := newTestAdminResources(db)
	actor := Actor{AccountID: uuid.New()}

	acc, err := admin.Accounts.Create(ctx, actor, func(a *db_models.Account) error {
		a.Username = "coach"
		a.Email = "coach@example.com"
		a.Role = db_models.RoleStaff
		a.IsActive = true
		return nil
	})
	require.NoError(t, err)

	var profiles int64
	require.NoError(t, db.Model(&db_models.Profile{}).Where("account_id = ?", acc.ID).Count(&profiles).Error)
	assert.EqualValues(t, 1, profiles)

	_, err = admin.Accounts.Create(ctx, actor, func(a *db_models.Account) error {
		a.Username = "alice"
		a.Email = "other@example.com"
		a.Role = db_models.RoleUser
		return nil
	})
	assert.ErrorIs(t, err, utils.ErrUsernameAlreadyExists)

	_, err = admin.Accounts.Create(ctx, actor, func(a *db_models.Account) error {
		a.Username = "alice2"
		a.Email = "ALICE@example.com"
		a.Role = db_models.RoleUser
		return nil
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	// account mutations raise a notification
	var notes int64
	require.NoError(t, db.Model(&db_models.AdminNotification{}).Count(&notes).Error)
	assert.EqualValues(t, 1, notes)
}

func TestAdminBookingRules(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	alice := testutil.CreateAccount(t, db, "alice")
	yoga := testutil.CreateSchedule(t, db, "Yoga", "Monday", "07:00")
	admin := newTestAdminResources(db)
	actor := Actor{AccountID: uuid.New()}
	day := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC).Unix()

	book := func(b *db_models.ClassBooking) error {
		b.AccountID = alice.ID
		b.ClassScheduleID = yoga.ID
		b.BookingDate = day
		b.Status = db_models.BookingBooked
		return nil
	}

	first, err := admin.Bookings.Create(ctx, actor, book)
	require.NoError(t, err)

	_, err = admin.Bookings.Create(ctx, actor, book)
	assert.ErrorIs(t, err, utils.ErrDuplicateBooking)

	_, err = admin.Bookings.Create(ctx, actor, func(b *db_models.ClassBooking) error {
		require.NoError(t, book(b))
		b.ClassScheduleID = uuid.New()
		return nil
	})
	assert.ErrorIs(t, err, utils.ErrScheduleNotFound)

	done, err := admin.Bookings.Update(ctx, actor, first.ID, func(b *db_models.ClassBooking) error {
		b.Status = db_models.BookingCompleted
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingCompleted, done.Status)

	_, err = admin.Bookings.Update(ctx, actor, first.ID, func(b *db_models.ClassBooking) error {
		b.Status = db_models.BookingBooked
		return nil
	})
	assert.ErrorIs(t, err, utils.ErrInvalidBookingTransition)
}

func TestAdminListRequiresValidPage(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := newTestAdminResources(db)
	for _, name := range []string{"Yoga", "Boxing", "Pilates"} {
		testutil.CreateCategory(t, db, name)
	}

	_, _, err := admin.Categories.List(context.Background(), repositories.ListQuery{Page: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	items, total, err := admin.Categories.List(context.Background(), repositories.ListQuery{Page: 1, Search: "o"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Boxing", items[0].Name)
	assert.Equal(t, "Yoga", items[1].Name)
}
