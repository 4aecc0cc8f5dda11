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

func newTestBookingService(db *gorm.DB, pub queue.Publisher) *bookingService {
	svc := NewBookingService(
		repositories.NewBookingRepository(db),
		repositories.NewGymClassRepository(db),
		pub,
	).(*bookingService)
	svc.now = func() time.Time { return time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestBookRejectsDuplicateActiveBooking(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	yoga := testutil.CreateSchedule(t, db, "Yoga", "Monday", "07:00")
	svc := newTestBookingService(db, queue.NewMemoryPublisher())

	first, err := svc.Book(ctx, acc.ID, yoga.ID, "2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, "Yoga", first.Schedule.ClassName)
	assert.Equal(t, string(db_models.BookingBooked), first.Status)

	_, err = svc.Book(ctx, acc.ID, yoga.ID, "2024-05-06")
	assert.ErrorIs(t, err, utils.ErrDuplicateBooking)

	// another day is a separate booking
	_, err = svc.Book(ctx, acc.ID, yoga.ID, "2024-05-13")
	require.NoError(t, err)
}

func TestBookValidatesInput(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	yoga := testutil.CreateSchedule(t, db, "Yoga", "Monday", "07:00")
	svc := newTestBookingService(db, nil)

	_, err := svc.Book(ctx, acc.ID, yoga.ID, "06/05/2024")
	assert.ErrorIs(t, err, utils.ErrInvalidDate)

	_, err = svc.Book(ctx, acc.ID, uuid.New(), "2024-05-06")
	assert.ErrorIs(t, err, utils.ErrScheduleNotFound)
}

func TestCancelKeepsRowAndIsOneWay(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	spin := testutil.CreateSchedule(t, db, "Spin", "Friday", "18:00")
	pub := queue.NewMemoryPublisher()
	svc := newTestBookingService(db, pub)

	booked, err := svc.Book(ctx, acc.ID, spin.ID, "2024-05-10")
	require.NoError(t, err)

	other := testutil.CreateAccount(t, db, "bob")
	_, err = svc.Cancel(ctx, other.ID, booked.ID)
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)

	cancelled, err := svc.Cancel(ctx, acc.ID, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.BookingCancelled), cancelled.Status)

	var row db_models.ClassBooking
	require.NoError(t, db.First(&row, "id = ?", booked.ID).Error)
	assert.Equal(t, db_models.BookingCancelled, row.Status)

	_, err = svc.Cancel(ctx, acc.ID, booked.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidBookingTransition)

	// a cancelled slot can be booked again
	_, err = svc.Book(ctx, acc.ID, spin.ID, "2024-05-10")
	require.NoError(t, err)

	events := pub.Events()
	require.Len(t, events, 3)
	assert.Equal(t, queue.EventBookingCancelled, events[1].Type)
}

func TestSetStatusCompletes(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	acc := testutil.CreateAccount(t, db, "alice")
	hiit := testutil.CreateSchedule(t, db, "HIIT", "Tuesday", "12:00")
	svc := newTestBookingService(db, nil)

	booked, err := svc.Book(ctx, acc.ID, hiit.ID, "2024-05-07")
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, booked.ID, "Lost")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	done, err := svc.SetStatus(ctx, booked.ID, db_models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.BookingCompleted), done.Status)

	_, err = svc.SetStatus(ctx, booked.ID, db_models.BookingCancelled)
	assert.ErrorIs(t, err, utils.ErrInvalidBookingTransition)

	upcoming, err := svc.Upcoming(ctx, acc.ID)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	history, err := svc.History(ctx, acc.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
