package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/request_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	"gymfit/pkg/utils"
)

type replyRecorder struct {
	to, subject string
}

func (r *replyRecorder) SendMailToResetPassword(string, string) error { return nil }

func (r *replyRecorder) SendContactReply(to, _, subject, _ string) error {
	r.to, r.subject = to, subject
	return nil
}

func newTestContentService(db *gorm.DB, mail IMailService, pub queue.Publisher) ContentService {
	return NewContentService(
		repositories.NewContentRepository(db),
		repositories.NewGymClassRepository(db),
		nil,
		nil,
		mail,
		pub,
	)
}

func TestTimetableGrid(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateSchedule(t, db, "Yoga", "Monday", "06:00 AM")
	testutil.CreateSchedule(t, db, "Boxing", "Friday", "06:00 PM")
	testutil.CreateSchedule(t, db, "Yoga", "Sunday", "06:00 AM")

	tt, err := newTestContentService(db, nil, nil).Timetable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, db_models.ScheduleDays, tt.Days)
	require.Len(t, tt.Rows, len(db_models.ScheduleTimes))

	morning := tt.Rows[0]
	assert.Equal(t, "06:00 AM", morning.Time)
	assert.Equal(t, "Yoga", morning.Classes["Monday"])
	assert.Equal(t, "No Class", morning.Classes["Tuesday"])
	_, weekend := morning.Classes["Sunday"]
	assert.False(t, weekend)

	evening := tt.Rows[2]
	assert.Equal(t, "Boxing", evening.Classes["Friday"])
}

func TestNewsletterRejectsDuplicates(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newTestContentService(db, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.SubscribeNewsletter(ctx, request_models.NewsletterRequest{Email: "fan@example.com"}))
	err := svc.SubscribeNewsletter(ctx, request_models.NewsletterRequest{Email: " FAN@example.com"})
	assert.ErrorIs(t, err, utils.ErrNewsletterExists)
}

func TestContactSubmitAndReply(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	pub := queue.NewMemoryPublisher()

	require.NoError(t, newTestContentService(db, nil, pub).SubmitContact(ctx, request_models.ContactRequest{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "Do you have parking?",
	}))
	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, queue.EventContactReceived, events[0].Type)

	var msg db_models.ContactMessage
	require.NoError(t, db.First(&msg).Error)
	reply := request_models.ContactReplyRequest{Subject: "Parking", Message: "Yes, behind the gym."}

	err := newTestContentService(db, nil, nil).ReplyToContact(ctx, msg.ID, reply)
	assert.ErrorIs(t, err, utils.ErrMailUnavailable)

	mail := &replyRecorder{}
	svc := newTestContentService(db, mail, nil)
	assert.ErrorIs(t, svc.ReplyToContact(ctx, uuid.New(), reply), utils.ErrContactMessageNotFound)
	require.NoError(t, svc.ReplyToContact(ctx, msg.ID, reply))
	assert.Equal(t, "jo@example.com", mail.to)
	assert.Equal(t, "Parking", mail.subject)

	require.NoError(t, db.First(&msg, "id = ?", msg.ID).Error)
	assert.NotNil(t, msg.RepliedAt)
}
