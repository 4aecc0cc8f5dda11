package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

type BookingService interface {
	Book(ctx context.Context, accountID, scheduleID uuid.UUID, bookingDate string) (*response_models.BookingResponse, error)
	Cancel(ctx context.Context, accountID, bookingID uuid.UUID) (*response_models.BookingResponse, error)
	// SetStatus is the back-office transition (Booked to Cancelled or Completed).
	SetStatus(ctx context.Context, bookingID uuid.UUID, status db_models.BookingStatus) (*response_models.BookingResponse, error)
	Upcoming(ctx context.Context, accountID uuid.UUID) ([]response_models.BookingResponse, error)
	History(ctx context.Context, accountID uuid.UUID) ([]response_models.BookingResponse, error)
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	classRepo   repositories.GymClassRepository
	publisher   queue.Publisher
	now         func() time.Time
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	classRepo repositories.GymClassRepository,
	publisher queue.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *bookingService) Book(ctx context.Context, accountID, scheduleID uuid.UUID, bookingDate string) (*response_models.BookingResponse, error) {
	day, err := utils.ParseDate(bookingDate)
	if err != nil {
		return nil, err
	}

	schedule, err := s.classRepo.FindSchedule(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}

	booking := &db_models.ClassBooking{
		AccountID:       accountID,
		ClassScheduleID: schedule.ID,
		BookingDate:     day.Unix(),
		Status:          db_models.BookingBooked,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, domainError("book class", err)
	}
	booking.ClassSchedule = schedule

	className := ""
	if schedule.GymClass != nil {
		className = schedule.GymClass.Name
	}
	publishEvent(ctx, s.publisher, queue.NewEvent(
		queue.EventBookingCreated, accountID.String(), booking.ID.String(),
		fmt.Sprintf("%s booked for %s at %s", className, utils.FormatDate(booking.BookingDate), schedule.Time),
		map[string]any{"class": className, "date": utils.FormatDate(booking.BookingDate)},
	))

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) transition(ctx context.Context, booking *db_models.ClassBooking, next db_models.BookingStatus) (*response_models.BookingResponse, error) {
	if !booking.Status.CanTransition(next) {
		return nil, utils.ErrInvalidBookingTransition
	}
	ok, err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, next)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		// status changed underneath us
		return nil, utils.ErrInvalidBookingTransition
	}
	booking.Status = next

	if next == db_models.BookingCancelled {
		publishEvent(ctx, s.publisher, queue.NewEvent(
			queue.EventBookingCancelled, booking.AccountID.String(), booking.ID.String(),
			fmt.Sprintf("Booking for %s cancelled", utils.FormatDate(booking.BookingDate)),
			nil,
		))
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *bookingService) Cancel(ctx context.Context, accountID, bookingID uuid.UUID) (*response_models.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil || booking.AccountID != accountID {
		return nil, utils.ErrBookingNotFound
	}
	return s.transition(ctx, booking, db_models.BookingCancelled)
}

func (s *bookingService) SetStatus(ctx context.Context, bookingID uuid.UUID, status db_models.BookingStatus) (*response_models.BookingResponse, error) {
	if !status.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	return s.transition(ctx, booking, status)
}

func (s *bookingService) toResponses(bookings []db_models.ClassBooking) []response_models.BookingResponse {
	out := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

func (s *bookingService) Upcoming(ctx context.Context, accountID uuid.UUID) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.Upcoming(ctx, accountID, utils.StartOfDay(s.now()).Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.toResponses(bookings), nil
}

func (s *bookingService) History(ctx context.Context, accountID uuid.UUID) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.History(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.toResponses(bookings), nil
}
