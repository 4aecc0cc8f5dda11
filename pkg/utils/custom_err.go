package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	RecordNotFound     = errors.New("record not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrForbidden       = errors.New("forbidden")
	ErrDuplicateRecord = errors.New("record already exists")

	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountInactive       = errors.New("account is inactive")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrPasswordRequired      = errors.New("password is required")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")

	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("no more stock available")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidQuantity   = errors.New("invalid quantity")

	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderNotFound        = errors.New("order not found")

	ErrPlanNotFound         = errors.New("plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")

	ErrScheduleNotFound         = errors.New("class schedule not found")
	ErrBookingNotFound          = errors.New("booking not found")
	ErrDuplicateBooking         = errors.New("already booked for this class on this date")
	ErrInvalidBookingTransition = errors.New("booking status cannot change")
	ErrInvalidDate              = errors.New("invalid date, expected YYYY-MM-DD")

	ErrWorkoutNotFound        = errors.New("workout not found")
	ErrPostNotFound           = errors.New("blog post not found")
	ErrNewsletterExists       = errors.New("email is already subscribed")
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrNotificationNotFound   = errors.New("notification not found")
	ErrMailUnavailable        = errors.New("mail service unavailable")

	ErrInvalidReportType   = errors.New("invalid report type")
	ErrInvalidExportFormat = errors.New("invalid export format")
	ErrInvalidStatus       = errors.New("invalid status")
)
