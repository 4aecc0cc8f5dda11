package request_models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gymfit/internal/models/db_models"
	"gymfit/pkg/utils"
)

// Admin requests replace every editable field of the target row in Apply.

func parseDay(s string) (int64, error) {
	t, err := utils.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

type AdminAccountRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	// Password is optional on update; the stored hash is kept when empty.
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user staff"`
	IsActive *bool  `json:"is_active"`
}

func (r AdminAccountRequest) Apply(m *db_models.Account) error {
	m.Username = r.Username
	m.Email = strings.ToLower(r.Email)
	m.FirstName = r.FirstName
	m.LastName = r.LastName
	m.Role = r.Role
	if m.Role == "" {
		m.Role = db_models.RoleUser
	}
	m.IsActive = boolOr(r.IsActive, true)

	if r.Password == "" {
		if m.PasswordHash == "" {
			return utils.ErrPasswordRequired
		}
		return nil
	}
	hash, err := utils.HashPassword(r.Password)
	if err != nil {
		return err
	}
	m.PasswordHash = hash
	return nil
}

type AdminCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (r AdminCategoryRequest) Apply(m *db_models.Category) error {
	m.Name = r.Name
	return nil
}

type AdminProductRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock" binding:"required,min=0"`
	Rating      float64         `json:"rating" binding:"min=0,max=5"`
}

func (r AdminProductRequest) Apply(m *db_models.Product) error {
	if r.Price.IsNegative() {
		return utils.ErrInvalidInput
	}
	m.CategoryID = r.CategoryID
	m.Name = r.Name
	m.Description = r.Description
	m.ImageURL = r.ImageURL
	m.Price = r.Price
	m.Stock = *r.Stock
	m.Rating = r.Rating
	return nil
}

type AdminPlanRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

func (r AdminPlanRequest) Apply(m *db_models.Plan) error {
	if r.Price.IsNegative() {
		return utils.ErrInvalidInput
	}
	m.Name = r.Name
	m.Price = r.Price
	m.Description = r.Description
	return nil
}

type AdminPlanFeatureRequest struct {
	PlanID  uuid.UUID `json:"plan_id" binding:"required"`
	Feature string    `json:"feature" binding:"required,max=200"`
}

func (r AdminPlanFeatureRequest) Apply(m *db_models.PlanFeature) error {
	m.PlanID = r.PlanID
	m.Feature = r.Feature
	return nil
}

type AdminTeamMemberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Position string `json:"position" binding:"max=100"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

func (r AdminTeamMemberRequest) Apply(m *db_models.TeamMember) error {
	m.Name = r.Name
	m.Position = r.Position
	m.Bio = r.Bio
	m.ImageURL = r.ImageURL
	return nil
}

type AdminGymClassRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (r AdminGymClassRequest) Apply(m *db_models.GymClass) error {
	m.Name = r.Name
	m.Description = r.Description
	m.ImageURL = r.ImageURL
	return nil
}

type AdminClassScheduleRequest struct {
	GymClassID uuid.UUID `json:"gym_class_id" binding:"required"`
	Day        string    `json:"day" binding:"required"`
	Time       string    `json:"time" binding:"required"`
}

func (r AdminClassScheduleRequest) Apply(m *db_models.ClassSchedule) error {
	if !db_models.ValidScheduleDay(r.Day) || !db_models.ValidScheduleTime(r.Time) {
		return utils.ErrInvalidInput
	}
	m.GymClassID = r.GymClassID
	m.Day = r.Day
	m.Time = r.Time
	return nil
}

type AdminBookingRequest struct {
	AccountID       uuid.UUID `json:"account_id" binding:"required"`
	ClassScheduleID uuid.UUID `json:"class_schedule_id" binding:"required"`
	BookingDate     string    `json:"booking_date" binding:"required"`
	Status          string    `json:"status"`
}

func (r AdminBookingRequest) Apply(m *db_models.ClassBooking) error {
	day, err := parseDay(r.BookingDate)
	if err != nil {
		return err
	}
	status := db_models.BookingStatus(r.Status)
	if status == "" {
		status = db_models.BookingBooked
	}
	if !status.Valid() {
		return utils.ErrInvalidStatus
	}
	m.AccountID = r.AccountID
	m.ClassScheduleID = r.ClassScheduleID
	m.BookingDate = day
	m.Status = status
	return nil
}

type AdminWorkoutRequest struct {
	AccountID uuid.UUID `json:"account_id" binding:"required"`
	Name      string    `json:"name" binding:"required,max=100"`
	Duration  int       `json:"duration" binding:"required,min=1"`
	Calories  int       `json:"calories" binding:"min=0"`
	Date      string    `json:"date" binding:"required"`
}

func (r AdminWorkoutRequest) Apply(m *db_models.Workout) error {
	day, err := parseDay(r.Date)
	if err != nil {
		return err
	}
	m.AccountID = r.AccountID
	m.Name = r.Name
	m.Duration = r.Duration
	m.Calories = r.Calories
	m.Date = day
	return nil
}

type AdminOrderRequest struct {
	AccountID     uuid.UUID       `json:"account_id" binding:"required"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Status        string          `json:"status" binding:"required"`
}

func (r AdminOrderRequest) Apply(m *db_models.Order) error {
	method := db_models.PaymentMethod(r.PaymentMethod)
	if !method.Valid() {
		return utils.ErrInvalidPaymentMethod
	}
	status := db_models.OrderStatus(r.Status)
	if !status.Valid() {
		return utils.ErrInvalidStatus
	}
	if r.Total.IsNegative() {
		return utils.ErrInvalidInput
	}
	m.AccountID = r.AccountID
	m.Total = r.Total
	m.PaymentMethod = method
	m.Status = status
	return nil
}

type AdminSubscriptionRequest struct {
	AccountID uuid.UUID `json:"account_id" binding:"required"`
	PlanID    uuid.UUID `json:"plan_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	// EndDate defaults to the standard period after StartDate.
	EndDate string `json:"end_date"`
	Active  *bool  `json:"active"`
}

func (r AdminSubscriptionRequest) Apply(m *db_models.PlanSubscription) error {
	start, err := parseDay(r.StartDate)
	if err != nil {
		return err
	}
	end := start + int64(db_models.SubscriptionPeriodDays*24*time.Hour/time.Second)
	if r.EndDate != "" {
		if end, err = parseDay(r.EndDate); err != nil {
			return err
		}
	}
	if end < start {
		return utils.ErrInvalidDate
	}
	m.AccountID = r.AccountID
	m.PlanID = r.PlanID
	m.StartDate = start
	m.EndDate = end
	m.Active = boolOr(r.Active, true)
	return nil
}

type AdminBlogPostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Author   string `json:"author" binding:"max=100"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

func (r AdminBlogPostRequest) Apply(m *db_models.BlogPost) error {
	m.Title = r.Title
	m.Author = r.Author
	m.Content = r.Content
	m.ImageURL = r.ImageURL
	return nil
}

type AdminNewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (r AdminNewsletterRequest) Apply(m *db_models.Newsletter) error {
	m.Email = strings.ToLower(r.Email)
	return nil
}

type AdminContactMessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (r AdminContactMessageRequest) Apply(m *db_models.ContactMessage) error {
	m.Name = r.Name
	m.Email = r.Email
	m.Message = r.Message
	return nil
}
