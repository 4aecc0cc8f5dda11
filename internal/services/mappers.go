package services

import (
	"time"

	"github.com/shopspring/decimal"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/response_models"
	"gymfit/pkg/utils"
)

func toAccountResponse(a *db_models.Account) response_models.AccountResponse {
	resp := response_models.AccountResponse{
		ID:         a.ID,
		Username:   a.Username,
		Email:      a.Email,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Role:       a.Role,
		IsActive:   a.IsActive,
		DateJoined: utils.FormatDateTime(a.CreatedAt),
	}
	if a.LastLoginAt != nil {
		resp.LastLoginAt = utils.FormatDateTime(*a.LastLoginAt)
	}
	return resp
}

func toProfileResponse(a *db_models.Account) *response_models.ProfileResponse {
	resp := &response_models.ProfileResponse{Account: toAccountResponse(a)}
	if p := a.Profile; p != nil {
		resp.Mobile = p.Mobile
		resp.Address = p.Address
		resp.Gender = string(p.Gender)
		if p.DateOfBirth != nil {
			resp.DateOfBirth = utils.FormatDate(*p.DateOfBirth)
		}
	}
	return resp
}

func toProductResponse(p *db_models.Product) response_models.ProductResponse {
	resp := response_models.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Stock:       p.Stock,
		Rating:      p.Rating,
	}
	if p.Category != nil {
		resp.Category = &response_models.CategoryResponse{ID: p.Category.ID, Name: p.Category.Name}
	}
	return resp
}

func toProductResponses(products []db_models.Product) []response_models.ProductResponse {
	out := make([]response_models.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toPlanResponse(p *db_models.Plan) response_models.SubscriptionPlan {
	features := make([]string, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, f.Feature)
	}
	return response_models.SubscriptionPlan{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Features:    features,
	}
}

func toSubscriptionResponse(s *db_models.PlanSubscription, today time.Time) response_models.SubscriptionResponse {
	resp := response_models.SubscriptionResponse{
		ID:        s.ID,
		StartDate: utils.FormatDate(s.StartDate),
		EndDate:   utils.FormatDate(s.EndDate),
		Active:    s.Active,
		Status:    string(s.EffectiveStatus(today)),
	}
	if s.Plan != nil {
		plan := toPlanResponse(s.Plan)
		resp.Plan = &plan
	}
	return resp
}

func toScheduleResponse(s *db_models.ClassSchedule) response_models.ScheduleResponse {
	resp := response_models.ScheduleResponse{
		ID:      s.ID,
		ClassID: s.GymClassID,
		Day:     s.Day,
		Time:    s.Time,
	}
	if s.GymClass != nil {
		resp.ClassName = s.GymClass.Name
	}
	return resp
}

func toClassResponse(c *db_models.GymClass) response_models.GymClassResponse {
	schedules := make([]response_models.ScheduleResponse, 0, len(c.Schedules))
	for i := range c.Schedules {
		s := toScheduleResponse(&c.Schedules[i])
		s.ClassName = c.Name
		schedules = append(schedules, s)
	}
	return response_models.GymClassResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Schedules:   schedules,
	}
}

func toBookingResponse(b *db_models.ClassBooking) response_models.BookingResponse {
	resp := response_models.BookingResponse{
		ID:          b.ID,
		BookingDate: utils.FormatDate(b.BookingDate),
		Status:      string(b.Status),
		CreatedAt:   utils.FormatDateTime(b.CreatedAt),
	}
	if b.ClassSchedule != nil {
		resp.Schedule = toScheduleResponse(b.ClassSchedule)
	} else {
		resp.Schedule.ID = b.ClassScheduleID
	}
	return resp
}

func toOrderResponse(o *db_models.Order) response_models.OrderResponse {
	items := make([]response_models.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		line := response_models.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			LineTotal: it.LineTotal(),
		}
		if it.Product != nil {
			line.Name = it.Product.Name
		}
		items = append(items, line)
	}
	return response_models.OrderResponse{
		ID:            o.ID,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		CreatedAt:     utils.FormatDateTime(o.CreatedAt),
		Items:         items,
	}
}

func toWorkoutResponse(w *db_models.Workout) response_models.WorkoutResponse {
	return response_models.WorkoutResponse{
		ID:       w.ID,
		Name:     w.Name,
		Duration: w.Duration,
		Calories: w.Calories,
		Date:     utils.FormatDate(w.Date),
	}
}

func toPostResponse(p *db_models.BlogPost, withContent bool) response_models.BlogPostResponse {
	resp := response_models.BlogPostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.Author,
		ImageURL:  p.ImageURL,
		CreatedAt: utils.FormatDateTime(p.CreatedAt),
	}
	if withContent {
		resp.Content = p.Content
	}
	return resp
}

func toTeamResponse(m *db_models.TeamMember) response_models.TeamMemberResponse {
	return response_models.TeamMemberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Position: m.Position,
		Bio:      m.Bio,
		ImageURL: m.ImageURL,
	}
}

func lineTotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}
