package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/request_models"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingService
	workoutService services.WorkoutService
}

func NewBookingController(bookingService services.BookingService, workoutService services.WorkoutService) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		workoutService: workoutService,
	}
}

// Book godoc
// @Summary Book a class slot on a date
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.BookClassRequest true "Schedule and date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) Book(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.BookClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.Book(c.Request.Context(), who.AccountID, req.ScheduleID, req.BookingDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Class booked successfully")
}

// Cancel godoc
// @Summary Cancel an own booking
// @Description The booking is kept with status Cancelled.
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/{id}/cancel [post]
func (b *BookingController) Cancel(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	booking, err := b.bookingService.Cancel(c.Request.Context(), who.AccountID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking cancelled")
}

// Upcoming godoc
// @Summary Booked classes from today on
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /bookings/upcoming [get]
func (b *BookingController) Upcoming(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	rows, err := b.bookingService.Upcoming(c.Request.Context(), who.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Upcoming bookings retrieved successfully")
}

// History godoc
// @Summary All bookings of the current account
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /bookings [get]
func (b *BookingController) History(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	rows, err := b.bookingService.History(c.Request.Context(), who.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Bookings retrieved successfully")
}

// SetStatus godoc
// @Summary Move a booking to Cancelled or Completed
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body object true "{\"status\": \"Completed\"}"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/class-bookings/{id}/status [post]
func (b *BookingController) SetStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status db_models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking updated")
}

// ListWorkouts godoc
// @Summary Workout log, newest date first
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /workouts [get]
func (b *BookingController) ListWorkouts(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	rows, err := b.workoutService.List(c.Request.Context(), who.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Workouts retrieved successfully")
}

// CreateWorkout godoc
// @Summary Log a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateWorkoutRequest true "Workout"
// @Success 200 {object} utils.APIResponse
// @Router /workouts [post]
func (b *BookingController) CreateWorkout(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	w, err := b.workoutService.Create(c.Request.Context(), who.AccountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, w, "Workout added")
}

// DeleteWorkout godoc
// @Summary Delete an own workout
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /workouts/{id} [delete]
func (b *BookingController) DeleteWorkout(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := b.workoutService.Delete(c.Request.Context(), who.AccountID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Workout deleted")
}
