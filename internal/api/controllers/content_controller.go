package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type ContentController struct {
	content services.ContentService
}

func NewContentController(content services.ContentService) *ContentController {
	return &ContentController{content: content}
}

// Home godoc
// @Summary Landing page content
// @Description Featured classes, top-rated products, team, plans and latest posts
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router / [get]
func (h *ContentController) Home(c *gin.Context) {
	home, err := h.content.Home(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, home, "")
}

// Team godoc
// @Summary Trainers and staff
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /team [get]
func (h *ContentController) Team(c *gin.Context) {
	team, err := h.content.Team(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, team, "")
}

// Posts godoc
// @Summary Blog posts, newest first
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /blog [get]
func (h *ContentController) Posts(c *gin.Context) {
	posts, err := h.content.Posts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, posts, "")
}

// Post godoc
// @Summary One blog post
// @Tags Content
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /blog/{id} [get]
func (h *ContentController) Post(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	post, err := h.content.Post(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "")
}

// Classes godoc
// @Summary Gym classes with their schedules
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /classes [get]
func (h *ContentController) Classes(c *gin.Context) {
	classes, err := h.content.Classes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, classes, "")
}

// Timetable godoc
// @Summary Weekly class grid
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /timetable [get]
func (h *ContentController) Timetable(c *gin.Context) {
	grid, err := h.content.Timetable(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, grid, "")
}

// Contact godoc
// @Summary Send a contact message
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact form"
// @Success 200 {object} utils.APIResponse
// @Router /contact [post]
func (h *ContentController) Contact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.content.SubmitContact(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Your message has been sent successfully!")
}

// Newsletter godoc
// @Summary Newsletter signup
// @Description Accepts JSON or form bodies and answers without the envelope.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.NewsletterRequest true "Email"
// @Success 200 {object} response_models.AjaxMessageResponse
// @Failure 400 {object} response_models.AjaxMessageResponse
// @Router /newsletter [post]
func (h *ContentController) Newsletter(c *gin.Context) {
	var req request_models.NewsletterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response_models.AjaxMessageResponse{
			Success: false,
			Errors:  map[string]string{"email": "Enter a valid email address."},
		})
		return
	}

	err := h.content.SubscribeNewsletter(c.Request.Context(), req)
	switch {
	case errors.Is(err, utils.ErrNewsletterExists):
		c.JSON(http.StatusBadRequest, response_models.AjaxMessageResponse{
			Success: false,
			Errors:  map[string]string{"email": "This email is already subscribed."},
		})
		return
	case err != nil:
		c.JSON(utils.StatusFor(err), response_models.AjaxMessageResponse{Success: false, Message: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, response_models.AjaxMessageResponse{Success: true, Message: "Thank you for subscribing!"})
}

// ReplyToContact godoc
// @Summary Reply to a contact message by email
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact message ID"
// @Param request body request_models.ContactReplyRequest true "Reply"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /admin/contact-messages/{id}/reply [post]
func (h *ContentController) ReplyToContact(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.ContactReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.content.ReplyToContact(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Reply sent")
}
