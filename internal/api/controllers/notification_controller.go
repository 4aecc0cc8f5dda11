package controllers

import (
	"github.com/gin-gonic/gin"

	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type NotificationController struct {
	notifications services.NotificationService
}

func NewNotificationController(notifications services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// List godoc
// @Summary Admin notifications, newest first
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread rows"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.APIResponse
// @Router /admin/notifications [get]
func (n *NotificationController) List(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	rows, err := n.notifications.List(c.Request.Context(), c.Query("unread") == "true", page, 0)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "")
}

// UnreadCount godoc
// @Summary Number of unread notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/notifications/unread-count [get]
func (n *NotificationController) UnreadCount(c *gin.Context) {
	count, err := n.notifications.UnreadCount(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"count": count}, "")
}

// MarkRead godoc
// @Summary Mark one notification read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/notifications/{id}/read [post]
func (n *NotificationController) MarkRead(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := n.notifications.MarkRead(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// MarkAllRead godoc
// @Summary Mark every notification read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/notifications/read-all [post]
func (n *NotificationController) MarkAllRead(c *gin.Context) {
	updated, err := n.notifications.MarkAllRead(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"updated": updated}, "Notifications marked as read")
}
