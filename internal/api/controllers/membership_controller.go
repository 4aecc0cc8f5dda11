package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymfit/internal/models/request_models"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type MembershipController struct {
	planService         services.PlanServiceInterface
	subscriptionService services.SubscriptionService
}

func NewMembershipController(planService services.PlanServiceInterface, subscriptionService services.SubscriptionService) *MembershipController {
	return &MembershipController{
		planService:         planService,
		subscriptionService: subscriptionService,
	}
}

// GetPlans godoc
// @Summary List membership plans
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (m *MembershipController) GetPlans(c *gin.Context) {
	plans, err := m.planService.GetPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans retrieved successfully")
}

// GetPlan godoc
// @Summary Plan with its features
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{id} [get]
func (m *MembershipController) GetPlan(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	plan, err := m.planService.GetPlanInfoById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan retrieved successfully")
}

// Subscribe godoc
// @Summary Subscribe to a plan
// @Description Starts a 30-day subscription today and records a parallel order for the plan price.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SubscribeRequest true "Plan and payment method"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions [post]
func (m *MembershipController) Subscribe(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := m.subscriptionService.Subscribe(c.Request.Context(), who.AccountID, req.PlanID, req.PaymentMethod)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Subscription activated")
}

// ListSubscriptions godoc
// @Summary Subscriptions of the current account
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /subscriptions [get]
func (m *MembershipController) ListSubscriptions(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	subs, err := m.subscriptionService.ListSubscriptions(c.Request.Context(), who.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "Subscriptions retrieved successfully")
}

// GetSubscription godoc
// @Summary One subscription of the current account
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /subscriptions/{id} [get]
func (m *MembershipController) GetSubscription(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	sub, err := m.subscriptionService.GetSubscription(c.Request.Context(), who.AccountID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "Subscription retrieved successfully")
}
