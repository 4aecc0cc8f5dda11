package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymfit/internal/models/request_models"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type OrderController struct {
	checkout services.CheckoutService
}

func NewOrderController(checkout services.CheckoutService) *OrderController {
	return &OrderController{checkout: checkout}
}

// Checkout godoc
// @Summary Turn the cart into an order
// @Description Snapshots current prices, empties the cart and records the payment method (card or upi).
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CheckoutRequest true "Payment method"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /checkout [post]
func (o *OrderController) Checkout(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := o.checkout.Checkout(c.Request.Context(), who.AccountID, req.PaymentMethod)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "Order placed successfully")
}

// ListOrders godoc
// @Summary Order history
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /orders [get]
func (o *OrderController) ListOrders(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	orders, err := o.checkout.ListOrders(c.Request.Context(), who.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, orders, "Orders retrieved successfully")
}

// GetOrder godoc
// @Summary One order of the current account
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /orders/{id} [get]
func (o *OrderController) GetOrder(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	order, err := o.checkout.GetOrder(c.Request.Context(), who.AccountID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "Order retrieved successfully")
}
