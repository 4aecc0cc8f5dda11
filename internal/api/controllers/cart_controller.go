package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary Current cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /cart [get]
func (h *CartController) GetCart(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	cart, err := h.cartService.GetCart(c.Request.Context(), who.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cart, "Cart retrieved successfully")
}

// AddToCart godoc
// @Summary Add one unit of a product
// @Description Reserves one unit of stock. Fails with 409 when nothing is left.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AddToCartRequest true "Product to add"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /cart/items [post]
func (h *CartController) AddToCart(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), who.AccountID, req.ProductID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cart, "Item added to cart")
}

// UpdateCartItem godoc
// @Summary Set the quantity of a cart line
// @Description The quantity is clamped to what stock allows; zero or less removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Param request body request_models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cart/items/{id} [put]
func (h *CartController) UpdateCartItem(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := h.cartService.UpdateCartItem(c.Request.Context(), who.AccountID, itemID, *req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	msg := "Cart updated"
	if res.Clamped {
		msg = "Quantity limited to available stock"
	}
	utils.RespondSuccess(c, res, msg)
}

// RemoveFromCart godoc
// @Summary Remove a cart line and restore its stock
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cart/items/{id} [delete]
func (h *CartController) RemoveFromCart(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	itemID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cartService.RemoveFromCart(c.Request.Context(), who.AccountID, itemID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Item removed from cart")
}

// CartCount godoc
// @Summary Number of units in the cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /cart/count [get]
func (h *CartController) CartCount(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	n, err := h.cartService.CartCount(c.Request.Context(), who.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"count": n}, "")
}

// AjaxCart godoc
// @Summary Cart for storefront scripts
// @Description Plain JSON without the envelope.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response_models.AjaxCartResponse
// @Router /api/cart [get]
func (h *CartController) AjaxCart(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	cart, err := h.cartService.GetCart(c.Request.Context(), who.AccountID)
	if err != nil {
		c.JSON(utils.StatusFor(err), response_models.AjaxMessageResponse{Success: false, Message: "Could not load cart"})
		return
	}

	out := response_models.AjaxCartResponse{
		Success: true,
		Items:   make([]response_models.AjaxCartItem, 0, len(cart.Items)),
		Total:   cart.Total,
	}
	for _, it := range cart.Items {
		out.Items = append(out.Items, response_models.AjaxCartItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Total:    it.LineTotal,
		})
	}
	c.JSON(http.StatusOK, out)
}

// AjaxAddToCart godoc
// @Summary Add to cart for storefront scripts
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AddToCartRequest true "Product to add"
// @Success 200 {object} response_models.AjaxMessageResponse
// @Router /api/cart/add [post]
func (h *CartController) AjaxAddToCart(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response_models.AjaxMessageResponse{Success: false, Message: "Invalid request format"})
		return
	}

	if _, err := h.cartService.AddToCart(c.Request.Context(), who.AccountID, req.ProductID); err != nil {
		msg := err.Error()
		if utils.StatusFor(err) >= http.StatusInternalServerError {
			msg = "Internal server error"
		}
		c.JSON(utils.StatusFor(err), response_models.AjaxMessageResponse{Success: false, Message: msg})
		return
	}
	c.JSON(http.StatusOK, response_models.AjaxMessageResponse{Success: true, Message: "Item added to cart"})
}
