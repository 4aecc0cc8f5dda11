package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymfit/internal/models/request_models"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type StoreController struct {
	catalog services.CatalogService
}

func NewStoreController(catalog services.CatalogService) *StoreController {
	return &StoreController{catalog: catalog}
}

// ListCategories godoc
// @Summary List product categories
// @Tags Store
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /store/categories [get]
func (s *StoreController) ListCategories(c *gin.Context) {
	categories, err := s.catalog.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, categories, "Categories retrieved successfully")
}

// Store godoc
// @Summary Product listing
// @Description Paginated products filtered by category (id or name) and search text
// @Tags Store
// @Produce json
// @Param category query string false "Category id or name, 'all' for every category"
// @Param search query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(12)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /store [get]
func (s *StoreController) Store(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	pageSize := 0
	if raw := c.Query("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			utils.HandleServiceError(c, utils.ErrInvalidPageSize)
			return
		}
	}

	store, err := s.catalog.Store(c.Request.Context(), services.StoreQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, store, "Products retrieved successfully")
}

// ProductDetail godoc
// @Summary Product detail with related products and reviews
// @Tags Store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /store/products/{id} [get]
func (s *StoreController) ProductDetail(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	detail, err := s.catalog.ProductDetail(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "Product retrieved successfully")
}

// ListReviews godoc
// @Summary Reviews of a product
// @Tags Store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Router /store/products/{id}/reviews [get]
func (s *StoreController) ListReviews(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	reviews, err := s.catalog.ListReviews(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "Reviews retrieved successfully")
}

// AddReview godoc
// @Summary Review a product
// @Tags Store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body request_models.ReviewRequest true "Rating 1-5 and comment"
// @Success 200 {object} utils.APIResponse
// @Router /store/products/{id}/reviews [post]
func (s *StoreController) AddReview(c *gin.Context) {
	who, ok := currentAccount(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := s.catalog.AddReview(c.Request.Context(), who.AccountID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, review, "Review added successfully")
}
