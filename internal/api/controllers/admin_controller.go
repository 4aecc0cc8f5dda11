package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dbm "gymfit/internal/models/db_models"
	req "gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

// AdminResourceController exposes list, get, create, update and delete for one
// back-office table. R is the JSON body and copies itself onto the row.
type AdminResourceController[M any, R interface{ Apply(*M) error }] struct {
	svc services.AdminResourceService[M]
}

func NewAdminResourceController[M any, R interface{ Apply(*M) error }](svc services.AdminResourceService[M]) *AdminResourceController[M, R] {
	return &AdminResourceController[M, R]{svc: svc}
}

func (a *AdminResourceController[M, R]) Register(g *gin.RouterGroup, path string) {
	g.GET(path, a.List)
	g.GET(path+"/:id", a.Get)
	g.POST(path, a.Create)
	g.PUT(path+"/:id", a.Update)
	g.DELETE(path+"/:id", a.Delete)
}

func actorOf(c *gin.Context) services.Actor {
	who, _ := currentAccount(c)
	return services.Actor{AccountID: who.AccountID, IP: c.ClientIP()}
}

func (a *AdminResourceController[M, R]) List(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filters := map[string]interface{}{}
	for _, key := range a.svc.Filterable() {
		raw := c.Query(key)
		if raw == "" || raw == "all" {
			continue
		}
		if raw == "true" || raw == "false" {
			filters[key] = raw == "true"
			continue
		}
		filters[key] = raw
	}

	items, total, err := a.svc.List(c.Request.Context(), repositories.ListQuery{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: a.svc.PageSize(),
		Filters:  filters,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPage(items, total, page, a.svc.PageSize()), "")
}

func (a *AdminResourceController[M, R]) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	m, err := a.svc.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, "")
}

func (a *AdminResourceController[M, R]) Create(c *gin.Context) {
	var body R
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	m, err := a.svc.Create(c.Request.Context(), actorOf(c), body.Apply)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, a.svc.Name()+" created successfully")
}

func (a *AdminResourceController[M, R]) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var body R
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	m, err := a.svc.Update(c.Request.Context(), actorOf(c), id, body.Apply)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, m, a.svc.Name()+" updated successfully")
}

func (a *AdminResourceController[M, R]) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := a.svc.Delete(c.Request.Context(), actorOf(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, a.svc.Name()+" deleted successfully")
}

// AdminController mounts every back-office table under one group.
type AdminController struct {
	resources *services.AdminResources
}

func NewAdminController(resources *services.AdminResources) *AdminController {
	return &AdminController{resources: resources}
}

func (a *AdminController) Register(g *gin.RouterGroup) {
	r := a.resources
	NewAdminResourceController[dbm.Account, req.AdminAccountRequest](r.Accounts).Register(g, "/accounts")
	NewAdminResourceController[dbm.Category, req.AdminCategoryRequest](r.Categories).Register(g, "/categories")
	NewAdminResourceController[dbm.Product, req.AdminProductRequest](r.Products).Register(g, "/products")
	NewAdminResourceController[dbm.Plan, req.AdminPlanRequest](r.Plans).Register(g, "/plans")
	NewAdminResourceController[dbm.PlanFeature, req.AdminPlanFeatureRequest](r.PlanFeatures).Register(g, "/plan-features")
	NewAdminResourceController[dbm.TeamMember, req.AdminTeamMemberRequest](r.TeamMembers).Register(g, "/team-members")
	NewAdminResourceController[dbm.GymClass, req.AdminGymClassRequest](r.GymClasses).Register(g, "/gym-classes")
	NewAdminResourceController[dbm.ClassSchedule, req.AdminClassScheduleRequest](r.ClassSchedules).Register(g, "/class-schedules")
	NewAdminResourceController[dbm.ClassBooking, req.AdminBookingRequest](r.Bookings).Register(g, "/class-bookings")
	NewAdminResourceController[dbm.Workout, req.AdminWorkoutRequest](r.Workouts).Register(g, "/workouts")
	NewAdminResourceController[dbm.Order, req.AdminOrderRequest](r.Orders).Register(g, "/orders")
	NewAdminResourceController[dbm.PlanSubscription, req.AdminSubscriptionRequest](r.Subscriptions).Register(g, "/subscriptions")
	NewAdminResourceController[dbm.BlogPost, req.AdminBlogPostRequest](r.BlogPosts).Register(g, "/blog-posts")
	NewAdminResourceController[dbm.Newsletter, req.AdminNewsletterRequest](r.Newsletters).Register(g, "/newsletters")
	NewAdminResourceController[dbm.ContactMessage, req.AdminContactMessageRequest](r.ContactMessages).Register(g, "/contact-messages")
}
