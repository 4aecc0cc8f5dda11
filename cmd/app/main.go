package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"gymfit/cmd/fx/account_fx"
	"gymfit/cmd/fx/config_fx"
	"gymfit/cmd/fx/content_fx"
	"gymfit/cmd/fx/controllers_fx"
	"gymfit/cmd/fx/dashboard_fx"
	"gymfit/cmd/fx/db_fx"
	"gymfit/cmd/fx/mail_fx"
	"gymfit/cmd/fx/membership_fx"
	"gymfit/cmd/fx/memcache_fx"
	"gymfit/cmd/fx/queue_fx"
	"gymfit/cmd/fx/redis_fx"
	"gymfit/cmd/fx/store_fx"
	"gymfit/internal/api/controllers"
	"gymfit/internal/config"
	"gymfit/internal/models/db_models"
	"gymfit/pkg/middleware"
	"gymfit/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		queue_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		store_fx.Module,
		membership_fx.Module,
		content_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config     *config.Config
	JWT        *utils.JWTManager
	Redis      *redis.Client `optional:"true"`
	Account    *controllers.AccountController
	Store      *controllers.StoreController
	Cart       *controllers.CartController
	Order      *controllers.OrderController
	Membership *controllers.MembershipController
	Booking    *controllers.BookingController
	Content    *controllers.ContentController
	Dashboard  *controllers.DashboardController
	Notify     *controllers.NotificationController
	Admin      *controllers.AdminController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))
	r.Use(middleware.SanitizeInputMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	rl := p.Config.RateLimit
	limiter := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Enabled:        rl.Enabled,
		Capacity:       rl.Capacity,
		RefillTokens:   rl.RefillTokens,
		RefillInterval: rl.RefillInterval,
		TTL:            rl.TTL,
		KeyStrategy:    rl.KeyStrategy,
		Prefix:         rl.Prefix,
	}, p.Redis)
	auth := middleware.JWTAuthMiddleware(p.JWT)

	// Public content
	r.GET("/", p.Content.Home)
	r.GET("/team", p.Content.Team)
	r.GET("/blog", p.Content.Posts)
	r.GET("/blog/:id", p.Content.Post)
	r.GET("/classes", p.Content.Classes)
	r.GET("/timetable", p.Content.Timetable)
	r.POST("/contact", limiter, p.Content.Contact)
	r.POST("/newsletter", limiter, p.Content.Newsletter)

	r.GET("/plans", p.Membership.GetPlans)
	r.GET("/plans/:id", p.Membership.GetPlan)

	store := r.Group("/store")
	store.GET("", p.Store.Store)
	store.GET("/categories", p.Store.ListCategories)
	store.GET("/products/:id", p.Store.ProductDetail)
	store.GET("/products/:id/reviews", p.Store.ListReviews)
	store.POST("/products/:id/reviews", auth, p.Store.AddReview)

	accounts := r.Group("/accounts")
	accounts.POST("/register", limiter, p.Account.Register)
	accounts.POST("/login", limiter, p.Account.Login)
	accounts.POST("/forgot-password", limiter, p.Account.ForgotPassword)
	accounts.POST("/reset-password", limiter, p.Account.ResetPassword)
	accounts.GET("/profile", auth, p.Account.GetProfile)
	accounts.PUT("/profile", auth, p.Account.UpdateProfile)
	accounts.POST("/change-password", auth, p.Account.ChangePassword)

	// Signed-in members
	member := r.Group("", auth)
	member.GET("/cart", p.Cart.GetCart)
	member.GET("/cart/count", p.Cart.CartCount)
	member.POST("/cart/items", p.Cart.AddToCart)
	member.PUT("/cart/items/:id", p.Cart.UpdateCartItem)
	member.DELETE("/cart/items/:id", p.Cart.RemoveFromCart)
	member.GET("/api/cart", p.Cart.AjaxCart)
	member.POST("/api/cart/add", p.Cart.AjaxAddToCart)

	member.POST("/checkout", limiter, p.Order.Checkout)
	member.GET("/orders", p.Order.ListOrders)
	member.GET("/orders/:id", p.Order.GetOrder)

	member.POST("/subscriptions", limiter, p.Membership.Subscribe)
	member.GET("/subscriptions", p.Membership.ListSubscriptions)
	member.GET("/subscriptions/:id", p.Membership.GetSubscription)

	member.POST("/bookings", p.Booking.Book)
	member.GET("/bookings", p.Booking.History)
	member.GET("/bookings/upcoming", p.Booking.Upcoming)
	member.POST("/bookings/:id/cancel", p.Booking.Cancel)

	member.GET("/workouts", p.Booking.ListWorkouts)
	member.POST("/workouts", p.Booking.CreateWorkout)
	member.DELETE("/workouts/:id", p.Booking.DeleteWorkout)

	// Back office
	admin := r.Group("/admin", auth, middleware.RoleMiddleware(db_models.RoleStaff))
	admin.GET("/dashboard", p.Dashboard.GetDashboard)
	admin.GET("/reports", p.Dashboard.GetOverview)
	admin.GET("/reports/:type/stats", p.Dashboard.GetStats)
	admin.GET("/reports/:type/export", p.Dashboard.ExportReport)

	admin.GET("/notifications", p.Notify.List)
	admin.GET("/notifications/unread-count", p.Notify.UnreadCount)
	admin.POST("/notifications/read-all", p.Notify.MarkAllRead)
	admin.POST("/notifications/:id/read", p.Notify.MarkRead)

	admin.POST("/class-bookings/:id/status", p.Booking.SetStatus)
	admin.POST("/contact-messages/:id/reply", p.Content.ReplyToContact)
	p.Admin.Register(admin)
}
