package api

import (
	"log"
	stdhttp "net/http"

	"tourism/internal/auth"
	intconfig "tourism/internal/config"
	h "tourism/internal/http/handlers"
	"tourism/internal/http/middleware"
	"tourism/internal/notify"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	var otpStore auth.OTPStore
	if env.RedisAddr != "" {
		otpStore = auth.NewRedisOTPStore(env.RedisAddr)
	} else {
		otpStore = auth.NewMemoryOTPStore()
	}

	h.Init(h.Deps{
		Env:      env,
		OTPStore: otpStore,
		Sender: notify.SMTPSender{
			Host:     env.SMTPHost,
			Port:     env.SMTPPort,
			From:     env.SMTPUser,
			Password: env.SMTPPass,
		},
	})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authRequired := middleware.RequireAuth(env.JWTSecret)
	adminOnly := middleware.RequireAdmin()
	loginLimiter := middleware.NewRateLimiter(10, 5)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.Use(loginLimiter.Limit())
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.POST("/reset-password", h.ResetPassword)

		// Tour catalog
		tours := api.Group("/tours")
		tours.GET("", h.GetTours)
		tours.GET("/:id", h.GetTourByID)
		tours.GET("/:id/comments", h.GetTourComments)
		tours.POST("/:id/comments", authRequired, h.CreateComment)
		tours.POST("", authRequired, adminOnly, h.CreateTour)
		tours.PUT("/:id", authRequired, adminOnly, h.UpdateTour)
		tours.DELETE("/:id", authRequired, adminOnly, h.DeleteTour)
		tours.POST("/:id/dates", authRequired, adminOnly, h.AddTourDate)

		// Payments
		payments := api.Group("/payments")
		payments.Use(authRequired)
		payments.POST("/create-order", h.CreateOrder)
		payments.POST("/verify", h.VerifyPayment)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.Use(authRequired)
		bookings.GET("/my", h.GetMyBookings)
		bookings.GET("/:id/voucher", h.GetBookingVoucher)

		// Comments
		api.DELETE("/comments/:id", authRequired, h.DeleteComment)

		// Enquiries
		api.POST("/enquiries", authRequired, h.CreateEnquiry)

		// Admin
		admin := api.Group("/admin")
		admin.Use(authRequired, adminOnly)
		admin.GET("/bookings", h.GetBookingsByTour)
		admin.GET("/enquiries", h.GetEnquiries)
	}

	return r
}
