package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishalthakur2004/CarRental-sub001/internal/http/handlers"
	"github.com/vishalthakur2004/CarRental-sub001/internal/http/middleware"
)

// Handlers groups the HTTP handler sets the router wires up.
type Handlers struct {
	Auth          *handlers.AuthHandlers
	OTP           *handlers.OTPHandlers
	Cars          *handlers.CarHandlers
	Bookings      *handlers.BookingHandlers
	Reviews       *handlers.ReviewHandlers
	Notifications *handlers.NotificationHandlers
}

// BuildRouter assembles the route table. Public routes carry no
// middleware; everything else goes through JWT validation and the role
// policy. uploadsDir, when non-empty, is served for locally stored
// car images.
func BuildRouter(h Handlers, authMW *middleware.AuthMW, roleMW middleware.CasbinMiddleware, uploadsDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if uploadsDir != "" {
		r.Static("/uploads", uploadsDir)
	}

	api := r.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", h.Auth.Register)
		user.POST("/login", h.Auth.Login)
		user.POST("/reset-password", h.Auth.ResetPassword)
		user.POST("/refresh", h.Auth.Refresh)
		user.GET("/cars", h.Cars.ListAvailable)
		user.GET("/cars/:id", h.Cars.GetCar)

		authed := user.Group("", authMW.WithJWT(), roleMW.Enforce())
		{
			authed.GET("/data", h.Auth.Me)
			authed.POST("/logout", h.Auth.Logout)
		}
	}

	otp := api.Group("/otp")
	{
		otp.POST("/send-otp", h.OTP.SendOTP)
		otp.POST("/verify-otp", h.OTP.VerifyOTP)
		otp.POST("/resend-otp", h.OTP.ResendOTP)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("/check-availability", h.Bookings.CheckAvailability)
		bookings.GET("/car/:carId/dates", h.Bookings.BookedDates)

		authed := bookings.Group("", authMW.WithJWT(), roleMW.Enforce())
		{
			authed.POST("/create", h.Bookings.Create)
			authed.GET("/user", h.Bookings.ListMine)
			authed.GET("/owner", h.Bookings.ListForOwner)
			authed.POST("/change-status", h.Bookings.ChangeStatus)
		}
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("/car/:carId", h.Reviews.ListForCar)

		authed := reviews.Group("", authMW.WithJWT(), roleMW.Enforce())
		{
			authed.POST("/create", h.Reviews.Create)
			authed.POST("/:id/reply", h.Reviews.Reply)
			authed.GET("/user", h.Reviews.ListMine)
			authed.GET("/owner", h.Reviews.ListForOwner)
		}
	}

	notifications := api.Group("/notifications", authMW.WithJWT(), roleMW.Enforce())
	{
		notifications.GET("", h.Notifications.List)
		notifications.GET("/unread-count", h.Notifications.UnreadCount)
		notifications.PUT("/:id/read", h.Notifications.MarkRead)
		notifications.PUT("/mark-all-read", h.Notifications.MarkAllRead)
	}

	owner := api.Group("/owner", authMW.WithJWT(), roleMW.Enforce())
	{
		owner.POST("/change-role", h.Auth.ChangeRole)
		owner.POST("/add-car", h.Cars.AddCar)
		owner.GET("/cars", h.Cars.ListMine)
		owner.POST("/toggle-car", h.Cars.ToggleAvailability)
		owner.POST("/delete-car", h.Cars.DeleteCar)
		owner.POST("/update-car", h.Cars.UpdateCar)
		owner.GET("/dashboard", h.Cars.Dashboard)
	}

	return r
}
