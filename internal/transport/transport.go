package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"excursion-booking/config"
	"excursion-booking/internal/transport/middleware"
	"excursion-booking/pkg/session"
)

func InitRoutes(
	cfg *config.Config,
	sessions session.Store,
	authHandler *AuthHandler,
	excursionHandler *ExcursionHandler,
	bookingHandler *BookingHandler,
	adminHandler *AdminHandler,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Session(sessions, cfg.Session.CookieName))
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30 * time.Second))

	// API routes
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Public catalog
		excursions := api.Group("/excursions")
		{
			excursions.GET("", excursionHandler.List)
			excursions.GET("/featured", excursionHandler.Featured)
			excursions.GET("/:id", excursionHandler.Get)
		}

		// Logged-in users
		authorized := api.Group("/", middleware.RequireAuth())
		{
			authorized.POST("/excursions/:id/book", bookingHandler.Book)
			authorized.GET("/cabinet", bookingHandler.Cabinet)
			authorized.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		}

		// Admin routes
		admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/bookings", adminHandler.AllBookings)
			admin.POST("/bookings/:id/confirm", adminHandler.ConfirmBooking)
			admin.POST("/bookings/:id/reject", adminHandler.RejectBooking)
			admin.POST("/excursions", adminHandler.CreateExcursion)
			admin.PUT("/excursions/:id", adminHandler.UpdateExcursion)
			admin.DELETE("/excursions/:id", adminHandler.DeleteExcursion)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
