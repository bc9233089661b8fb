package routes

import (
	"net/http"
	"time"

	"shortlet/handlers"
	"shortlet/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the handlers the router wires up.
type HandlerBundle struct {
	Catalog     *handlers.CatalogHandler
	Reservation *handlers.ReservationHandler
	Review      *handlers.ReviewHandler
	Storage     *handlers.StorageHandler
}

// RegisterRoutes registers every endpoint the frontend consumes.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public catalog endpoints.
	properties := r.Group("/api/properties")
	{
		properties.GET("", hb.Catalog.ListProperties)
		properties.GET("/:id", hb.Catalog.GetProperty)
		properties.GET("/:id/availability", hb.Reservation.CheckAvailability)
		properties.GET("/:id/reviews", hb.Review.ListReviews)
		properties.POST("/:id/reviews", middleware.JWTAuthMiddleware(), hb.Review.CreateReview)
	}
	r.GET("/api/amenities", hb.Catalog.ListAmenities)

	// Reservation workflow: every step requires an authenticated user.
	reservations := r.Group("/api/reservations")
	reservations.Use(middleware.JWTAuthMiddleware())
	{
		reservations.POST("", hb.Reservation.Initiate)
		reservations.GET("/:sessionID", hb.Reservation.GetSession)
		reservations.POST("/:sessionID/payment-method", hb.Reservation.SelectPaymentMethod)
		reservations.POST("/:sessionID/submit", hb.Reservation.Submit)
		reservations.DELETE("/:sessionID", hb.Reservation.Cancel)
	}

	// Bank-transfer proof uploads.
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.JWTAuthMiddleware())
	{
		bookings.POST("/:bookingID/payment-proof", hb.Storage.UploadPaymentProof)
	}

	// Presentational helpers.
	r.GET("/api/ui/cta-state", handlers.CTAState)
}
