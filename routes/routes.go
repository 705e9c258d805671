package routes

import (
	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Barber       *handlers.BarberHandler
}

// RegisterRoutes registers all endpoints for the scheduling core.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")

	api.GET("/barbers", h.Barber.ListBarbers)

	availability := api.Group("/availability")
	{
		availability.GET("", h.Availability.GetAvailability)
		availability.POST("", h.Availability.PostAvailability)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("", h.Booking.ListBookings)

		authed := bookings.Group("")
		authed.Use(middleware.JWTAuthMiddleware())
		{
			authed.GET("/me", h.Booking.ListMyBookings)
			authed.GET("/me/upcoming", h.Booking.ListMyUpcoming)
			authed.POST("", h.Booking.CreateBooking)
			authed.POST("/:id/cancel", h.Booking.CancelBooking)
			authed.PUT("/:id", h.Booking.UpdateBooking)
		}

		bookings.GET("/:id", h.Booking.GetBooking)
	}
}
