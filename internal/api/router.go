package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"venue-booking-backend/config"
	"venue-booking-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Bookings: list and grid views, submit, delete, export.
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings", h.SubmitBooking)
		api.DELETE("/bookings/:key", h.DeleteBooking)
		api.GET("/bookings/export", h.ExportBookings)
		api.GET("/calendar", h.GetCalendar)

		// Cost calculator: the static catalog is cacheable, quotes are not.
		api.GET("/pricing", caching, h.GetPricing)
		api.POST("/quote", h.PostQuote)

		// The two synchronized form surfaces.
		api.GET("/session", h.GetSession)
		api.POST("/session/calculator", h.ApplyCalculator)
		api.POST("/session/booking", h.ApplyBookingForm)
		api.POST("/session/edit/:key", h.BeginEdit)
		api.POST("/session/cancel", h.CancelEdit)

		// Push subscriptions and the notice feed.
		api.GET("/subscriptions", h.GetSubscription)
		api.PUT("/subscriptions", h.PutSubscription)
		api.DELETE("/subscriptions", h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
		api.GET("/notices", h.GetNotices)
	}

	return r
}
