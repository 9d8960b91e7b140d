package api

import (
	"sync/atomic"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"venue-booking-backend/internal/notice"
	"venue-booking-backend/internal/reminder"
	"venue-booking-backend/internal/session"
	"venue-booking-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	session   *session.Session
	scheduler *reminder.Scheduler
	feed      *notice.Feed
	webpush   *webpush.Options
	loc       *time.Location

	saveLatency time.Duration
	saving      atomic.Bool // guards against overlapping submits
}

// NewHandler creates a new API handler.
func NewHandler(
	s store.Store,
	sess *session.Session,
	scheduler *reminder.Scheduler,
	feed *notice.Feed,
	webpushOptions *webpush.Options,
	loc *time.Location,
	saveLatency time.Duration,
) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		store:       s,
		session:     sess,
		scheduler:   scheduler,
		feed:        feed,
		webpush:     webpushOptions,
		loc:         loc,
		saveLatency: saveLatency,
	}
}
