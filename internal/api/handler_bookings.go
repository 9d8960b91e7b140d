package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"venue-booking-backend/internal/export"
	"venue-booking-backend/internal/model"
	"venue-booking-backend/internal/parse"
	"venue-booking-backend/internal/pricing"
	"venue-booking-backend/internal/store"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ListBookings handles GET /api/bookings with optional search and date
// filters, in chronological event order.
func (h *Handler) ListBookings(c *gin.Context) {
	filter := store.Filter{
		Search: c.Query("search"),
		Date:   c.Query("date"),
	}
	c.JSON(http.StatusOK, h.store.List(c.Request.Context(), filter))
}

type submitBookingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reminder string `json:"reminder"`
}

// SubmitBooking handles POST /api/bookings. The event, people count and
// duration come from the session's current selection; the form mode decides
// between creating a new record and updating the one under edit. Validation
// failures abort without mutating anything.
func (h *Handler) SubmitBooking(c *gin.Context) {
	var req submitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := h.session.Selection()
	if msg, ok := h.validateSubmission(req, sel.Facility); !ok {
		h.feed.Error(msg)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
		return
	}

	quote := pricing.Compute(sel.Request())
	if !quote.Bookable {
		h.feed.Error(quote.Reason)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": quote.Reason})
		return
	}

	// One submission at a time; the save latency below would otherwise let a
	// double click commit the same booking twice.
	if !h.saving.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "a booking is already being saved"})
		return
	}
	defer h.saving.Store(false)

	if h.saveLatency > 0 {
		time.Sleep(h.saveLatency)
	}

	reminderPolicy := req.Reminder
	if reminderPolicy == "" {
		reminderPolicy = model.Reminder1Day
	}

	booking := model.Booking{
		Name:     req.Name,
		Email:    req.Email,
		Event:    sel.Facility,
		Date:     req.Date,
		Time:     parse.ClipClock(req.Time),
		Reminder: reminderPolicy,
		People:   sel.People,
		Duration: sel.Duration,
	}

	ctx := c.Request.Context()
	if key, editing := h.session.Mode().EditingKey(); editing {
		booking.Key = key
		if err := h.store.Update(ctx, &booking); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		h.session.CancelEdit()
		h.scheduler.Schedule(booking)
		h.feed.Success("Booking updated!")
		c.JSON(http.StatusOK, booking)
		return
	}

	if err := h.store.Create(ctx, &booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.scheduler.Schedule(booking)
	h.feed.Success("Booking successful!")
	c.JSON(http.StatusCreated, booking)
}

// validateSubmission applies the form validation rules: all fields present, a
// plausible email, and an event time that is not in the past.
func (h *Handler) validateSubmission(req submitBookingRequest, event string) (string, bool) {
	if req.Name == "" || req.Email == "" || event == "" || req.Date == "" || req.Time == "" {
		return "Please fill in all fields.", false
	}
	if !emailPattern.MatchString(req.Email) {
		return "Please enter a valid email address.", false
	}
	if req.Reminder != "" && req.Reminder != model.Reminder1Hour && req.Reminder != model.Reminder1Day {
		return fmt.Sprintf("Unknown reminder policy %q.", req.Reminder), false
	}
	eventAt, err := parse.EventTime(req.Date, req.Time, h.loc)
	if err != nil {
		return "Please provide a valid date and time.", false
	}
	if eventAt.Before(time.Now()) {
		return "Cannot book for a past date/time.", false
	}
	return "", true
}

// DeleteBooking handles DELETE /api/bookings/:key. The pending reminder is
// cancelled, and deleting the booking currently under edit resets the form
// to creation mode.
func (h *Handler) DeleteBooking(c *gin.Context) {
	key, err := uuid.Parse(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking key"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.scheduler.Cancel(key)
	h.session.BookingDeleted(key)
	h.feed.Success("Booking deleted.")
	c.Status(http.StatusNoContent)
}

// ExportBookings handles GET /api/bookings/export, serving the collection as
// a CSV attachment.
func (h *Handler) ExportBookings(c *gin.Context) {
	bookings := h.store.List(c.Request.Context(), store.Filter{})

	data, err := export.Render(bookings)
	if err != nil {
		h.feed.Error("No bookings to export.")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.feed.Success("Exported bookings to CSV.")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/csv", data)
}
