package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"venue-booking-backend/internal/session"
)

// sessionState is the full state of the two synchronized form surfaces:
// the effective selection, both derived views, the form mode, and the
// recomputed quote.
type sessionState struct {
	Selection  session.Selection      `json:"selection"`
	Calculator session.CalculatorView `json:"calculator"`
	Booking    session.BookingView    `json:"booking"`
	Editing    bool                   `json:"editing"`
	EditingKey string                 `json:"editingKey,omitempty"`
	Quote      quoteResponse          `json:"quote"`
}

func (h *Handler) sessionState() sessionState {
	sel := h.session.Selection()
	state := sessionState{
		Selection:  sel,
		Calculator: h.session.Calculator(),
		Booking:    h.session.Booking(),
		Quote:      newQuoteResponse(sel.Request()),
	}
	if key, editing := h.session.Mode().EditingKey(); editing {
		state.Editing = true
		state.EditingKey = key.String()
	}
	return state
}

// GetSession handles GET /api/session.
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionState())
}

// ApplyCalculator handles POST /api/session/calculator: a calculator-side
// edit. The booking view in the response is the synchronized projection; no
// second pass back into the calculator happens, so the update cannot
// oscillate.
func (h *Handler) ApplyCalculator(c *gin.Context) {
	var in session.CalculatorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.ApplyCalculator(in)
	c.JSON(http.StatusOK, h.sessionState())
}

// ApplyBookingForm handles POST /api/session/booking: a booking-side edit,
// with the duration recovered from the selection when the form does not
// carry one.
func (h *Handler) ApplyBookingForm(c *gin.Context) {
	var in session.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.ApplyBooking(in)
	c.JSON(http.StatusOK, h.sessionState())
}

// BeginEdit handles POST /api/session/edit/:key, loading a stored booking
// into the form session.
func (h *Handler) BeginEdit(c *gin.Context) {
	key, err := uuid.Parse(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking key"})
		return
	}

	b, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.session.BeginEdit(b)
	c.JSON(http.StatusOK, h.sessionState())
}

// CancelEdit handles POST /api/session/cancel.
func (h *Handler) CancelEdit(c *gin.Context) {
	h.session.CancelEdit()
	c.JSON(http.StatusOK, h.sessionState())
}
