package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"venue-booking-backend/internal/model"
	"venue-booking-backend/internal/store"
)

// calendarDay is one cell of the month grid.
type calendarDay struct {
	Date     string          `json:"date"`
	Day      int             `json:"day"`
	Bookings []model.Booking `json:"bookings"`
}

// calendarResponse is the month grid: the weekday offset of the first day
// (0 = Sunday) followed by one entry per day of the month.
type calendarResponse struct {
	Year            int           `json:"year"`
	Month           int           `json:"month"`
	LeadingWeekdays int           `json:"leadingWeekdays"`
	Days            []calendarDay `json:"days"`
}

// GetCalendar handles GET /api/calendar?year=&month=. Both parameters
// default to the current month.
func (h *Handler) GetCalendar(c *gin.Context) {
	now := time.Now().In(h.loc)
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = parsed
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, h.loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDate := make(map[string][]model.Booking)
	for _, b := range h.store.List(c.Request.Context(), store.Filter{}) {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	days := make([]calendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		bookings := byDate[date]
		if bookings == nil {
			bookings = []model.Booking{}
		}
		days = append(days, calendarDay{Date: date, Day: d, Bookings: bookings})
	}

	c.JSON(http.StatusOK, calendarResponse{
		Year:            year,
		Month:           month,
		LeadingWeekdays: int(first.Weekday()),
		Days:            days,
	})
}
