// Package export renders the booking collection as a CSV download.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"venue-booking-backend/internal/model"
)

// Header is the fixed column order of the export.
const Header = "Name,Email,Event,Date,Time,Reminder,People,Duration"

// Filename is the suggested download name.
const Filename = "bookings.csv"

// ErrNoBookings is returned when there is nothing to export.
var ErrNoBookings = fmt.Errorf("no bookings to export")

// Render serializes bookings to CSV. Every field is double-quote-enclosed,
// with embedded quotes doubled, and the reminder policy is rendered as its
// human label.
func Render(bookings []model.Booking) ([]byte, error) {
	if len(bookings) == 0 {
		return nil, ErrNoBookings
	}

	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteByte('\n')

	for i, b := range bookings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, []string{
			b.Name,
			b.Email,
			b.Event,
			b.Date,
			b.Time,
			model.ReminderLabel(b.Reminder),
			strconv.Itoa(orOne(b.People)),
			strconv.Itoa(orOne(b.Duration)),
		})
	}
	return []byte(sb.String()), nil
}

func writeRow(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
}

func orOne(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
