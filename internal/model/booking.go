package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder policies a booking can carry.
const (
	Reminder1Hour = "1hour"
	Reminder1Day  = "1day"
)

// ReminderLabel renders a reminder policy the way the export and the
// notifications spell it.
func ReminderLabel(policy string) string {
	if policy == Reminder1Hour {
		return "1 hour"
	}
	return "1 day"
}

// Booking is a single venue booking. Records are keyed by a generated UUID so
// that edits and deletes address a stable identity rather than a position in
// the list.
type Booking struct {
	Key      uuid.UUID `gorm:"type:uuid;primaryKey" json:"key"`
	Name     string    `gorm:"size:256;not null" json:"name"`
	Email    string    `gorm:"size:256;not null" json:"email"`
	Event    string    `gorm:"size:256;not null" json:"event"`
	Date     string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time     string    `gorm:"size:5;not null" json:"time"`        // HH:MM
	Reminder string    `gorm:"size:16;not null" json:"reminder"`   // Reminder1Hour or Reminder1Day
	People   int       `gorm:"not null;default:1" json:"people"`
	Duration int       `gorm:"not null;default:1" json:"duration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
