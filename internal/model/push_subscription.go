package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// Reminders are broadcast to every registered subscription; the tool serves a
// single profile, so there is no per-booking subscription mapping.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
