// Package reminder schedules and delivers booking reminders. Every booking
// gets at most one pending timer, keyed by its booking key, so an edit can
// reschedule and a delete can cancel instead of leaving a stale callback to
// fire against a record that no longer exists.
package reminder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"venue-booking-backend/config"
	"venue-booking-backend/internal/model"
	"venue-booking-backend/internal/parse"
	"venue-booking-backend/internal/store"
)

// Scheduler owns the pending reminder timers.
type Scheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer

	store     store.Store
	pool      *Pool
	loc       *time.Location
	dailyHour int
	enabled   bool
}

// NewScheduler creates a scheduler firing reminders through the given pool.
func NewScheduler(cfg *config.ReminderConfig, st store.Store, pool *Pool) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder timezone %q: %w", cfg.Timezone, err)
	}
	return &Scheduler{
		timers:    make(map[uuid.UUID]*time.Timer),
		store:     st,
		pool:      pool,
		loc:       loc,
		dailyHour: cfg.DailyHour,
		enabled:   cfg.Enabled,
	}, nil
}

// Start launches the delivery workers and replays reminders for every stored
// booking.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.enabled {
		log.Println("Reminders are disabled. Not scheduling.")
		return
	}
	s.pool.Start(ctx)
	s.ScheduleAll(ctx)
}

// ScheduleAll arms a reminder for each stored booking whose fire time is
// still in the future.
func (s *Scheduler) ScheduleAll(ctx context.Context) {
	bookings := s.store.List(ctx, store.Filter{})
	armed := 0
	for _, b := range bookings {
		if s.Schedule(b) {
			armed++
		}
	}
	log.Printf("Armed %d reminder(s) for %d booking(s)", armed, len(bookings))
}

// Schedule arms (or re-arms) the reminder for one booking and reports
// whether a timer is now pending. Past fire times arm nothing.
func (s *Scheduler) Schedule(b model.Booking) bool {
	if !s.enabled {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(b.Key)

	fireAt, err := parse.FireTime(b, s.loc, s.dailyHour)
	if err != nil {
		log.Printf("Not scheduling reminder for booking %s: %v", b.Key, err)
		return false
	}
	delay := time.Until(fireAt)
	if delay <= 0 {
		return false
	}

	key := b.Key
	s.timers[key] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()
		s.pool.Dispatch(key)
	})
	return true
}

// Cancel drops the pending reminder for a booking, if any.
func (s *Scheduler) Cancel(key uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(key)
}

// Pending reports whether a reminder timer is armed for the booking.
func (s *Scheduler) Pending(key uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[key]
	return ok
}

// Stop cancels every pending timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}

func (s *Scheduler) cancelLocked(key uuid.UUID) {
	if timer, ok := s.timers[key]; ok {
		timer.Stop()
		delete(s.timers, key)
	}
}
