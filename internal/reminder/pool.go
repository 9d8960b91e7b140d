package reminder

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"venue-booking-backend/internal/model"
	"venue-booking-backend/internal/notice"
	"venue-booking-backend/internal/parse"
)

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of Sender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// Pool manages a pool of workers delivering reminder notifications. A fired
// reminder is pushed to every registered subscription; when push delivery is
// not possible the message lands on the notice feed instead.
type Pool struct {
	size    int
	jobs    chan uuid.UUID
	db      *gorm.DB
	webpush *webpush.Options
	feed    *notice.Feed
	sender  Sender
}

// NewPool creates a new reminder delivery pool.
func NewPool(size int, db *gorm.DB, webpushOptions *webpush.Options, feed *notice.Feed) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{
		size:    size,
		jobs:    make(chan uuid.UUID, size),
		db:      db,
		webpush: webpushOptions,
		feed:    feed,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	log.Printf("Reminder worker %d started", id)
	for {
		select {
		case key := <-p.jobs:
			log.Printf("Reminder worker %d processing booking %s", id, key)
			p.deliver(ctx, key)
		case <-ctx.Done():
			log.Printf("Reminder worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool.
func (p *Pool) Dispatch(key uuid.UUID) {
	p.jobs <- key
}

// deliver loads the booking and sends its reminder. A booking deleted after
// its timer fired is silently skipped.
func (p *Pool) deliver(ctx context.Context, key uuid.UUID) {
	var b model.Booking
	if err := p.db.WithContext(ctx).First(&b, "key = ?", key).Error; err != nil {
		log.Printf("Reminder for booking %s skipped: %v", key, err)
		return
	}

	message := fmt.Sprintf("Reminder: %q is coming up at %s!", b.Event, parse.ClipClock(b.Time))

	if !p.pushConfigured() {
		p.feed.Success(message)
		return
	}

	var subscriptions []model.PushSubscription
	if err := p.db.WithContext(ctx).Find(&subscriptions).Error; err != nil {
		log.Printf("Error fetching subscriptions for booking %s: %v", key, err)
		p.feed.Success(message)
		return
	}
	if len(subscriptions) == 0 {
		p.feed.Success(message)
		return
	}

	delivered := 0
	for _, sub := range subscriptions {
		if p.push(ctx, sub, []byte(message)) {
			delivered++
		}
	}
	if delivered == 0 {
		p.feed.Success(message)
	}
}

func (p *Pool) pushConfigured() bool {
	return p.webpush != nil && p.webpush.VAPIDPublicKey != "" && p.webpush.VAPIDPrivateKey != ""
}

// push sends one web push notification and reports whether it was accepted.
func (p *Pool) push(ctx context.Context, sub model.PushSubscription, payload []byte) bool {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := p.sender.Send(payload, wpSub, p.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return false
	}
	defer resp.Body.Close()

	// Handle expired subscriptions.
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := p.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
		return false
	}
	return resp.StatusCode < 300
}
