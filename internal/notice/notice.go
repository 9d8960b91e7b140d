// Package notice is the in-process message feed: transient success and error
// messages from booking mutations plus the fallback channel for reminders
// when push delivery is unavailable.
package notice

import (
	"sync"
	"time"
)

// Notice levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notice is a single transient message.
type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Feed is a bounded, newest-first list of notices.
type Feed struct {
	mu    sync.Mutex
	max   int
	items []Notice
}

// NewFeed creates a feed retaining at most max notices.
func NewFeed(max int) *Feed {
	if max <= 0 {
		max = 50
	}
	return &Feed{max: max}
}

// Post appends a notice, evicting the oldest when full.
func (f *Feed) Post(level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, Notice{Level: level, Message: message, At: time.Now()})
	if len(f.items) > f.max {
		f.items = f.items[len(f.items)-f.max:]
	}
}

// Success posts a success-level notice.
func (f *Feed) Success(message string) { f.Post(LevelSuccess, message) }

// Error posts an error-level notice.
func (f *Feed) Error(message string) { f.Post(LevelError, message) }

// Recent returns the retained notices, newest first.
func (f *Feed) Recent() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notice, len(f.items))
	for i, n := range f.items {
		out[len(f.items)-1-i] = n
	}
	return out
}
