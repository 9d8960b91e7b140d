// Package session keeps the calculator form and the booking form describing
// one consistent selection. Instead of the two surfaces cross-updating each
// other, a single source-of-truth Selection is updated by whichever form was
// edited last, and both views are derived from it. Either direction therefore
// converges in one step and can never oscillate.
package session

import (
	"sync"

	"github.com/google/uuid"

	"venue-booking-backend/internal/model"
	"venue-booking-backend/internal/pricing"
)

// Selection is the effective (category, facility, duration) tuple plus the
// calculator-only fields. It is the one current selection; no second,
// conflicting copy exists anywhere.
type Selection struct {
	Category       string `json:"category"`
	Facility       string `json:"facility"`
	Duration       int    `json:"duration"`
	People         int    `json:"people"`
	Projector      bool   `json:"projector"`
	Catering       bool   `json:"catering"`
	CateringPeople int    `json:"cateringPeople"`
	Internet       bool   `json:"internet"`
}

// Request converts the selection into a pricing request.
func (s Selection) Request() pricing.Request {
	return pricing.Request{
		Category:       s.Category,
		Facility:       s.Facility,
		Duration:       s.Duration,
		People:         s.People,
		Projector:      s.Projector,
		Catering:       s.Catering,
		CateringPeople: s.CateringPeople,
		Internet:       s.Internet,
	}
}

// CalculatorView is the calculator form derived from the selection.
type CalculatorView struct {
	Category       string `json:"category"`
	Facility       string `json:"facility"`
	Duration       int    `json:"duration"`
	DurationLabel  string `json:"durationLabel"`
	People         int    `json:"people"`
	ShowPeople     bool   `json:"showPeople"`
	Projector      bool   `json:"projector"`
	Catering       bool   `json:"catering"`
	CateringPeople int    `json:"cateringPeople"`
	Internet       bool   `json:"internet"`
}

// BookingView is the booking form derived from the selection. The facility
// appears as the event field; the duration rides along as auxiliary metadata
// so a booking-side edit can hand it back.
type BookingView struct {
	Category string `json:"category"`
	Event    string `json:"event"`
	Duration int    `json:"duration"`
}

// CalculatorInput is one calculator-side edit.
type CalculatorInput struct {
	Category       string `json:"category"`
	Facility       string `json:"facility"`
	Duration       int    `json:"duration"`
	People         int    `json:"people"`
	Projector      bool   `json:"projector"`
	Catering       bool   `json:"catering"`
	CateringPeople int    `json:"cateringPeople"`
	Internet       bool   `json:"internet"`
}

// BookingInput is one booking-side edit. Duration is optional; when absent
// the duration is recovered from the current selection.
type BookingInput struct {
	Category string `json:"category"`
	Event    string `json:"event"`
	Duration *int   `json:"duration,omitempty"`
}

// FormMode says whether a submit creates a new booking or updates an
// existing one. The zero value is Creating.
type FormMode struct {
	key *uuid.UUID
}

// Creating returns the create mode.
func Creating() FormMode { return FormMode{} }

// Editing returns the mode for updating the booking with the given key.
func Editing(key uuid.UUID) FormMode { return FormMode{key: &key} }

// EditingKey returns the booking under edit, if any.
func (m FormMode) EditingKey() (uuid.UUID, bool) {
	if m.key == nil {
		return uuid.Nil, false
	}
	return *m.key, true
}

// Session holds the selection and the form mode for the single user of the
// tool. All methods are safe for concurrent use, though in practice events
// arrive one at a time.
type Session struct {
	mu        sync.Mutex
	selection Selection
	mode      FormMode
}

// New creates a session in creating mode with an empty selection.
func New() *Session {
	return &Session{}
}

// ApplyCalculator records a calculator-side edit. Last writer wins: the
// calculator owns every field it presents.
func (s *Session) ApplyCalculator(in CalculatorInput) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = Selection{
		Category:       in.Category,
		Facility:       in.Facility,
		Duration:       normalizeCount(in.Duration),
		People:         normalizeCount(in.People),
		Projector:      in.Projector,
		Catering:       in.Catering,
		CateringPeople: in.CateringPeople,
		Internet:       in.Internet,
	}
	if s.selection.Catering && s.selection.CateringPeople <= 0 {
		s.selection.CateringPeople = 1
	}
	return s.selection
}

// ApplyBooking records a booking-side edit. The booking form only carries
// category and event; the duration is taken from the input's metadata when
// present and otherwise recovered from the current selection. Extras are
// untouched: the booking form does not present them.
func (s *Session) ApplyBooking(in BookingInput) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Category = in.Category
	s.selection.Facility = in.Event
	if in.Duration != nil {
		s.selection.Duration = normalizeCount(*in.Duration)
	} else if s.selection.Duration <= 0 {
		s.selection.Duration = 1
	}
	return s.selection
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Calculator derives the calculator view from the selection.
func (s *Session) Calculator() CalculatorView {
	sel := s.Selection()
	return CalculatorView{
		Category:       sel.Category,
		Facility:       sel.Facility,
		Duration:       sel.Duration,
		DurationLabel:  pricing.DurationLabel(sel.Facility),
		People:         sel.People,
		ShowPeople:     pricing.IsPerPerson(sel.Facility),
		Projector:      sel.Projector,
		Catering:       sel.Catering,
		CateringPeople: sel.CateringPeople,
		Internet:       sel.Internet,
	}
}

// Booking derives the booking view from the selection.
func (s *Session) Booking() BookingView {
	sel := s.Selection()
	return BookingView{
		Category: sel.Category,
		Event:    sel.Facility,
		Duration: sel.Duration,
	}
}

// Mode returns the current form mode.
func (s *Session) Mode() FormMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// BeginEdit loads a stored booking into the session and switches to editing
// mode. The category is not persisted on bookings and stays as selected.
func (s *Session) BeginEdit(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = Editing(b.Key)
	s.selection.Facility = b.Event
	s.selection.Duration = normalizeCount(b.Duration)
	s.selection.People = normalizeCount(b.People)
}

// CancelEdit resets the session to creating mode.
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = Creating()
}

// BookingDeleted clears edit mode when the deleted booking is the one being
// edited; no stale key is retained.
func (s *Session) BookingDeleted(key uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if edited, ok := s.mode.EditingKey(); ok && edited == key {
		s.mode = Creating()
	}
}

func normalizeCount(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
