package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// BookingStore is an in-process BookingRepository.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]entities.Booking
}

var _ repositories.BookingRepository = (*BookingStore)(nil)

// NewBookingStore creates an empty store.
func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: make(map[string]entities.Booking)}
}

func (s *BookingStore) Create(_ context.Context, booking *entities.Booking) error {
	if booking == nil {
		return apperrors.NewInternalError("booking is nil", fmt.Errorf("booking is nil"))
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[booking.ID]; ok {
		return apperrors.NewConflictError(fmt.Sprintf("booking %s already exists", booking.ID))
	}
	if booking.Status != entities.BookingCancelled && s.slotTaken(booking.DoctorID, booking.BookingDate, booking.BookingTime) {
		return apperrors.NewConflictError("slot already booked")
	}
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *BookingStore) IsSlotBooked(_ context.Context, doctorID, date, slot string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slotTaken(doctorID, date, slot), nil
}

func (s *BookingStore) slotTaken(doctorID, date, slot string) bool {
	for _, b := range s.bookings {
		if b.DoctorID == doctorID && b.BookingDate == date && b.BookingTime == slot && b.Status != entities.BookingCancelled {
			return true
		}
	}
	return false
}

func (s *BookingStore) ListByDoctor(_ context.Context, doctorID string) ([]*entities.Booking, error) {
	s.mu.RLock()
	out := []*entities.Booking{}
	for _, b := range s.bookings {
		if b.DoctorID == doctorID {
			b := b
			out = append(out, &b)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingDate != out[j].BookingDate {
			return out[i].BookingDate < out[j].BookingDate
		}
		return out[i].BookingTime < out[j].BookingTime
	})
	return out, nil
}

func (s *BookingStore) Cancel(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.Status == entities.BookingCancelled {
		return apperrors.NewNotFoundError(fmt.Sprintf("open booking with id %s not found", id))
	}
	b.Status = entities.BookingCancelled
	s.bookings[id] = b
	return nil
}
