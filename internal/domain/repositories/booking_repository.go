package repositories

import (
	"context"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// BookingRepository defines the interface for doctor booking data operations
type BookingRepository interface {
	// Create stores a new booking
	Create(ctx context.Context, booking *entities.Booking) error

	// IsSlotBooked reports whether a non-cancelled booking holds the slot
	IsSlotBooked(ctx context.Context, doctorID, date, slot string) (bool, error)

	// ListByDoctor returns a doctor's bookings ordered by date and time
	ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Booking, error)

	// Cancel marks an open booking as cancelled
	Cancel(ctx context.Context, id string) error
}
