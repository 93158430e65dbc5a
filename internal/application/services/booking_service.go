package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

// BookingRequest is the patient-supplied part of a booking.
type BookingRequest struct {
	DoctorID    string `json:"doctor_id"`
	PatientName string `json:"patient_name"`
	Phone       string `json:"phone"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
}

// BookingService handles doctor slot booking.
type BookingService struct {
	repo repositories.BookingRepository
	now  func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(repo repositories.BookingRepository) *BookingService {
	return &BookingService{repo: repo, now: time.Now}
}

// Book validates the request and reserves the slot.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (*entities.Booking, error) {
	req.DoctorID = strings.TrimSpace(req.DoctorID)
	req.PatientName = strings.TrimSpace(req.PatientName)
	req.Phone = strings.TrimSpace(req.Phone)

	switch {
	case req.DoctorID == "":
		return nil, apperrors.NewValidationError("doctor_id is required")
	case req.PatientName == "":
		return nil, apperrors.NewValidationError("patient_name is required")
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, apperrors.NewValidationError("booking_date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.BookingTime); err != nil {
		return nil, apperrors.NewValidationError("booking_time must be HH:MM")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, apperrors.NewValidationError("cannot book a date in the past")
	}

	booked, err := s.repo.IsSlotBooked(ctx, req.DoctorID, req.BookingDate, req.BookingTime)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, apperrors.NewConflictError("slot already booked")
	}

	booking := &entities.Booking{
		ID:          uuid.New().String(),
		DoctorID:    req.DoctorID,
		PatientName: req.PatientName,
		Phone:       req.Phone,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		Status:      entities.BookingPending,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("booking_id", booking.ID).
		Str("doctor_id", booking.DoctorID).
		Str("date", booking.BookingDate).
		Str("time", booking.BookingTime).
		Msg("booking created")
	return booking, nil
}

// Cancel releases a booking's slot.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("booking id is required")
	}
	return s.repo.Cancel(ctx, id)
}

// ListByDoctor returns a doctor's bookings.
func (s *BookingService) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Booking, error) {
	if strings.TrimSpace(doctorID) == "" {
		return nil, apperrors.NewValidationError("doctor id is required")
	}
	return s.repo.ListByDoctor(ctx, doctorID)
}
