package database

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

const bookingsTable = "bookings"

// BookingAdapter implements booking persistence in Postgres.
type BookingAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBookingAdapter creates a new booking adapter.
func NewBookingAdapter(client *postgres.Client) repositories.BookingRepository {
	return &BookingAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a booking. A second open booking for the same slot is a conflict.
func (a *BookingAdapter) Create(ctx context.Context, booking *entities.Booking) error {
	if booking == nil {
		return apperrors.NewInternalError("booking is nil", fmt.Errorf("booking is nil"))
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	record := goqu.Record{
		"id":           booking.ID,
		"doctor_id":    booking.DoctorID,
		"patient_name": booking.PatientName,
		"phone":        booking.Phone,
		"booking_date": booking.BookingDate,
		"booking_time": booking.BookingTime,
		"status":       string(booking.Status),
		"created_at":   booking.CreatedAt,
	}

	query, args, err := a.db.Insert(bookingsTable).Rows(record).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build booking insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("slot already booked")
		}
		return apperrors.NewInternalError("failed to create booking", err)
	}
	return nil
}

// IsSlotBooked reports whether an open booking holds the slot.
func (a *BookingAdapter) IsSlotBooked(ctx context.Context, doctorID, date, slot string) (bool, error) {
	query, args, err := a.db.From(bookingsTable).
		Select(goqu.COUNT("*")).
		Where(
			goqu.Ex{"doctor_id": doctorID, "booking_date": date, "booking_time": slot},
			goqu.C("status").Neq(string(entities.BookingCancelled)),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build slot query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to check slot", err)
	}
	return count > 0, nil
}

// ListByDoctor returns a doctor's bookings ordered by date and time.
func (a *BookingAdapter) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Booking, error) {
	query, args, err := a.db.From(bookingsTable).
		Select("id", "doctor_id", "patient_name", "phone", "booking_date", "booking_time", "status", "created_at").
		Where(goqu.Ex{"doctor_id": doctorID}).
		Order(goqu.I("booking_date").Asc(), goqu.I("booking_time").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build booking query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bookings", err)
	}
	defer rows.Close()

	bookings := []*entities.Booking{}
	for rows.Next() {
		var (
			b      entities.Booking
			status string
		)
		if err := rows.Scan(&b.ID, &b.DoctorID, &b.PatientName, &b.Phone, &b.BookingDate, &b.BookingTime, &status, &b.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan booking", err)
		}
		b.Status = entities.BookingStatus(status)
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate bookings", err)
	}
	return bookings, nil
}

// Cancel marks an open booking as cancelled.
func (a *BookingAdapter) Cancel(ctx context.Context, id string) error {
	query, args, err := a.db.Update(bookingsTable).
		Set(goqu.Record{"status": string(entities.BookingCancelled)}).
		Where(goqu.Ex{"id": id}, goqu.C("status").Neq(string(entities.BookingCancelled))).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build booking update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to cancel booking", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("open booking with id %s not found", id))
	}
	return nil
}
