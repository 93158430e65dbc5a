package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afandyna/ser-Health/internal/domain/entities"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

func TestBookingAdapter_Create(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewBookingAdapter(client)

	mock.ExpectExec(`INSERT INTO "bookings"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "bookings"`).WillReturnError(&pq.Error{Code: "23505"})

	booking := &entities.Booking{ID: "b1", DoctorID: "d1", PatientName: "Mona", BookingDate: "2024-05-01", BookingTime: "10:00", Status: entities.BookingPending}
	require.NoError(t, adapter.Create(context.Background(), booking))

	err := adapter.Create(context.Background(), &entities.Booking{ID: "b2", DoctorID: "d1", BookingDate: "2024-05-01", BookingTime: "10:00"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingAdapter_IsSlotBooked(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewBookingAdapter(client)

	mock.ExpectQuery(`SELECT COUNT\(.+\) FROM "bookings"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(.+\) FROM "bookings"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	booked, err := adapter.IsSlotBooked(context.Background(), "d1", "2024-05-01", "10:00")
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = adapter.IsSlotBooked(context.Background(), "d1", "2024-05-01", "11:00")
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestBookingAdapter_ListByDoctor(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewBookingAdapter(client)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "doctor_id", "patient_name", "phone", "booking_date", "booking_time", "status", "created_at"}).
		AddRow("b1", "d1", "Mona", "", "2024-05-01", "09:00", "pending", now).
		AddRow("b2", "d1", "Ali", "010", "2024-05-01", "10:00", "cancelled", now)
	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).WillReturnRows(rows)

	bookings, err := adapter.ListByDoctor(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, entities.BookingCancelled, bookings[1].Status)
}

func TestBookingAdapter_Cancel(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewBookingAdapter(client)

	mock.ExpectExec(`UPDATE "bookings"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "bookings"`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, adapter.Cancel(context.Background(), "b1"))
	err := adapter.Cancel(context.Background(), "b1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
