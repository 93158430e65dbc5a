package entities

import "time"

// BookingStatus represents the lifecycle of a doctor booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a patient's appointment slot with a doctor.
type Booking struct {
	ID          string        `json:"id" db:"id"`
	DoctorID    string        `json:"doctor_id" db:"doctor_id"`
	PatientName string        `json:"patient_name" db:"patient_name"`
	Phone       string        `json:"phone,omitempty" db:"phone"`
	BookingDate string        `json:"booking_date" db:"booking_date"` // YYYY-MM-DD
	BookingTime string        `json:"booking_time" db:"booking_time"` // HH:MM
	Status      BookingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}
