package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patientId" validate:"required"`
	DoctorID  uuid.UUID `json:"doctorId" validate:"required"`
	Date      string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time      string    `json:"time" validate:"required"` // Format: HH:MM
	Notes     string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
