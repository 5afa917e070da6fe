package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name           string `json:"name" validate:"required"`
	DateOfBirth    string `json:"dob" validate:"required"` // Format: YYYY-MM-DD
	MedicalHistory string `json:"medicalHistory" validate:"omitempty"`
}

// UpdatePatientRequest is a partial update; absent fields are left untouched.
type UpdatePatientRequest struct {
	Name           *string `json:"name" validate:"omitempty"`
	MedicalHistory *string `json:"medicalHistory" validate:"omitempty"`
}

// ListPatientsQuery mirrors the supported query string parameters.
type ListPatientsQuery struct {
	Name      string
	Condition string
	Sort      string
	Page      int
	Limit     int
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DateOfBirth    string    `json:"dob"`
	MedicalHistory string    `json:"medicalHistory,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
