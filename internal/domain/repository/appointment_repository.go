package repository

import (
	"context"
	"time"

	"patient-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindByDoctorAndDate returns the doctor's appointments on the given
	// calendar day, read fresh from the store (no caching).
	FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
}
