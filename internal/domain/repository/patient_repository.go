package repository

import (
	"context"

	"patient-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
