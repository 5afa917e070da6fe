package repository

import (
	"context"

	"patient-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

type BillingRepository interface {
	Create(ctx context.Context, record *entity.BillingRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error)
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.BillingRecord, error)
	FindAll(ctx context.Context) ([]entity.BillingRecord, error)
}
