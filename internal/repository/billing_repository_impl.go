package repository

import (
	"context"
	"errors"

	"patient-management-service/internal/domain/entity"
	domainRepo "patient-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

// Create inserts the record and its service lines in one transaction. GORM
// cascades the Services association from the parent insert.
func (r *billingRepository) Create(ctx context.Context, record *entity.BillingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *billingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error) {
	var record entity.BillingRecord
	err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *billingRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.BillingRecord, error) {
	var records []entity.BillingRecord
	err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *billingRepository) FindAll(ctx context.Context) ([]entity.BillingRecord, error) {
	var records []entity.BillingRecord
	err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
