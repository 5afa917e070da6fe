package repository

import (
	"context"
	"errors"

	"patient-management-service/internal/domain/entity"
	domainRepo "patient-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortable columns for patient listing; anything else falls back to created_at
var patientSortColumns = map[string]string{
	"name":          "name",
	"date_of_birth": "date_of_birth",
	"created_at":    "created_at",
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Patient{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Condition != "" {
		query = query.Where("medical_history ILIKE ?", "%"+filter.Condition+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sort, ok := patientSortColumns[filter.Sort]
	if !ok {
		sort = "created_at"
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order(sort).Limit(filter.Limit).Offset(offset).Find(&patients).Error; err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
