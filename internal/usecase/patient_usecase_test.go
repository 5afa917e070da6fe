package usecase

import (
	"context"
	"testing"

	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"
	"patient-management-service/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// patientStore is a map-backed PatientRepository for lifecycle tests.
func newPatientStore() (*MockPatientRepository, map[uuid.UUID]*entity.Patient) {
	store := make(map[uuid.UUID]*entity.Patient)
	repo := &MockPatientRepository{
		CreateFunc: func(ctx context.Context, patient *entity.Patient) error {
			patient.ID = uuid.New()
			clone := *patient
			store[patient.ID] = &clone
			return nil
		},
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			patient, ok := store[id]
			if !ok {
				return nil, nil
			}
			clone := *patient
			return &clone, nil
		},
		UpdateFunc: func(ctx context.Context, patient *entity.Patient) error {
			clone := *patient
			store[patient.ID] = &clone
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			if _, ok := store[id]; !ok {
				return 0, nil
			}
			delete(store, id)
			return 1, nil
		},
	}
	return repo, store
}

func TestPatientUsecase_Lifecycle(t *testing.T) {
	repo, store := newPatientStore()
	uc := NewPatientUsecase(testLogger(), repo, noopAuditService{})
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreatePatientRequest{
		Name:           "Alice Johnson",
		DateOfBirth:    "1985-03-12",
		MedicalHistory: "asthma",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Alice Johnson", created.Name)
	assert.Equal(t, "1985-03-12", created.DateOfBirth)
	assert.Len(t, store, 1)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "asthma", got.MedicalHistory)

	newName := "Alice Smith"
	updated, err := uc.Update(ctx, created.ID, &dto.UpdatePatientRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.Name)
	assert.Equal(t, "asthma", updated.MedicalHistory, "untouched field must survive a partial update")

	err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, store)

	_, err = uc.GetByID(ctx, created.ID)
	assert.True(t, apperrors.IsReason(err, apperrors.ReasonNotFound))
}

func TestPatientUsecase_Create_InvalidInput(t *testing.T) {
	repo, store := newPatientStore()
	uc := NewPatientUsecase(testLogger(), repo, noopAuditService{})

	tests := []struct {
		name    string
		request dto.CreatePatientRequest
		reason  apperrors.Reason
	}{
		{
			name:    "empty name",
			request: dto.CreatePatientRequest{Name: "", DateOfBirth: "1990-01-01"},
			reason:  apperrors.ReasonMissingField,
		},
		{
			name:    "malformed date",
			request: dto.CreatePatientRequest{Name: "Bob", DateOfBirth: "12-03-1990"},
			reason:  apperrors.ReasonInvalidFormat,
		},
		{
			name:    "future date of birth",
			request: dto.CreatePatientRequest{Name: "Bob", DateOfBirth: "2999-01-01"},
			reason:  apperrors.ReasonInvalidValue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), &tc.request)
			require.Error(t, err)
			assert.True(t, apperrors.IsReason(err, tc.reason))
		})
	}

	assert.Empty(t, store, "rejected requests must not reach the repository")
}

func TestPatientUsecase_Update_NotFound(t *testing.T) {
	repo, _ := newPatientStore()
	uc := NewPatientUsecase(testLogger(), repo, noopAuditService{})

	name := "Ghost"
	_, err := uc.Update(context.Background(), uuid.New(), &dto.UpdatePatientRequest{Name: &name})
	assert.True(t, apperrors.IsReason(err, apperrors.ReasonNotFound))
}

func TestPatientUsecase_Delete_NotFound(t *testing.T) {
	repo, _ := newPatientStore()
	uc := NewPatientUsecase(testLogger(), repo, noopAuditService{})

	err := uc.Delete(context.Background(), uuid.New())
	assert.True(t, apperrors.IsReason(err, apperrors.ReasonNotFound))
}

func TestPatientUsecase_GetAll_DefaultsPagination(t *testing.T) {
	var captured *entity.PatientFilter
	repo := &MockPatientRepository{
		FindAllFunc: func(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
			captured = filter
			return []entity.Patient{}, 0, nil
		},
	}
	uc := NewPatientUsecase(testLogger(), repo, noopAuditService{})

	_, err := uc.GetAll(context.Background(), &dto.ListPatientsQuery{Name: "ali"})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 10, captured.Limit)
	assert.Equal(t, "ali", captured.Name)
}
