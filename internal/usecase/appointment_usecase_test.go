package usecase

import (
	"context"
	"testing"
	"time"

	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"
	"patient-management-service/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingPatientRepo(id uuid.UUID) *MockPatientRepository {
	return &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, lookup uuid.UUID) (*entity.Patient, error) {
			if lookup == id {
				return &entity.Patient{ID: id, Name: "Alice"}, nil
			}
			return nil, nil
		},
	}
}

func TestAppointmentUsecase_Create_SlotConflict(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	otherDoctorID := uuid.New()
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	booked := []entity.Appointment{
		{DoctorID: doctorID, Date: day, Time: "10:00"},
	}

	tests := []struct {
		name       string
		doctorID   uuid.UUID
		date       string
		timeOfDay  string
		wantReason apperrors.Reason
	}{
		{
			name:       "same doctor, same date, same time",
			doctorID:   doctorID,
			date:       "2024-07-01",
			timeOfDay:  "10:00",
			wantReason: apperrors.ReasonConflict,
		},
		{
			name:      "same doctor, same date, different time",
			doctorID:  doctorID,
			date:      "2024-07-01",
			timeOfDay: "11:00",
		},
		{
			name:      "different doctor, same date and time",
			doctorID:  otherDoctorID,
			date:      "2024-07-01",
			timeOfDay: "10:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var created *entity.Appointment
			appointmentRepo := &MockAppointmentRepository{
				FindByDoctorAndDateFunc: func(ctx context.Context, lookupDoctor uuid.UUID, date time.Time) ([]entity.Appointment, error) {
					if lookupDoctor == doctorID && date.Equal(day) {
						return booked, nil
					}
					return nil, nil
				},
				CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
					created = appointment
					return nil
				},
			}
			uc := NewAppointmentUsecase(testLogger(), appointmentRepo, existingPatientRepo(patientID), noopAuditService{})

			resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
				PatientID: patientID,
				DoctorID:  tc.doctorID,
				Date:      tc.date,
				Time:      tc.timeOfDay,
			})

			if tc.wantReason != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsReason(err, tc.wantReason))
				assert.Nil(t, created, "a conflicting slot must never reach the store")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tc.timeOfDay, resp.Time)
			assert.Equal(t, tc.date, resp.Date)
		})
	}
}

func TestAppointmentUsecase_Create_PatientNotFound(t *testing.T) {
	uc := NewAppointmentUsecase(testLogger(), &MockAppointmentRepository{}, existingPatientRepo(uuid.New()), noopAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		Date:      "2024-07-01",
		Time:      "10:00",
	})
	assert.True(t, apperrors.IsReason(err, apperrors.ReasonNotFound))
}

func TestAppointmentUsecase_Create_InvalidSlot(t *testing.T) {
	patientID := uuid.New()
	uc := NewAppointmentUsecase(testLogger(), &MockAppointmentRepository{}, existingPatientRepo(patientID), noopAuditService{})

	tests := []struct {
		name      string
		date      string
		timeOfDay string
	}{
		{name: "malformed date", date: "01/07/2024", timeOfDay: "10:00"},
		{name: "malformed time", date: "2024-07-01", timeOfDay: "10:00:00"},
		{name: "out of range time", date: "2024-07-01", timeOfDay: "25:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
				PatientID: patientID,
				DoctorID:  uuid.New(),
				Date:      tc.date,
				Time:      tc.timeOfDay,
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsReason(err, apperrors.ReasonInvalidFormat))
		})
	}
}

// A second request can win the slot between the conflict scan and the insert.
// The unique index on (doctor_id, date, time) rejects the loser and the
// violation surfaces as the same conflict error.
func TestAppointmentUsecase_Create_RaceLoserGetsConflict(t *testing.T) {
	patientID := uuid.New()
	appointmentRepo := &MockAppointmentRepository{
		CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_appointments_doctor_slot"}
		},
	}
	uc := NewAppointmentUsecase(testLogger(), appointmentRepo, existingPatientRepo(patientID), noopAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: patientID,
		DoctorID:  uuid.New(),
		Date:      "2024-07-01",
		Time:      "10:00",
	})
	assert.True(t, apperrors.IsReason(err, apperrors.ReasonConflict))
}

func TestAppointmentUsecase_Create_PatientDeletedMidFlight(t *testing.T) {
	patientID := uuid.New()
	appointmentRepo := &MockAppointmentRepository{
		CreateFunc: func(ctx context.Context, appointment *entity.Appointment) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_patient"}
		},
	}
	uc := NewAppointmentUsecase(testLogger(), appointmentRepo, existingPatientRepo(patientID), noopAuditService{})

	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: patientID,
		DoctorID:  uuid.New(),
		Date:      "2024-07-01",
		Time:      "10:00",
	})
	assert.True(t, apperrors.IsReason(err, apperrors.ReasonNotFound))
}

func TestAppointmentUsecase_GetAll_FiltersByDoctor(t *testing.T) {
	doctorID := uuid.New()
	byDoctorCalled := false
	appointmentRepo := &MockAppointmentRepository{
		FindByDoctorIDFunc: func(ctx context.Context, lookup uuid.UUID) ([]entity.Appointment, error) {
			byDoctorCalled = true
			assert.Equal(t, doctorID, lookup)
			return []entity.Appointment{{DoctorID: doctorID, Time: "09:00"}}, nil
		},
	}
	uc := NewAppointmentUsecase(testLogger(), appointmentRepo, &MockPatientRepository{}, noopAuditService{})

	resp, err := uc.GetAll(context.Background(), &doctorID)
	require.NoError(t, err)
	assert.True(t, byDoctorCalled)
	assert.Equal(t, 1, resp.Total)
}

func TestAppointmentUsecase_GetByID_NotFound(t *testing.T) {
	appointmentRepo := &MockAppointmentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
			return nil, nil
		},
	}
	uc := NewAppointmentUsecase(testLogger(), appointmentRepo, &MockPatientRepository{}, noopAuditService{})

	_, err := uc.GetByID(context.Background(), uuid.New())
	assert.True(t, apperrors.IsReason(err, apperrors.ReasonNotFound))
}
