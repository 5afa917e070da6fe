package usecase

import (
	"context"
	"errors"
	"time"

	"patient-management-service/internal/domain/entity"
	"patient-management-service/internal/domain/repository"
	"patient-management-service/internal/service"

	"github.com/google/uuid"
)

// --- MockPatientRepository ---

// Compile-time check to ensure MockPatientRepository implements PatientRepository
var _ repository.PatientRepository = (*MockPatientRepository)(nil)

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	CreateFunc   func(ctx context.Context, patient *entity.Patient) error
	FindAllFunc  func(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	UpdateFunc   func(ctx context.Context, patient *entity.Patient) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// --- MockAppointmentRepository ---

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc              func(ctx context.Context, appointment *entity.Appointment) error
	FindAllFunc             func(ctx context.Context) ([]entity.Appointment, error)
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByDoctorAndDateFunc func(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindByDoctorIDFunc      func(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	if m.FindByDoctorAndDateFunc != nil {
		return m.FindByDoctorAndDateFunc(ctx, doctorID, date)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, doctorID)
	}
	return nil, nil
}

// --- MockBillingRepository ---

var _ repository.BillingRepository = (*MockBillingRepository)(nil)

// MockBillingRepository is a mock implementation of BillingRepository.
type MockBillingRepository struct {
	CreateFunc          func(ctx context.Context, record *entity.BillingRecord) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error)
	FindByPatientIDFunc func(ctx context.Context, patientID uuid.UUID) ([]entity.BillingRecord, error)
	FindAllFunc         func(ctx context.Context) ([]entity.BillingRecord, error)
}

func (m *MockBillingRepository) Create(ctx context.Context, record *entity.BillingRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *MockBillingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BillingRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockBillingRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.BillingRecord, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockBillingRepository) FindAll(ctx context.Context) ([]entity.BillingRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// --- MockUserRepository ---

var _ repository.UserRepository = (*MockUserRepository)(nil)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindAllFunc        func(ctx context.Context) ([]entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	CountByRoleFunc    func(ctx context.Context, roleID int) (int64, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, errors.New("FindByUsernameFunc not implemented in mock")
}

func (m *MockUserRepository) CountByRole(ctx context.Context, roleID int) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, roleID)
	}
	return 0, errors.New("CountByRoleFunc not implemented in mock")
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// --- noopAuditService ---

var _ service.AuditService = (*noopAuditService)(nil)

// noopAuditService discards the audit trail; the usecases under test swallow
// audit failures anyway.
type noopAuditService struct{}

func (noopAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) {
}

func (noopAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) {
}

func (noopAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) {
}
