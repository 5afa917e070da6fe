package usecase

import (
	"context"
	"time"

	"patient-management-service/internal/converter"
	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/delivery/http/middleware"
	"patient-management-service/internal/domain/entity"
	"patient-management-service/internal/domain/repository"
	"patient-management-service/internal/service"
	"patient-management-service/internal/validation"
	"patient-management-service/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context, query *dto.ListPatientsQuery) (*dto.PatientListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	record, err := validation.PatientCreate(validation.PatientInput{
		Name:           req.Name,
		DateOfBirth:    req.DateOfBirth,
		MedicalHistory: req.MedicalHistory,
	}, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:           record.Name,
		DateOfBirth:    record.DateOfBirth,
		MedicalHistory: record.MedicalHistory,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogCreate(ctx, actorID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), patient.Name)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAll(ctx context.Context, query *dto.ListPatientsQuery) (*dto.PatientListResponse, error) {
	filter := &entity.PatientFilter{
		Name:      query.Name,
		Condition: query.Condition,
		Sort:      query.Sort,
		Page:      query.Page,
		Limit:     query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	patients, total, err := u.patientRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := validation.PatientUpdate(validation.PatientUpdateInput{
		Name:           req.Name,
		MedicalHistory: req.MedicalHistory,
	}); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	oldName := patient.Name
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = *req.MedicalHistory
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogUpdate(ctx, actorID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), oldName, patient.Name)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return apperrors.NotFound("patient")
	}

	affected, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("patient")
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogDelete(ctx, actorID, entity.AuditActionPatientDelete, "patient", id.String(), patient.Name)

	return nil
}

// actorFromContext resolves the authenticated user for the audit trail,
// nil when the request carried no identity.
func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
