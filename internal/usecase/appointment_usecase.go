package usecase

import (
	"context"

	"patient-management-service/internal/converter"
	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"
	"patient-management-service/internal/domain/repository"
	"patient-management-service/internal/scheduling"
	"patient-management-service/internal/service"
	"patient-management-service/internal/validation"
	"patient-management-service/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
	}
}

// Create schedules an appointment.
//
// Flow:
// 1. Validate the date and time fields
// 2. Verify the patient exists
// 3. Read the doctor's appointments for that day fresh from the store and
//    scan for a slot conflict
// 4. Insert; a unique-index violation on the slot means another request won
//    the race between steps 3 and 4 and is reported as the same conflict
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	slot, err := validation.AppointmentCreate(validation.AppointmentInput{
		Date: req.Date,
		Time: req.Time,
	})
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	existing, err := u.appointmentRepo.FindByDoctorAndDate(ctx, req.DoctorID, slot.Date)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	if scheduling.HasConflict(req.DoctorID, slot.Date, slot.Time, existing) {
		return nil, apperrors.Conflict("doctor already has an appointment at this date and time")
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      slot.Date,
		Time:      slot.Time,
		Notes:     req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, apperrors.Conflict("doctor already has an appointment at this date and time")
		}
		if isForeignKeyError(err, "patient") {
			return nil, apperrors.NotFound("patient")
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogCreate(ctx, actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), entity.JSON{
		"doctor_id": appointment.DoctorID.String(),
		"date":      req.Date,
		"time":      req.Time,
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context, doctorID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	var appointments []entity.Appointment
	var err error

	if doctorID != nil {
		appointments, err = u.appointmentRepo.FindByDoctorID(ctx, *doctorID)
	} else {
		appointments, err = u.appointmentRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperrors.NotFound("appointment")
	}

	return converter.AppointmentToResponse(appointment), nil
}
