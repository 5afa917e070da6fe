package usecase

import (
	"context"

	"patient-management-service/internal/billing"
	"patient-management-service/internal/converter"
	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"
	"patient-management-service/internal/domain/repository"
	"patient-management-service/internal/service"
	"patient-management-service/internal/validation"
	"patient-management-service/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BillingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error)
	GetAll(ctx context.Context, patientID *uuid.UUID) (*dto.BillingListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BillingResponse, error)
}

type billingUsecase struct {
	log          *logrus.Logger
	billingRepo  repository.BillingRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewBillingUsecase(
	log *logrus.Logger,
	billingRepo repository.BillingRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		log:          log,
		billingRepo:  billingRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// Create validates the billing request, computes the total and persists the
// record with its service lines. Records are write-once.
func (u *billingUsecase) Create(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error) {
	services := make([]validation.ServiceInput, len(req.Services))
	for i, svc := range req.Services {
		services[i] = validation.ServiceInput{Name: svc.Name, Price: svc.Price}
	}
	if err := validation.BillingServices(services); err != nil {
		return nil, err
	}
	if err := validation.BillingAdjustments(req.Tax, req.Discount); err != nil {
		return nil, err
	}

	// Patient existence is an explicit rule, not a side effect of the insert.
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}

	prices := make([]decimal.Decimal, len(req.Services))
	for i, svc := range req.Services {
		prices[i] = svc.Price
	}
	total := billing.ComputeTotal(prices, req.Tax, req.Discount)

	record := &entity.BillingRecord{
		PatientID: req.PatientID,
		Tax:       req.Tax,
		Discount:  req.Discount,
		Total:     total,
	}
	record.Services = make([]entity.BillingService, len(req.Services))
	for i, svc := range req.Services {
		record.Services[i] = entity.BillingService{
			Name:     svc.Name,
			Price:    svc.Price,
			Position: i,
		}
	}

	if err := u.billingRepo.Create(ctx, record); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, apperrors.NotFound("patient")
		}
		u.log.Warnf("Failed to create billing record: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogCreate(ctx, actorID, entity.AuditActionBillingCreate, "billing_record", record.ID.String(), entity.JSON{
		"patient_id": record.PatientID.String(),
		"total":      record.Total.String(),
	})

	return converter.BillingToResponse(record), nil
}

func (u *billingUsecase) GetAll(ctx context.Context, patientID *uuid.UUID) (*dto.BillingListResponse, error) {
	var records []entity.BillingRecord
	var err error

	if patientID != nil {
		records, err = u.billingRepo.FindByPatientID(ctx, *patientID)
	} else {
		records, err = u.billingRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to find billing records: %+v", err)
		return nil, err
	}

	return &dto.BillingListResponse{
		Records: converter.BillingsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *billingUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.BillingResponse, error) {
	record, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record %s: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, apperrors.NotFound("billing record")
	}

	return converter.BillingToResponse(record), nil
}
