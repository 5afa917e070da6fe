package converter

import (
	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BillingToResponse converts a BillingRecord entity to its response DTO
func BillingToResponse(record *entity.BillingRecord) *dto.BillingResponse {
	if record == nil {
		return nil
	}

	services := make([]dto.BillingServiceResponse, len(record.Services))
	for i, svc := range record.Services {
		services[i] = dto.BillingServiceResponse{
			Name:  svc.Name,
			Price: svc.Price,
		}
	}

	return &dto.BillingResponse{
		ID:        record.ID,
		PatientID: record.PatientID,
		Services:  services,
		Tax:       nullDecimalPtr(record.Tax),
		Discount:  nullDecimalPtr(record.Discount),
		Total:     record.Total,
		CreatedAt: record.CreatedAt,
	}
}

// BillingsToResponses converts a slice of BillingRecord entities to DTOs
func BillingsToResponses(records []entity.BillingRecord) []dto.BillingResponse {
	responses := make([]dto.BillingResponse, len(records))
	for i, record := range records {
		resp := BillingToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
