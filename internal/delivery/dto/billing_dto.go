package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BillingServiceRequest struct {
	Name string `json:"name" validate:"required"`
	// No required tag: a zero price is a legal line item.
	Price decimal.Decimal `json:"price"`
}

type CreateBillingRequest struct {
	PatientID uuid.UUID               `json:"patientId" validate:"required"`
	Services  []BillingServiceRequest `json:"services" validate:"required,min=1,dive"`
	Tax       decimal.NullDecimal     `json:"tax"`
	Discount  decimal.NullDecimal     `json:"discount"`
}

// Response DTOs

type BillingServiceResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type BillingResponse struct {
	ID        uuid.UUID                `json:"id"`
	PatientID uuid.UUID                `json:"patient_id"`
	Services  []BillingServiceResponse `json:"services"`
	Tax       *decimal.Decimal         `json:"tax,omitempty"`
	Discount  *decimal.Decimal         `json:"discount,omitempty"`
	Total     decimal.Decimal          `json:"total"`
	CreatedAt time.Time                `json:"created_at"`
}

type BillingListResponse struct {
	Records []BillingResponse `json:"records"`
	Total   int               `json:"total"`
}
