package validation

import (
	"github.com/shopspring/decimal"

	"patient-management-service/pkg/apperrors"
)

// ServiceInput is a single submitted billing line item.
type ServiceInput struct {
	Name  string
	Price decimal.Decimal
}

// BillingServices validates the services sequence of a billing request:
// it must be non-empty and one negative price rejects the whole record.
func BillingServices(services []ServiceInput) error {
	if len(services) == 0 {
		return apperrors.MissingField("services")
	}
	for _, svc := range services {
		if svc.Name == "" {
			return apperrors.MissingField("services.name")
		}
		if svc.Price.IsNegative() {
			return apperrors.InvalidValue("services.price", "must not be negative")
		}
	}
	return nil
}

// BillingAdjustments validates the optional tax and discount amounts.
// Both are absolute amounts, not percentages.
func BillingAdjustments(tax, discount decimal.NullDecimal) error {
	if tax.Valid && tax.Decimal.IsNegative() {
		return apperrors.InvalidValue("tax", "must not be negative")
	}
	if discount.Valid && discount.Decimal.IsNegative() {
		return apperrors.InvalidValue("discount", "must not be negative")
	}
	return nil
}
