package validation

import (
	"testing"

	"patient-management-service/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillingServices(t *testing.T) {
	tests := []struct {
		name           string
		services       []ServiceInput
		expectedReason apperrors.Reason
	}{
		{
			name: "valid services",
			services: []ServiceInput{
				{Name: "Consultation", Price: decimal.NewFromInt(100)},
				{Name: "X-Ray", Price: decimal.NewFromInt(250)},
			},
		},
		{
			name: "zero price is allowed",
			services: []ServiceInput{
				{Name: "Follow-up", Price: decimal.Zero},
			},
		},
		{
			name:           "empty sequence",
			services:       nil,
			expectedReason: apperrors.ReasonMissingField,
		},
		{
			name: "one negative price rejects the whole record",
			services: []ServiceInput{
				{Name: "Consultation", Price: decimal.NewFromInt(100)},
				{Name: "Adjustment", Price: decimal.NewFromInt(-5)},
			},
			expectedReason: apperrors.ReasonInvalidValue,
		},
		{
			name: "unnamed service",
			services: []ServiceInput{
				{Name: "", Price: decimal.NewFromInt(10)},
			},
			expectedReason: apperrors.ReasonMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BillingServices(tt.services)
			if tt.expectedReason == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsReason(err, tt.expectedReason), "expected %s, got %v", tt.expectedReason, err)
		})
	}
}

func TestBillingAdjustments(t *testing.T) {
	pos := decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true}
	neg := decimal.NullDecimal{Decimal: decimal.NewFromInt(-10), Valid: true}
	absent := decimal.NullDecimal{}

	assert.NoError(t, BillingAdjustments(absent, absent))
	assert.NoError(t, BillingAdjustments(pos, pos))
	assert.Error(t, BillingAdjustments(neg, absent))
	assert.Error(t, BillingAdjustments(absent, neg))
}
