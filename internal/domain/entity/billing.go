package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillingRecord represents a finalized billing event for a patient. Records
// are write-once: the total is computed at creation and never recalculated.
type BillingRecord struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	Tax       decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"tax,omitempty"`
	Discount  decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"discount,omitempty"`
	Total     decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt time.Time           `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient  Patient          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Services []BillingService `gorm:"foreignKey:BillingRecordID" json:"services"`
}

func (BillingRecord) TableName() string {
	return "billing_records"
}

// BillingService is a single line item on a billing record. Position keeps
// the submitted order stable across reads.
type BillingService struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	BillingRecordID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Position        int             `gorm:"not null" json:"-"`
}

func (BillingService) TableName() string {
	return "billing_services"
}
