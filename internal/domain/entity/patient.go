package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient record
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(50);not null" json:"name"`
	DateOfBirth    time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	BillingRecords []BillingRecord `gorm:"foreignKey:PatientID" json:"billing_records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
