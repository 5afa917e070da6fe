package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a scheduled visit. An appointment is immutable after
// creation; the (doctor_id, date, time) triple is unique so two concurrent
// scheduling requests for the same slot cannot both succeed (the losing
// insert fails on the index even when both passed the in-core conflict scan).
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_doctor_slot" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_appointments_doctor_slot" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_appointments_doctor_slot" json:"time"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// SameSlot reports whether the appointment occupies the given doctor slot.
// Date equality is calendar-day equality, time is an exact "HH:MM" match.
func (a *Appointment) SameSlot(doctorID uuid.UUID, date time.Time, timeOfDay string) bool {
	if a.DoctorID != doctorID {
		return false
	}
	ay, am, ad := a.Date.Date()
	ry, rm, rd := date.Date()
	return ay == ry && am == rm && ad == rd && a.Time == timeOfDay
}
