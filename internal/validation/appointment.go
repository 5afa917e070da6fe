package validation

import (
	"time"

	"patient-management-service/pkg/apperrors"
)

const timeLayout = "15:04"

// AppointmentInput carries the raw fields of a scheduling request.
type AppointmentInput struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Notes     string
}

// AppointmentSlot is the normalized slot of a valid scheduling request.
type AppointmentSlot struct {
	Date time.Time
	Time string
}

// AppointmentCreate validates the date and time fields of a scheduling
// request. Requiredness of the id fields is enforced at the DTO layer; the
// conflict decision itself belongs to the scheduling package.
func AppointmentCreate(in AppointmentInput) (*AppointmentSlot, error) {
	if in.Date == "" {
		return nil, apperrors.MissingField("date")
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, apperrors.InvalidFormat("date", "must be a valid date in YYYY-MM-DD format")
	}

	if in.Time == "" {
		return nil, apperrors.MissingField("time")
	}
	if _, err := time.Parse(timeLayout, in.Time); err != nil {
		return nil, apperrors.InvalidFormat("time", "must be a valid time in HH:MM format")
	}

	return &AppointmentSlot{Date: date, Time: in.Time}, nil
}
