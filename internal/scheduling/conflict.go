// Package scheduling decides whether a requested appointment slot collides
// with a doctor's existing appointments.
package scheduling

import (
	"time"

	"patient-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

// HasConflict scans the doctor's existing appointments for the requested
// (doctor, date, time) triple. Date matching is calendar-day equality, time
// is an exact "HH:MM" string match; the first hit short-circuits.
//
// The scan is a fast-path check only: existing must be read fresh from the
// store per request, and two concurrent requests can still both pass before
// either writes. The store's unique index on the triple decides the race;
// the losing insert surfaces as the same conflict rejection.
func HasConflict(doctorID uuid.UUID, date time.Time, timeOfDay string, existing []entity.Appointment) bool {
	for i := range existing {
		if existing[i].SameSlot(doctorID, date, timeOfDay) {
			return true
		}
	}
	return false
}
