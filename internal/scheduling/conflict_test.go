package scheduling

import (
	"testing"
	"time"

	"patient-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	doctorA := uuid.New()
	doctorB := uuid.New()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	existing := []entity.Appointment{
		{DoctorID: doctorA, Date: day, Time: "10:00"},
	}

	tests := []struct {
		name     string
		doctorID uuid.UUID
		date     time.Time
		time     string
		expected bool
	}{
		{
			name:     "same doctor, date and time conflicts",
			doctorID: doctorA,
			date:     day,
			time:     "10:00",
			expected: true,
		},
		{
			name:     "same doctor and date, different time",
			doctorID: doctorA,
			date:     day,
			time:     "11:00",
			expected: false,
		},
		{
			name:     "different doctor, same slot",
			doctorID: doctorB,
			date:     day,
			time:     "10:00",
			expected: false,
		},
		{
			name:     "same doctor and time, different day",
			doctorID: doctorA,
			date:     day.AddDate(0, 0, 1),
			time:     "10:00",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasConflict(tt.doctorID, tt.date, tt.time, existing))
		})
	}
}

func TestHasConflictCalendarDayEquality(t *testing.T) {
	doctorA := uuid.New()
	// Stored dates may carry a time-of-day component depending on how the
	// store scans them; the comparison must be calendar-day, not timestamp.
	stored := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	requested := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	existing := []entity.Appointment{
		{DoctorID: doctorA, Date: stored, Time: "10:00"},
	}

	assert.True(t, HasConflict(doctorA, requested, "10:00", existing))
}

func TestHasConflictEmptySet(t *testing.T) {
	assert.False(t, HasConflict(uuid.New(), time.Now(), "10:00", nil))
}
