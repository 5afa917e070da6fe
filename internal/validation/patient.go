package validation

import (
	"strings"
	"time"
	"unicode"

	"patient-management-service/pkg/apperrors"
)

const (
	maxNameLength = 50
	dateLayout    = "2006-01-02"
)

// PatientInput carries the raw fields of a patient create request.
type PatientInput struct {
	Name           string
	DateOfBirth    string
	MedicalHistory string
}

// PatientUpdateInput carries the raw fields of a partial patient update.
// Only name and medical history may change after registration.
type PatientUpdateInput struct {
	Name           *string
	MedicalHistory *string
}

// PatientRecord is the normalized result of a successful validation.
type PatientRecord struct {
	Name           string
	DateOfBirth    time.Time
	MedicalHistory string
}

// PatientCreate validates a patient registration against the field rules and
// returns the normalized record or a tagged rejection. now anchors the
// future-date check so callers (and tests) control the clock.
func PatientCreate(in PatientInput, now time.Time) (*PatientRecord, error) {
	if in.Name == "" {
		return nil, apperrors.MissingField("name")
	}
	if err := PatientName(in.Name); err != nil {
		return nil, err
	}

	if in.DateOfBirth == "" {
		return nil, apperrors.MissingField("dob")
	}
	dob, err := DateOfBirth(in.DateOfBirth, now)
	if err != nil {
		return nil, err
	}

	return &PatientRecord{
		Name:           in.Name,
		DateOfBirth:    dob,
		MedicalHistory: in.MedicalHistory,
	}, nil
}

// PatientUpdate validates the fields present on a partial update.
func PatientUpdate(in PatientUpdateInput) error {
	if in.Name != nil {
		if *in.Name == "" {
			return apperrors.InvalidValue("name", "must not be empty")
		}
		if err := PatientName(*in.Name); err != nil {
			return err
		}
	}
	// Medical history is free text with no length rule.
	return nil
}

// PatientName checks the 1-50 character bound, the markup rule and the
// printable-text allowlist.
func PatientName(name string) error {
	runes := []rune(name)
	if len(runes) < 1 || len(runes) > maxNameLength {
		return apperrors.InvalidValue("name", "must be between 1 and 50 characters")
	}
	if containsMarkup(name) {
		return apperrors.InvalidValue("name", "must not contain markup")
	}
	for _, r := range runes {
		if !isAllowedNameRune(r) {
			return apperrors.InvalidValue("name", "contains disallowed characters")
		}
	}
	return nil
}

// DateOfBirth parses a calendar date and rejects dates after now.
func DateOfBirth(raw string, now time.Time) (time.Time, error) {
	dob, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.InvalidFormat("dob", "must be a valid date in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dob.After(today) {
		return time.Time{}, apperrors.InvalidValue("dob", "must not be in the future")
	}
	return dob, nil
}

// containsMarkup reports a '<' immediately followed by a tag-like sequence,
// i.e. a letter or '/'. A bare '<' in "a < b" is fine.
func containsMarkup(s string) bool {
	for i, r := range s {
		if r != '<' {
			continue
		}
		rest := s[i+len("<"):]
		if rest == "" {
			continue
		}
		next := []rune(rest)[0]
		if unicode.IsLetter(next) || next == '/' || next == '!' {
			return true
		}
	}
	return false
}

// isAllowedNameRune is the printable-text allowlist: letters, digits, marks,
// spaces and common punctuation. Control characters never get here (they are
// not printable) and pictographic/emoji code points are rejected explicitly.
func isAllowedNameRune(r rune) bool {
	if unicode.IsControl(r) || !unicode.IsPrint(r) {
		return false
	}
	if isPictographic(r) {
		return false
	}
	switch {
	case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r):
		return true
	case r == ' ':
		return true
	case strings.ContainsRune("'-.,()/", r):
		return true
	default:
		return false
	}
}

// isPictographic covers the emoji and symbol planes that IsPrint accepts.
func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // emoji, symbols, dingbat extensions
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
		return true
	case r >= 0x2190 && r <= 0x21FF: // arrows
		return true
	case r == 0xFE0F || r == 0xFE0E: // variation selectors
		return true
	case r == 0x200D: // zero-width joiner
		return true
	default:
		return false
	}
}
