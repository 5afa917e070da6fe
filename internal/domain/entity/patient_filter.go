package entity

// PatientFilter is a domain-level filter for querying patients.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Name      string // Substring match on name (ILIKE)
	Condition string // Substring match on medical history (ILIKE)
	Sort      string // Whitelisted sort key, defaults to created_at
	Page      int
	Limit     int
}
