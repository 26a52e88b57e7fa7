package entity

import "time"

// AppointmentFilter is a domain-level filter for querying appointments.
// All fields are optional and compose with AND semantics.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	ProfessionalID *uint      // exact match on owning professional
	Date           *time.Time // exact calendar date, truncated to UTC midnight
	StartDate      *time.Time // inclusive lower bound on the timestamp
	EndDate        *time.Time // inclusive upper bound on the timestamp
	Ordering       string     // "date", "-date", "created_at", "-created_at"; default "-date"
}
