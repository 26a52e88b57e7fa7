package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	Date           string `json:"date" validate:"required"` // RFC3339, e.g. 2025-06-15T10:30:00Z
	ProfessionalID uint   `json:"professional_id" validate:"required"`
	Notes          string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Date           string  `json:"date" validate:"omitempty"` // RFC3339
	ProfessionalID *uint   `json:"professional_id" validate:"omitempty"`
	Notes          *string `json:"notes" validate:"omitempty"`
}

// ListAppointmentsQuery carries the supported list query parameters, raw as
// received; the usecase parses and rejects malformed values.
type ListAppointmentsQuery struct {
	Professional string // numeric id
	Date         string // YYYY-MM-DD
	StartDate    string // RFC3339 or YYYY-MM-DD
	EndDate      string // RFC3339 or YYYY-MM-DD
	Ordering     string
}

// Response DTOs

type AppointmentResponse struct {
	ID             uint                  `json:"id"`
	Date           time.Time             `json:"date"`
	ProfessionalID uint                  `json:"professional_id"`
	Professional   *ProfessionalResponse `json:"professional,omitempty"`
	Notes          string                `json:"notes,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
