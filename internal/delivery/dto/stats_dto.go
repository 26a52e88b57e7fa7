package dto

// SpecialtyGroup summarizes the professionals declaring one specialty.
type SpecialtyGroup struct {
	Name          string                 `json:"name"`
	Count         int                    `json:"count"`
	Professionals []ProfessionalResponse `json:"professionals"` // capped at 3
}

// StatsResponse is the dashboard payload: overall counts, the specialty
// breakdown and the next upcoming appointments.
type StatsResponse struct {
	ProfessionalsCount   int64                 `json:"professionals_count"`
	AppointmentsCount    int64                 `json:"appointments_count"`
	SpecialtiesCount     int                   `json:"specialties_count"`
	Specialties          []SpecialtyGroup      `json:"specialties"`
	UpcomingAppointments []AppointmentResponse `json:"upcoming_appointments"`
}
