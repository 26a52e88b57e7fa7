package converter

import (
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		Date:           appointment.Date,
		ProfessionalID: appointment.ProfessionalID,
		Notes:          appointment.Notes,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	// Include professional info if preloaded
	if appointment.Professional.ID != 0 {
		response.Professional = ProfessionalToResponse(&appointment.Professional)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
