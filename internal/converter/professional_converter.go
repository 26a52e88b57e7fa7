package converter

import (
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to ProfessionalResponse DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:            professional.ID,
		PreferredName: professional.PreferredName,
		Profession:    professional.Profession,
		Specialty:     professional.Specialty,
		Address:       professional.Address,
		Contact:       professional.Contact,
		CreatedAt:     professional.CreatedAt,
		UpdatedAt:     professional.UpdatedAt,
	}
}

// ProfessionalsToResponses converts a slice of Professional entities to slice of ProfessionalResponse DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
