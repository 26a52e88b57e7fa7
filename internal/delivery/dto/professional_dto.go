package dto

import "time"

// Request DTOs

type CreateProfessionalRequest struct {
	PreferredName string `json:"preferred_name" validate:"required,max=255"`
	Profession    string `json:"profession" validate:"required,max=100"`
	Specialty     string `json:"specialty" validate:"omitempty,max=100"`
	Address       string `json:"address" validate:"required"`
	Contact       string `json:"contact" validate:"required,len=11,number"`
}

type UpdateProfessionalRequest struct {
	PreferredName string  `json:"preferred_name" validate:"omitempty,max=255"`
	Profession    string  `json:"profession" validate:"omitempty,max=100"`
	Specialty     *string `json:"specialty" validate:"omitempty,max=100"`
	Address       string  `json:"address" validate:"omitempty"`
	Contact       string  `json:"contact" validate:"omitempty,len=11,number"`
}

// ListProfessionalsQuery carries the supported list query parameters.
type ListProfessionalsQuery struct {
	Search     string
	Profession string
	Ordering   string
}

// Response DTOs

type ProfessionalResponse struct {
	ID            uint      `json:"id"`
	PreferredName string    `json:"preferred_name"`
	Profession    string    `json:"profession"`
	Specialty     string    `json:"specialty,omitempty"`
	Address       string    `json:"address"`
	Contact       string    `json:"contact"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
