package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/response"
	"clinic-agenda/pkg/validator"

	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.CreateProfessional(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create professional")
		return
	}

	response.Success(w, http.StatusCreated, "Professional created successfully", professional)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProfessionalNotFound) {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to get professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	query := &dto.ListProfessionalsQuery{
		Search:     r.URL.Query().Get("search"),
		Profession: r.URL.Query().Get("profession"),
		Ordering:   r.URL.Query().Get("ordering"),
	}

	professionals, err := h.professionalUsecase.ListProfessionals(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to list professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrProfessionalNotFound) {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to update professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

// DeleteProfessional removes the professional together with every appointment
// it owns.
func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.professionalUsecase.DeleteProfessional(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProfessionalNotFound) {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to delete professional")
		return
	}

	response.NoContent(w)
}

// parseID reads the numeric {id} path variable, writing a 400 when malformed.
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return uint(id), true
}
