package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/response"
	"clinic-agenda/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := &dto.ListAppointmentsQuery{
		Professional: params.Get("professional"),
		Date:         params.Get("date"),
		StartDate:    params.Get("start_date"),
		EndDate:      params.Get("end_date"),
		Ordering:     params.Get("ordering"),
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), query)
	if err != nil {
		var filterErr *usecase.FilterError
		switch {
		case errors.As(err, &filterErr):
			response.ValidationError(w, map[string]string{filterErr.Param: filterErr.Err.Error()})
		case errors.Is(err, usecase.ErrInvalidProfessional):
			response.ValidationError(w, map[string]string{"professional": err.Error()})
		case errors.Is(err, usecase.ErrInvalidDateFilter):
			response.ValidationError(w, map[string]string{"date": err.Error()})
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		h.writeAppointmentError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.NoContent(w)
}

// writeAppointmentError maps write-path errors to field-scoped validation
// failures: a scheduling collision or malformed timestamp is keyed to "date",
// a dangling professional reference to "professional_id".
func (h *AppointmentHandler) writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentConflict):
		response.ValidationError(w, map[string]string{"date": err.Error()})
	case errors.Is(err, usecase.ErrInvalidDate):
		response.ValidationError(w, map[string]string{"date": err.Error()})
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		response.ValidationError(w, map[string]string{"professional_id": err.Error()})
	default:
		response.InternalServerError(w, fallback)
	}
}
