package handler

import (
	"net/http"

	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}
