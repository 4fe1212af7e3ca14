package handler

import (
	"net/http"

	"vetclinic-api/internal/usecase"
	"vetclinic-api/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// OwnerDashboard handles the pet owner dashboard counters
// @Summary Owner dashboard stats
// @Tags Stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /stats/owner-dashboard [get]
func (h *StatsHandler) OwnerDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.OwnerDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// DoctorDashboard handles the doctor dashboard counters
// @Summary Doctor dashboard stats
// @Tags Stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /stats/doctor-dashboard [get]
func (h *StatsHandler) DoctorDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.DoctorDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
