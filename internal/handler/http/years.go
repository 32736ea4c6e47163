package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
	"github.com/go-chi/chi/v5"
)

// listYears returns all fiscal years, most recent first.
func (h *HTTPHandler) listYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.services.Years.ListYears(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if years == nil {
		years = []models.YearRecord{}
	}
	_, _ = utils.WriteJSON(w, models.YearsResponse{Data: years}, http.StatusOK)
}

// createYear registers a new open fiscal year. Admin only.
func (h *HTTPHandler) createYear(w http.ResponseWriter, r *http.Request) {
	var req models.YearRecord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.services.Years.CreateYear(r.Context(), req.Year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.YearResponse{
		Data:    created,
		Message: "year created",
	}, http.StatusCreated)
}

// updateYearStatus opens or closes an existing year. Admin only.
func (h *HTTPHandler) updateYearStatus(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeMessage(w, "invalid year", http.StatusBadRequest)
		return
	}

	var req models.YearStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.services.Years.SetYearStatus(r.Context(), year, req.IsClosed)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.YearStatusResponse{
		Data:    models.YearStatusRequest{IsClosed: updated.IsClosed},
		Message: "year status updated",
	}, http.StatusOK)
}
