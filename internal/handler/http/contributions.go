package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
	"github.com/go-chi/chi/v5"
)

// yearQueryParam parses the optional ?year= filter; zero means no filter.
func yearQueryParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

func (h *HTTPHandler) listContributions(w http.ResponseWriter, r *http.Request) {
	year, ok := yearQueryParam(r)
	if !ok {
		writeMessage(w, "invalid year", http.StatusBadRequest)
		return
	}

	items, err := h.services.Ledger.ListContributions(r.Context(), year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if items == nil {
		items = []models.Contribution{}
	}
	_, _ = utils.WriteJSON(w, models.ContributionsResponse{Data: items}, http.StatusOK)
}

func (h *HTTPHandler) addContribution(w http.ResponseWriter, r *http.Request) {
	var req models.Contribution
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.services.Ledger.AddContribution(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ContributionResponse{
		Data:    created,
		Message: "received item recorded",
	}, http.StatusCreated)
}

func (h *HTTPHandler) updateContribution(w http.ResponseWriter, r *http.Request) {
	var req models.Contribution
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.services.Ledger.UpdateContribution(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ContributionResponse{
		Data:    updated,
		Message: "received item updated",
	}, http.StatusOK)
}

// deleteContribution removes a received item. Admin only.
func (h *HTTPHandler) deleteContribution(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Ledger.DeleteContribution(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, "received item deleted", http.StatusOK)
}
