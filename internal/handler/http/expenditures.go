package http

import (
	"encoding/json"
	"net/http"

	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
	"github.com/go-chi/chi/v5"
)

func (h *HTTPHandler) listExpenditures(w http.ResponseWriter, r *http.Request) {
	year, ok := yearQueryParam(r)
	if !ok {
		writeMessage(w, "invalid year", http.StatusBadRequest)
		return
	}

	items, err := h.services.Ledger.ListExpenditures(r.Context(), year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if items == nil {
		items = []models.Expenditure{}
	}
	_, _ = utils.WriteJSON(w, models.ExpendituresResponse{Data: items}, http.StatusOK)
}

func (h *HTTPHandler) addExpenditure(w http.ResponseWriter, r *http.Request) {
	var req models.Expenditure
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.services.Ledger.AddExpenditure(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ExpenditureResponse{
		Data:    created,
		Message: "expenditure recorded",
	}, http.StatusCreated)
}

func (h *HTTPHandler) updateExpenditure(w http.ResponseWriter, r *http.Request) {
	var req models.Expenditure
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.services.Ledger.UpdateExpenditure(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ExpenditureResponse{
		Data:    updated,
		Message: "expenditure updated",
	}, http.StatusOK)
}

// deleteExpenditure removes a payment record. Admin only.
func (h *HTTPHandler) deleteExpenditure(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Ledger.DeleteExpenditure(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, "expenditure deleted", http.StatusOK)
}
