package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/contatoscormecial-rgb/zap/internal/aggregate"
	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/contatoscormecial-rgb/zap/internal/service"
)

// ListTransactions returns the caller's transactions after applying the
// range, text and recurring query filters
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	filter := service.TransactionFilter{
		Range:     aggregate.ParseRange(r.URL.Query().Get("range")),
		Query:     r.URL.Query().Get("q"),
		Recurring: r.URL.Query().Get("recurring"),
	}
	list, err := h.svc.ListTransactions(userID, filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// CreateTransaction inserts a new transaction for the caller
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var t models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	created, err := h.svc.CreateTransaction(userID, t)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateTransaction replaces all mutable fields of the caller's transaction
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var t models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	updated, err := h.svc.UpdateTransaction(userID, id, t)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteTransaction removes the caller's transaction
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteTransaction(userID, id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportTransactions streams the caller's full transaction list as a CSV
// download with a fixed filename
func (h *Handler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	data, err := h.svc.ExportTransactionsCSV(userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Errorf("Failed to write CSV export: %v", err)
	}
}

// Dashboard returns the aggregated dashboard view for the caller
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	summary, err := h.svc.Dashboard(userID,
		aggregate.ParseRange(r.URL.Query().Get("range")),
		r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}
