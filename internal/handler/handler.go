package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/contatoscormecial-rgb/zap/internal/repository"
	"github.com/contatoscormecial-rgb/zap/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handler exposes the HTTP API over the service layer
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes attaches all protected data routes to the router.
// The router is expected to already carry the auth middleware; public
// routes (register, login, rates) are attached separately in main.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/me", h.Me).Methods("GET")
	r.HandleFunc("/me/theme", h.UpdateTheme).Methods("PUT")

	r.HandleFunc("/dashboard", h.Dashboard).Methods("GET")

	r.HandleFunc("/transactions", h.ListTransactions).Methods("GET")
	r.HandleFunc("/transactions", h.CreateTransaction).Methods("POST")
	r.HandleFunc("/transactions/export", h.ExportTransactions).Methods("GET")
	r.HandleFunc("/transactions/{id:[0-9]+}", h.UpdateTransaction).Methods("PUT")
	r.HandleFunc("/transactions/{id:[0-9]+}", h.DeleteTransaction).Methods("DELETE")

	r.HandleFunc("/cards", h.ListCards).Methods("GET")
	r.HandleFunc("/cards", h.CreateCard).Methods("POST")
	r.HandleFunc("/cards/{id:[0-9]+}", h.UpdateCard).Methods("PUT")
	r.HandleFunc("/cards/{id:[0-9]+}", h.DeleteCard).Methods("DELETE")

	r.HandleFunc("/budgets", h.ListBudgets).Methods("GET")
	r.HandleFunc("/budgets", h.CreateBudget).Methods("POST")
	r.HandleFunc("/budgets/{id:[0-9]+}", h.UpdateBudget).Methods("PUT")
	r.HandleFunc("/budgets/{id:[0-9]+}", h.DeleteBudget).Methods("DELETE")

	r.HandleFunc("/purchases", h.ListPurchases).Methods("GET")
	r.HandleFunc("/purchases", h.CreatePurchase).Methods("POST")
	r.HandleFunc("/purchases/{id:[0-9]+}", h.UpdatePurchase).Methods("PUT")
	r.HandleFunc("/purchases/{id:[0-9]+}", h.DeletePurchase).Methods("DELETE")

	r.HandleFunc("/reminders", h.ListReminders).Methods("GET")
	r.HandleFunc("/reminders", h.CreateReminder).Methods("POST")
	r.HandleFunc("/reminders/{id:[0-9]+}", h.UpdateReminder).Methods("PUT")
	r.HandleFunc("/reminders/{id:[0-9]+}", h.DeleteReminder).Methods("DELETE")

	r.HandleFunc("/goals", h.ListGoals).Methods("GET")
	r.HandleFunc("/goals", h.CreateGoal).Methods("POST")
	r.HandleFunc("/goals/{id:[0-9]+}/progress", h.UpdateGoalProgress).Methods("POST")
	r.HandleFunc("/goals/{id:[0-9]+}", h.DeleteGoal).Methods("DELETE")

	r.HandleFunc("/investments", h.ListInvestments).Methods("GET")
	r.HandleFunc("/investments", h.CreateInvestment).Methods("POST")
	r.HandleFunc("/investments/summary", h.InvestmentSummary).Methods("GET")
	r.HandleFunc("/investments/{id:[0-9]+}", h.UpdateInvestment).Methods("PUT")
	r.HandleFunc("/investments/{id:[0-9]+}", h.DeleteInvestment).Methods("DELETE")

	r.HandleFunc("/contacts", h.ListContacts).Methods("GET")
	r.HandleFunc("/contacts", h.CreateContact).Methods("POST")
	r.HandleFunc("/contacts/{id}", h.UpdateContact).Methods("PUT")
	r.HandleFunc("/contacts/{id}", h.DeleteContact).Methods("DELETE")
}

// writeJSON renders v as a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// writeError maps a service or repository error to a response. A missing
// feature table becomes a feature-unavailable payload so one broken
// widget does not read as a server failure; everything else surfaces the
// raw error text with no retry semantics.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Message})
	case errors.Is(err, repository.ErrTableMissing):
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"error":               err.Error(),
			"feature_unavailable": true,
		})
	case errors.Is(err, repository.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
	default:
		h.log.Errorf("Request failed: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// pathID parses the numeric {id} path variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
