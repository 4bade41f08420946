package handler

import (
	"encoding/json"
	"net/http"

	"github.com/contatoscormecial-rgb/zap/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// pathUUID parses the {id} path variable as a UUID.
func pathUUID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// createContactRequest is the create payload. The active flag is
// optional; a new contact is active unless the caller says otherwise.
type createContactRequest struct {
	Name        string  `json:"name"`
	Number      string  `json:"number"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (req createContactRequest) contact() models.ContactNumber {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return models.ContactNumber{
		Name:        req.Name,
		Number:      req.Number,
		Description: req.Description,
		IsActive:    active,
	}
}

// ListContacts returns the caller's contact numbers
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	list, err := h.svc.ListContacts(userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// CreateContact inserts a new contact number for the caller
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	created, err := h.svc.CreateContact(userID, req.contact())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateContact replaces all mutable fields of the caller's contact
// number, including the active flag
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var c models.ContactNumber
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	updated, err := h.svc.UpdateContact(userID, id, c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// DeleteContact removes the caller's contact number
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathUUID(r)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteContact(userID, id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
