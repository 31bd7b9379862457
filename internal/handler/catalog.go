package handler

import (
	"net/http"

	"github.com/ecolog/carbon-tracker/internal/service"
)

// CatalogHandler serves the master data: users, activities and locations.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// HandleListUsers returns all registered users.
func (h *CatalogHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.catalog.ListUsers(r.Context())
	if err != nil {
		respondError(w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// HandleCreateUser registers a new user from a JSON body.
func (h *CatalogHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string   `json:"name"`
		Email            string   `json:"email"`
		Password         string   `json:"password"`
		CarbonGoal       *float64 `json:"carbonGoal"`
		RegistrationDate string   `json:"registrationDate"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	id, err := h.catalog.CreateUser(r.Context(), req.Name, req.Email, req.Password, req.CarbonGoal, req.RegistrationDate)
	if err != nil {
		respondError(w, "create user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// HandleListActivities returns the activity catalog.
func (h *CatalogHandler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.catalog.ListActivities(r.Context())
	if err != nil {
		respondError(w, "list activities", err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityDTOs(activities))
}

// HandleListLocations returns all locations.
func (h *CatalogHandler) HandleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.catalog.ListLocations(r.Context())
	if err != nil {
		respondError(w, "list locations", err)
		return
	}
	writeJSON(w, http.StatusOK, toLocationDTOs(locations))
}
