// internal/server/handlers/streak.go

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"animo/internal/domain/streak"
)

// StreakHandler handles streak HTTP requests
type StreakHandler struct {
	service streak.Service
}

// NewStreakHandler creates a new streak handler
func NewStreakHandler(service streak.Service) *StreakHandler {
	return &StreakHandler{
		service: service,
	}
}

// GetStreak returns the user's journaling streak summary
func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user ID", nil)
		return
	}

	summary, err := h.service.GetStreak(r.Context(), userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute streak", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"streak":  summary,
	})
}
