// internal/server/handlers/analysis.go

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"animo/internal/domain/analysis"
)

// AnalysisHandler handles sentiment analysis HTTP requests
type AnalysisHandler struct {
	service analysis.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
	}
}

// CreateAnalysis analyzes the user's recent entries and stores the result
func (h *AnalysisHandler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user ID", nil)
		return
	}

	result, err := h.service.CreateForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, analysis.ErrNotEnoughEntries) {
			respondWithError(w, http.StatusUnprocessableEntity,
				"Not enough diary entries to analyze", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create analysis", err)
		return
	}

	response := map[string]interface{}{
		"success":    true,
		"analysisId": result.Record.ID,
		"analysis":   result.Record.Analysis,
	}

	// A computed analysis is still returned when the write failed, with a
	// non-fatal warning so the client can tell the two outcomes apart.
	if !result.Stored {
		response["warning"] = "Analysis generated but not saved to the database"
	}

	respondWithJSON(w, http.StatusCreated, response)
}

// GetHistory returns stored analyses, newest first
func (h *AnalysisHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user ID", nil)
		return
	}

	var filter analysis.Filter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	records, err := h.service.History(r.Context(), userID, filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list analyses", err)
		return
	}

	if records == nil {
		records = []analysis.Record{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"analyses": records,
		"count":    len(records),
	})
}

// GetAnalysis returns one stored analysis
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	analysisID := chi.URLParam(r, "analysisID")
	if userID == "" || analysisID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user or analysis ID", nil)
		return
	}

	record, err := h.service.Get(r.Context(), userID, analysisID)
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Analysis not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to get analysis", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"analysis": record,
	})
}

// DeleteAnalysis removes one stored analysis
func (h *AnalysisHandler) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	analysisID := chi.URLParam(r, "analysisID")
	if userID == "" || analysisID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user or analysis ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, analysisID); err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Analysis not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to delete analysis", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Analysis deleted",
	})
}
