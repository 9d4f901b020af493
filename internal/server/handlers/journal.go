// internal/server/handlers/journal.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"animo/internal/domain/journal"
	journalservice "animo/internal/service/journal"
)

// JournalHandler handles diary-related HTTP requests
type JournalHandler struct {
	service journal.Service
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(service journal.Service) *JournalHandler {
	return &JournalHandler{
		service: service,
	}
}

// CreateEntry creates a new diary entry
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user ID", nil)
		return
	}

	type createEntryRequest struct {
		Text string   `json:"text"`
		Date string   `json:"date"`
		Mood string   `json:"mood"`
		Tags []string `json:"tags"`
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Dates are validated here; the services only ever see parsed dates.
	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
			return
		}
		date = parsed
	}

	entry, err := h.service.CreateEntry(r.Context(), journal.NewEntry{
		UserID: userID,
		Text:   req.Text,
		Date:   date,
		Mood:   req.Mood,
		Tags:   req.Tags,
	})
	if err != nil {
		if errors.Is(err, journalservice.ErrEmptyText) {
			respondWithError(w, http.StatusBadRequest, "Entry text is required", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create entry", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"entryId": entry.ID,
		"entry":   entry,
	})
}

// ListEntries returns a user's diary entries, newest first
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user ID", nil)
		return
	}

	var filter journal.Filter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	entries, err := h.service.ListEntries(r.Context(), userID, filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}

	if entries == nil {
		entries = []journal.Entry{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entries": entries,
		"count":   len(entries),
	})
}

// GetEntry returns one diary entry
func (h *JournalHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	entryID := chi.URLParam(r, "entryID")
	if userID == "" || entryID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user or entry ID", nil)
		return
	}

	entry, err := h.service.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Entry not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to get entry", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entry":   entry,
	})
}

// UpdateEntry applies a partial update to a diary entry
func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	entryID := chi.URLParam(r, "entryID")
	if userID == "" || entryID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user or entry ID", nil)
		return
	}

	type updateEntryRequest struct {
		Text *string   `json:"text"`
		Mood *string   `json:"mood"`
		Tags *[]string `json:"tags"`
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.service.UpdateEntry(r.Context(), userID, entryID, journal.Update{
		Text: req.Text,
		Mood: req.Mood,
		Tags: req.Tags,
	})
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Entry not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to update entry", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Entry updated",
	})
}

// DeleteEntry removes a diary entry
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	entryID := chi.URLParam(r, "entryID")
	if userID == "" || entryID == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user or entry ID", nil)
		return
	}

	if err := h.service.DeleteEntry(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Entry not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to delete entry", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Entry deleted",
	})
}
