// internal/server/handlers/chat.go

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"animo/internal/domain/chat"
	chatservice "animo/internal/service/chat"
)

// ChatHandler handles supportive chat HTTP requests
type ChatHandler struct {
	companion chat.Companion
}

// NewChatHandler creates a new chat handler
func NewChatHandler(companion chat.Companion) *ChatHandler {
	return &ChatHandler{
		companion: companion,
	}
}

// Respond generates a supportive reply to a free-form message
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	type chatRequest struct {
		Message string `json:"message"`
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "Message is required", nil)
		return
	}

	reply, err := h.companion.Respond(r.Context(), req.Message)
	if err != nil {
		// The caller gets a usable message in the same field either way, so a
		// broken upstream never surfaces a raw provider error.
		respondWithError(w, http.StatusInternalServerError, chatservice.FallbackMessage(err), err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"response": reply,
	})
}

// Reflect generates a brief wellbeing reflection on a diary entry
func (h *ChatHandler) Reflect(w http.ResponseWriter, r *http.Request) {
	type reflectRequest struct {
		Text string `json:"text"`
	}

	var req reflectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondWithError(w, http.StatusBadRequest, "Text is required", nil)
		return
	}

	reflection, err := h.companion.Reflect(r.Context(), req.Text)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, chatservice.FallbackMessage(err), err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"reflection": reflection,
	})
}
