package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeCompanion struct {
	reply string
	err   error
}

func (f *fakeCompanion) Respond(ctx context.Context, text string) (string, error) {
	return f.reply, f.err
}

func (f *fakeCompanion) Reflect(ctx context.Context, text string) (string, error) {
	return f.reply, f.err
}

func TestChatRespond(t *testing.T) {
	handler := NewChatHandler(&fakeCompanion{reply: "Eso suena agotador, date un respiro."})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"estoy cansado de todo"}`))
	rec := httptest.NewRecorder()
	handler.Respond(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Response != "Eso suena agotador, date un respiro." {
		t.Errorf("unexpected response: %q", response.Response)
	}
}

func TestChatRespondEmptyMessage(t *testing.T) {
	handler := NewChatHandler(&fakeCompanion{reply: "hola"})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"   "}`))
	rec := httptest.NewRecorder()
	handler.Respond(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestChatRespondFallbackOnError(t *testing.T) {
	handler := NewChatHandler(&fakeCompanion{err: errors.New("chat completion: 429 rate limit")})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hola"}`))
	rec := httptest.NewRecorder()
	handler.Respond(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var response struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(response.Error, "límite de uso") {
		t.Errorf("expected the quota fallback message, got %q", response.Error)
	}
}

func TestChatReflect(t *testing.T) {
	handler := NewChatHandler(&fakeCompanion{reply: "Escribir sobre esto ya es un buen paso."})

	req := httptest.NewRequest(http.MethodPost, "/reflections", strings.NewReader(`{"text":"hoy logré salir a caminar"}`))
	rec := httptest.NewRecorder()
	handler.Reflect(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Reflection string `json:"reflection"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Reflection == "" {
		t.Error("expected a non-empty reflection")
	}
}

func TestChatReflectEmptyText(t *testing.T) {
	handler := NewChatHandler(&fakeCompanion{reply: "hola"})

	req := httptest.NewRequest(http.MethodPost, "/reflections", strings.NewReader(`{"text":""}`))
	rec := httptest.NewRecorder()
	handler.Reflect(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
