package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

func newTestCompanion(t *testing.T, handler http.HandlerFunc) *Companion {
	t.Helper()
	// The client refuses non-JSON responses, so declare the content type
	// before the handler writes anything.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := openai.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return NewCompanion(client, Config{Model: "test-model"})
}

func completionResponse(content, finishReason string) map[string]any {
	return map[string]any{
		"id":     "cmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": finishReason,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestRespondReturnsModelReply(t *testing.T) {
	var gotPrompt string
	companion := newTestCompanion(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(payload.Messages) > 0 {
			gotPrompt = payload.Messages[0].Content
		}
		json.NewEncoder(w).Encode(completionResponse("  Respira hondo, un paso a la vez.  ", "stop"))
	})

	reply, err := companion.Respond(context.Background(), "hoy fue un día pesado")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "Respira hondo, un paso a la vez." {
		t.Fatalf("reply = %q", reply)
	}
	if !strings.Contains(gotPrompt, "hoy fue un día pesado") {
		t.Fatalf("prompt does not embed the user text: %q", gotPrompt)
	}
	if !strings.Contains(gotPrompt, "compañero de apoyo emocional") {
		t.Fatalf("prompt is not the supportive template: %q", gotPrompt)
	}
}

func TestReflectUsesDiaryTemplate(t *testing.T) {
	var gotPrompt string
	companion := newTestCompanion(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		if len(payload.Messages) > 0 {
			gotPrompt = payload.Messages[0].Content
		}
		json.NewEncoder(w).Encode(completionResponse("Qué valioso lo que escribiste.", "stop"))
	})

	reply, err := companion.Reflect(context.Background(), "hoy salí a caminar")
	if err != nil {
		t.Fatalf("reflect: %v", err)
	}
	if reply == "" {
		t.Fatal("expected a reply")
	}
	if !strings.Contains(gotPrompt, "escribió en su diario") {
		t.Fatalf("prompt is not the diary template: %q", gotPrompt)
	}
}

func TestRespondFallbacks(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		finish   string
		expected string
	}{
		{"empty reply", "", "stop", fallbackEmpty},
		{"whitespace reply", "   ", "stop", fallbackEmpty},
		{"content filter", "algo", "content_filter", fallbackBlocked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			companion := newTestCompanion(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(completionResponse(tc.content, tc.finish))
			})

			reply, err := companion.Respond(context.Background(), "hola")
			if err != nil {
				t.Fatalf("respond: %v", err)
			}
			if reply != tc.expected {
				t.Fatalf("reply = %q, want %q", reply, tc.expected)
			}
		})
	}
}

func TestRespondTransportError(t *testing.T) {
	companion := newTestCompanion(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := companion.Respond(context.Background(), "hola")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestFallbackMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"api key", errors.New("invalid api key provided"), "Error de configuración. Por favor verifica tu API key."},
		{"model missing", errors.New("model not found"), "El modelo de IA no está disponible temporalmente. Estoy trabajando en solucionarlo."},
		{"quota", errors.New("429 too many requests: quota exceeded"), "He alcanzado el límite de uso por hoy. Inténtalo más tarde."},
		{"generic", errors.New("connection reset"), "Lo siento, estoy teniendo dificultades técnicas en este momento. ¿Podrías intentar de nuevo?"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FallbackMessage(tc.err); got != tc.want {
				t.Fatalf("FallbackMessage = %q, want %q", got, tc.want)
			}
		})
	}
}
