package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
)

// Config holds chat companion configuration
type Config struct {
	Model            string
	RespondMaxTokens int64
	ReflectMaxTokens int64
}

// Companion generates supportive replies and diary reflections through a
// chat-completion model
type Companion struct {
	client openai.Client
	cfg    Config
}

// NewCompanion creates a companion backed by the given client
func NewCompanion(client openai.Client, cfg Config) *Companion {
	if cfg.RespondMaxTokens <= 0 {
		cfg.RespondMaxTokens = 1024
	}
	if cfg.ReflectMaxTokens <= 0 {
		cfg.ReflectMaxTokens = 300
	}
	return &Companion{
		client: client,
		cfg:    cfg,
	}
}

const respondPrompt = `Actúa como un compañero de apoyo emocional inteligente, perspicaz y con los pies en la tierra.
NO eres un médico ni un robot genérico.
El usuario te dice: "%s"

Tu proceso mental antes de responder:
1. Identifica la emoción oculta (ej. no solo "tristeza", sino "impotencia" o "agotamiento").
2. NO uses clichés vacíos como "Entiendo perfectamente" o "Siento mucho que pases por esto".
3. Busca aportar una pequeña perspectiva nueva o una pregunta que le ayude a entenderse mejor.

Genera tu respuesta final:
- Debe ser en Español neutro y natural.
- Breve (máximo 3 oraciones).
- Estructura: Conecta con la emoción específica + Ofrece un pensamiento que baje la ansiedad o una pregunta reflexiva (no interrogatorio).

Tu respuesta:`

const reflectPrompt = `El usuario escribió en su diario lo siguiente: "%s".

Responde como un psicólogo empático, resaltando de manera positiva lo que escribió,
dando un breve consejo de bienestar y reforzando sus emociones de manera cálida y profesional.
En español, breve pero significativo.`

// Fixed replies used when the model yields nothing usable
const (
	fallbackEmpty   = "Lo siento, no pude generar una respuesta en este momento. ¿Podrías contarme un poco más sobre cómo te sientes?"
	fallbackBlocked = "Entiendo que quieres compartir algo conmigo. Me gustaría ayudarte, pero necesito que reformules tu mensaje de una manera diferente para poder responder adecuadamente."
)

// Respond generates a short supportive reply to a free-form message
func (c *Companion) Respond(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, fmt.Sprintf(respondPrompt, text), 0.8, c.cfg.RespondMaxTokens)
}

// Reflect generates a brief wellbeing reflection on a diary entry
func (c *Companion) Reflect(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, fmt.Sprintf(reflectPrompt, text), 0.7, c.cfg.ReflectMaxTokens)
}

func (c *Companion) generate(ctx context.Context, prompt string, temperature float64, maxTokens int64) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		TopP:        openai.Float(0.9),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return fallbackEmpty, nil
	}

	choice := completion.Choices[0]
	if choice.FinishReason == "content_filter" {
		return fallbackBlocked, nil
	}

	reply := strings.TrimSpace(choice.Message.Content)
	if reply == "" {
		return fallbackEmpty, nil
	}
	return reply, nil
}

// FallbackMessage maps a companion error to the user-facing reply
func FallbackMessage(err error) string {
	if err == nil {
		return fallbackEmpty
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "api_key") || strings.Contains(msg, "401"):
		return "Error de configuración. Por favor verifica tu API key."
	case strings.Contains(msg, "not found") || strings.Contains(msg, "404"):
		return "El modelo de IA no está disponible temporalmente. Estoy trabajando en solucionarlo."
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit") || strings.Contains(msg, "429"):
		return "He alcanzado el límite de uso por hoy. Inténtalo más tarde."
	default:
		return "Lo siento, estoy teniendo dificultades técnicas en este momento. ¿Podrías intentar de nuevo?"
	}
}
