// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"

	"animo/internal/config"
	"animo/internal/domain/analysis"
	"animo/internal/domain/chat"
	"animo/internal/domain/journal"
	"animo/internal/domain/streak"
	"animo/internal/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.ServerConfig,
	natsConn *nats.Conn,
	eventsSubjectPrefix string,
	journalService journal.Service,
	analysisService analysis.Service,
	streakService streak.Service,
	companion chat.Companion,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	journalHandler := handlers.NewJournalHandler(journalService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	streakHandler := handlers.NewStreakHandler(streakService)
	chatHandler := handlers.NewChatHandler(companion)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// API version
		r.Route("/v1", func(r chi.Router) {
			r.Route("/users/{userID}", func(r chi.Router) {
				// Diary entries API
				r.Route("/entries", func(r chi.Router) {
					r.Get("/", journalHandler.ListEntries)
					r.Post("/", journalHandler.CreateEntry)
					r.Get("/{entryID}", journalHandler.GetEntry)
					r.Put("/{entryID}", journalHandler.UpdateEntry)
					r.Delete("/{entryID}", journalHandler.DeleteEntry)
				})

				// Sentiment analyses API
				r.Route("/analyses", func(r chi.Router) {
					r.Get("/", analysisHandler.GetHistory)
					r.Post("/", analysisHandler.CreateAnalysis)
					r.Get("/{analysisID}", analysisHandler.GetAnalysis)
					r.Delete("/{analysisID}", analysisHandler.DeleteAnalysis)
				})

				// Streak API
				r.Get("/streak", streakHandler.GetStreak)
			})

			// Supportive chat API
			r.Post("/chat", chatHandler.Respond)
			r.Post("/reflections", chatHandler.Reflect)
		})
	})

	// WebSocket endpoint for real-time journal events
	router.Get("/ws/users/{userID}", handlers.JournalWebSocketHandler(natsConn, eventsSubjectPrefix))

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
