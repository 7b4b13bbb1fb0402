package api

import (
	"log/slog"
	"net/http"

	"github.com/boynton/mathbraille"
	"github.com/boynton/mathbraille/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graphql-go/graphql"
)

// Server is the HTTP API server for braille math translation.
type Server struct {
	router     chi.Router
	translator *mathbraille.Translator
	schema     graphql.Schema
	log        *slog.Logger
	cfg        config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(translator *mathbraille.Translator, log *slog.Logger, cfg config.Config) (*Server, error) {
	s := &Server{
		translator: translator,
		log:        log,
		cfg:        cfg,
	}
	schema, err := newSchema(translator)
	if err != nil {
		return nil, err
	}
	s.schema = schema
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Post("/api/translate", s.handleTranslate)
	r.Post("/graphql", s.handleGraphQL)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
