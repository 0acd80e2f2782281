// Package server provides the HTTP REST API for the resume builder wizard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *resume.Store
	wiz        *wizard.Wizard
	client     llm.Client
	enhancer   *enhance.Enhancer
	exporter   *export.Exporter
}

// Config holds server configuration
type Config struct {
	Addr    string
	DataDir string
	OutDir  string
	APIKey  string
	Model   string
}

// New creates a new server instance. The enhancement endpoint is only
// available when an API key is configured.
func New(cfg Config) (*Server, error) {
	backend, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	store, err := resume.Load(backend)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	wiz, err := wizard.Load(backend)
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard state: %w", err)
	}

	s := &Server{
		store:    store,
		wiz:      wiz,
		exporter: export.New(cfg.OutDir),
	}

	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.client = client
		s.enhancer = enhance.New(client, store)
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.router())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for enhancement and PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// router wires all API routes.
func (s *Server) router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume document
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("DELETE /resume", s.handleResetResume)
	mux.HandleFunc("PUT /resume/personal", s.handleUpdatePersonal)
	mux.HandleFunc("PUT /resume/template", s.handleSetTemplate)

	// Entity collections
	mux.HandleFunc("POST /resume/experiences", s.handleAddExperience)
	mux.HandleFunc("PUT /resume/experiences/{id}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /resume/experiences/{id}", s.handleRemoveExperience)

	mux.HandleFunc("POST /resume/education", s.handleAddEducation)
	mux.HandleFunc("PUT /resume/education/{id}", s.handleUpdateEducation)
	mux.HandleFunc("DELETE /resume/education/{id}", s.handleRemoveEducation)

	mux.HandleFunc("POST /resume/skills", s.handleAddSkill)
	mux.HandleFunc("PUT /resume/skills/{id}", s.handleUpdateSkill)
	mux.HandleFunc("DELETE /resume/skills/{id}", s.handleRemoveSkill)

	mux.HandleFunc("POST /resume/projects", s.handleAddProject)
	mux.HandleFunc("PUT /resume/projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /resume/projects/{id}", s.handleRemoveProject)

	mux.HandleFunc("POST /resume/certificates", s.handleAddCertificate)
	mux.HandleFunc("PUT /resume/certificates/{id}", s.handleUpdateCertificate)
	mux.HandleFunc("DELETE /resume/certificates/{id}", s.handleRemoveCertificate)

	// Wizard navigation
	mux.HandleFunc("GET /wizard/step", s.handleGetStep)
	mux.HandleFunc("PUT /wizard/step", s.handleGoToStep)
	mux.HandleFunc("POST /wizard/next", s.handleNextStep)
	mux.HandleFunc("POST /wizard/prev", s.handlePrevStep)

	// AI enhancement
	mux.HandleFunc("POST /enhance", s.handleEnhance)

	// Rendering and export
	mux.HandleFunc("GET /render", s.handleRender)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)
	mux.HandleFunc("GET /export/html", s.handleExportHTML)

	return mux
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Printf("Error closing Gemini client: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
