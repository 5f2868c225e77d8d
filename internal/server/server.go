package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/server/middleware"
	"github.com/jonathan/resume-optimizer/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	database    *db.DB
	resumes     ResumeStore
	engine      *optimizer.Optimizer
	validator   *validator.Validate
	health      func(ctx context.Context) error
	rateLimiter *ratelimit.Limiter
	authHandler *AuthHandler
	jwtService  *JWTService
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	engine, err := optimizer.New()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create optimizer: %w", err)
	}

	s := &Server{
		database:  database,
		resumes:   database,
		engine:    engine,
		validator: validator.New(),
		health:    database.Ping,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(NewUserService(database, passwordConfig), s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Resume endpoints require authentication.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("POST /resumes", auth(http.HandlerFunc(s.handleCreateResume)))
	mux.Handle("GET /resumes", auth(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("GET /resumes/{id}", auth(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("POST /resumes/{id}/optimize", auth(http.HandlerFunc(s.handleOptimizeResume)))
	mux.Handle("GET /resumes/{id}/download", auth(http.HandlerFunc(s.handleDownloadResume)))

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.database.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their request budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}

		if !allowed {
			retryAfter := int(time.Until(info.ResetTime).Seconds()) + 1
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
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

// extractClientID returns the client IP, preferring proxy headers
func (s *Server) extractClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
