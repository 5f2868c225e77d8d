package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/fetch"
	"github.com/jonathan/resume-optimizer/internal/parsing"
	"github.com/jonathan/resume-optimizer/internal/server/middleware"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ResumeStore is the subset of database operations the resume handlers need.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, originalText string) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	SaveOptimizedResume(ctx context.Context, id uuid.UUID, optimizedText, jobDescription string, keywordsAdded int) error
	MarkResumeFailed(ctx context.Context, id uuid.UUID) error
	ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]db.Resume, error)
}

// CreateResumeRequest is the request body for POST /resumes
type CreateResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// CreateResumeResponse is the response for POST /resumes
type CreateResumeResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// OptimizeRequest is the request body for POST /resumes/{id}/optimize.
// Exactly one of job_description or job_url must be provided.
type OptimizeRequest struct {
	JobDescription string `json:"job_description,omitempty" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`

	// Optional overrides for the default insertion limits
	MaxKeywords  int     `json:"max_keywords,omitempty" validate:"omitempty,min=1"`
	DensityLimit float64 `json:"density_limit,omitempty" validate:"omitempty,gt=0,lt=1"`
}

// OptimizeResponse is the response for POST /resumes/{id}/optimize
type OptimizeResponse struct {
	ID            uuid.UUID     `json:"id"`
	Status        string        `json:"status"`
	KeywordsAdded int           `json:"keywords_added"`
	Report        *types.Report `json:"report"`
}

// handleCreateResume stores a new resume for the authenticated user
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	id, err := s.resumes.CreateResume(r.Context(), userID, req.ResumeText)
	if err != nil {
		log.Printf("create resume failed: %v", err)
		http.Error(w, "Failed to create resume", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, CreateResumeResponse{ID: id, Status: db.StatusPending})
}

// handleOptimizeResume runs the keyword optimization engine against a stored
// resume and persists the result
func (s *Server) handleOptimizeResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	jobDescription := req.JobDescription
	if req.JobURL != "" {
		fetched, err := fetch.JobDescription(r.Context(), req.JobURL, fetch.Options{})
		if err != nil {
			http.Error(w, "Failed to fetch job description: "+err.Error(), http.StatusBadGateway)
			return
		}
		jobDescription = fetched
	}

	settings := types.DefaultSettings()
	if req.MaxKeywords > 0 {
		settings.GlobalKeywordLimit = req.MaxKeywords
	}
	if req.DensityLimit > 0 {
		settings.KeywordDensityLimit = req.DensityLimit
	}

	doc := parsing.ParseDocument(resume.OriginalText)
	optimized, report, err := s.engine.Optimize(doc, jobDescription, settings)
	if err != nil {
		if dbErr := s.resumes.MarkResumeFailed(r.Context(), resume.ID); dbErr != nil {
			log.Printf("mark resume failed: %v", dbErr)
		}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	optimizedText := parsing.RenderText(optimized)
	if err := s.resumes.SaveOptimizedResume(r.Context(), resume.ID, optimizedText, jobDescription, report.KeywordsAdded); err != nil {
		log.Printf("save optimized resume failed: %v", err)
		http.Error(w, "Failed to save optimized resume", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, OptimizeResponse{
		ID:            resume.ID,
		Status:        db.StatusOptimized,
		KeywordsAdded: report.KeywordsAdded,
		Report:        report,
	})
}

// handleGetResume returns a stored resume as JSON
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

// handleDownloadResume returns the optimized text as a plain text attachment
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.ownedResume(w, r)
	if !ok {
		return
	}

	if resume.OptimizedText == nil {
		err := &ErrResumeNotOptimized{ResumeID: resume.ID}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.txt"`)
	_, _ = w.Write([]byte(*resume.OptimizedText))
}

// handleListResumes returns all resumes for the authenticated user
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resumes, err := s.resumes.ListResumesByUser(r.Context(), userID)
	if err != nil {
		log.Printf("list resumes failed: %v", err)
		http.Error(w, "Failed to list resumes", http.StatusInternalServerError)
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}
	writeJSON(w, http.StatusOK, resumes)
}

// handleHealth reports server and database status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	code := http.StatusOK

	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			status = map[string]string{"status": "degraded", "database": err.Error()}
			code = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, code, status)
}

// ownedResume loads the resume from the path ID and verifies it belongs to
// the authenticated user. Resumes owned by other users read as not found.
func (s *Server) ownedResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid resume ID", http.StatusBadRequest)
		return nil, false
	}

	resume, err := s.resumes.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("get resume failed: %v", err)
		http.Error(w, "Failed to load resume", http.StatusInternalServerError)
		return nil, false
	}
	if resume == nil || resume.UserID != userID {
		notFound := &ErrResumeNotFound{ResumeID: id}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return nil, false
	}
	return resume, true
}
