package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NathiDhliso/ReelApps/internal/schemas"
	"github.com/NathiDhliso/ReelApps/internal/server/middleware"
	"github.com/NathiDhliso/ReelApps/internal/types"
	"go.uber.org/zap"
)

const (
	statusOperational = "operational"
	statusDegraded    = "degraded"
	aiProvider        = "Google Gemini"
)

// HealthResponse is the body returned by /health.
type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	Version    string            `json:"version"`
	Services   map[string]string `json:"services,omitempty"`
	AIProvider string            `json:"ai_provider,omitempty"`
	AIModels   map[string]string `json:"ai_models,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// handleMatchCandidates ranks the posted candidates against the posted job
func (s *Server) handleMatchCandidates(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := schemas.ValidateMatchRequest(body); err != nil {
		s.fail(w, r, err, "Invalid match request")
		return
	}

	var req types.MatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.JobPosting.ApplyDefaults()
	if err := req.Validate(); err != nil {
		s.fail(w, r, &ErrValidation{Message: err.Error()}, "Invalid match request")
		return
	}

	s.logger.Info("matching candidates",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("job_title", req.JobPosting.Title),
		zap.Int("candidates", len(req.Candidates)),
	)

	results, err := s.matcher.Match(r.Context(), &req.JobPosting, req.Candidates)
	if err != nil {
		s.fail(w, r, err, "Error processing candidate matches")
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleAnalyzeJob rates a job description
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := schemas.ValidateJobPosting(body); err != nil {
		s.fail(w, r, err, "Invalid job posting")
		return
	}

	var job types.JobPosting
	if err := json.Unmarshal(body, &job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := job.Validate(); err != nil {
		s.fail(w, r, &ErrValidation{Message: err.Error()}, "Invalid job posting")
		return
	}

	analysis, err := s.analysis.AnalyzeJobDescription(r.Context(), job)
	if err != nil {
		s.fail(w, r, err, "Error analyzing job description")
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleAnalyzePersona derives a Big Five profile from free text
func (s *Server) handleAnalyzePersona(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := schemas.ValidatePersonaRequest(body); err != nil {
		s.fail(w, r, err, "Invalid persona request")
		return
	}

	var req types.PersonaAnalysisRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, r, &ErrValidation{Field: "text", Message: err.Error()}, "Invalid persona request")
		return
	}

	persona, err := s.analysis.AnalyzePersona(r.Context(), req)
	if err != nil {
		s.fail(w, r, err, "Error analyzing persona")
		return
	}

	s.jsonResponse(w, http.StatusOK, persona)
}

// handleHealth runs a one-candidate smoke match and reports service status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	now := s.now().UTC().Format(time.RFC3339)

	if err := s.smokeTest(); err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		s.jsonResponse(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "unhealthy",
			Timestamp: now,
			Version:   s.version,
			Error:     err.Error(),
		})
		return
	}

	ai := statusDegraded
	if s.analysis.Available() {
		ai = statusOperational
	}

	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now,
		Version:   s.version,
		Services: map[string]string{
			"matching_engine": statusOperational,
			"ai_integration":  ai,
		},
		AIProvider: aiProvider,
		AIModels:   s.analysis.Models(),
	})
}

func (s *Server) smokeTest() error {
	job := types.JobPosting{
		Title:        "Health Check",
		Description:  "Smoke test posting",
		Requirements: []string{"Python"},
	}
	job.ApplyDefaults()
	candidate := types.CandidateProfile{
		ID:     "health-check",
		Skills: []types.CandidateSkill{{Name: "Python", YearsExperience: 3}},
	}

	result, err := s.matcher.MatchCandidate(&job, &candidate)
	if err != nil {
		return fmt.Errorf("matching engine: %w", err)
	}
	if result.OverallScore < 0 || result.OverallScore > 100 {
		return fmt.Errorf("matching engine: score %d out of range", result.OverallScore)
	}
	return nil
}

// readBody reads the request body up to maxBodyBytes
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, err
	}
	return body, nil
}

// fail logs err and writes the mapped status with a client-safe message
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := HTTPStatus(err)
	fields := []zap.Field{
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request error", fields...)
	} else {
		s.logger.Warn("request rejected", fields...)
	}
	s.errorResponse(w, status, publicMessage(err, fallback))
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
