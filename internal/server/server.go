// Package server provides the HTTP API for candidate matching and analysis.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/NathiDhliso/ReelApps/internal/analysis"
	"github.com/NathiDhliso/ReelApps/internal/logger"
	"github.com/NathiDhliso/ReelApps/internal/ranking"
	"github.com/NathiDhliso/ReelApps/internal/server/middleware"
	"github.com/NathiDhliso/ReelApps/internal/server/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	defaultRequestTimeout = 30 * time.Second
	maxBodyBytes          = 10 << 20
	shutdownTimeout       = 30 * time.Second
	rateLimitSweep        = 5 * time.Minute
)

// Config holds server configuration
type Config struct {
	Port             int
	Version          string
	RequestTimeout   time.Duration
	RateLimitEnabled bool
}

// Deps are the services the routes delegate to.
type Deps struct {
	Matcher  *ranking.Matcher
	Analysis *analysis.Service
	Logger   *zap.Logger
	// Registry backs /metrics. Nil uses a fresh registry.
	Registry *prometheus.Registry
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	matcher     *ranking.Matcher
	analysis    *analysis.Service
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	version     string
	timeout     time.Duration
	now         func() time.Time
}

// New creates a new server instance
func New(cfg Config, deps Deps) *Server {
	log := logger.OrNop(deps.Logger)

	matcher := deps.Matcher
	if matcher == nil {
		matcher = ranking.NewMatcher(ranking.Config{Logger: log})
	}
	svc := deps.Analysis
	if svc == nil {
		svc = analysis.NewService(nil, log)
	}
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	s := &Server{
		matcher:     matcher,
		analysis:    svc,
		logger:      log,
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig(cfg.RateLimitEnabled), rateLimitSweep),
		version:     cfg.Version,
		timeout:     timeout,
		now:         time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /match/candidates", s.handleMatchCandidates)
	mux.HandleFunc("POST /analyze/job-description", s.handleAnalyzeJob)
	mux.HandleFunc("POST /analyze/persona", s.handleAnalyzePersona)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	s.handler = middleware.RequestID(s.withLogging(s.withCORS(s.withRateLimit(s.withTimeout(mux)))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr), zap.String("version", s.version))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	defer s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs one line per request with its id, status and duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := []zap.Field{
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		}
		if rec.status >= http.StatusInternalServerError {
			s.logger.Error("request failed", fields...)
			return
		}
		s.logger.Info("request completed", fields...)
	})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects requests over the client's tier budget with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)

		if !info.Allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withTimeout bounds each request by the configured timeout
func (s *Server) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientID extracts the client identifier (IP address) from the request.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Round(time.Second).Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

	s.logger.Warn("rate limit exceeded",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("tier", info.Tier),
		zap.String("client", clientID(r)),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"message":     "Rate limit exceeded. Please try again later.",
		"limit":       info.Limit,
		"reset_at":    info.ResetTime.Format(time.RFC3339),
		"retry_after": retryAfter,
	})
}
