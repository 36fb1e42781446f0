package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/search/result"
	"github.com/kailas-cloud/shopassist/internal/logger"
	"github.com/kailas-cloud/shopassist/internal/metrics"
	healthuc "github.com/kailas-cloud/shopassist/internal/usecase/health"
)

const (
	maxTopK     = 100
	maxBodySize = 1 << 20
)

// Searcher ranks products for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) result.Result
}

// Instructor turns ranked products into cooking instructions.
type Instructor interface {
	GenerateInstructions(ctx context.Context, hits []result.Hit) string
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server serves the shopping assistant over HTTP.
type Server struct {
	search    Searcher
	assistant Instructor
	health    HealthChecker
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search Searcher, assistant Instructor, health HealthChecker, logger *zap.Logger) *Server {
	return &Server{search: search, assistant: assistant, health: health, logger: logger}
}

// Routes builds the router with the full middleware chain.
func (s *Server) Routes(apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(BearerAuth(apiKeys, "/health", "/metrics"))
	r.Use(metrics.Middleware())

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/search", s.Search)
		r.Post("/instructions", s.Instructions)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
	return r
}

// Search handles POST /v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearchRequest(w, r)
	if !ok {
		return
	}

	ctx := logger.With(r.Context(), zap.String("query", req.Query), zap.Int("top_k", req.TopK))
	res := s.search.Search(ctx, req.Query, req.TopK)
	s.logReason(ctx, res)

	writeJSON(w, http.StatusOK, SearchResponse{
		Hits:   hitsToAPI(res.Hits()),
		Reason: safeReason(res.Reason()),
	})
}

// Instructions handles POST /v1/instructions: search, then generate instructions from the hits.
func (s *Server) Instructions(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearchRequest(w, r)
	if !ok {
		return
	}

	ctx := logger.With(r.Context(), zap.String("query", req.Query), zap.Int("top_k", req.TopK))
	res := s.search.Search(ctx, req.Query, req.TopK)
	s.logReason(ctx, res)

	writeJSON(w, http.StatusOK, InstructionsResponse{
		Hits:         hitsToAPI(res.Hits()),
		Instructions: s.assistant.GenerateInstructions(ctx, res.Hits()),
		Reason:       safeReason(res.Reason()),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func decodeSearchRequest(w http.ResponseWriter, r *http.Request) (SearchRequest, bool) {
	var req SearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return req, false
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "query is required")
		return req, false
	}
	if req.TopK < 0 || req.TopK > maxTopK {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed,
			fmt.Sprintf("top_k must be between 0 and %d", maxTopK))
		return req, false
	}
	return req, true
}

func (s *Server) logReason(ctx context.Context, res result.Result) {
	if res.Reason() != nil {
		logger.FromContext(ctx).Warn("search returned no hits", zap.Error(res.Reason()))
	}
}

func hitsToAPI(hits []result.Hit) []Hit {
	out := make([]Hit, len(hits))
	for i, h := range hits {
		out[i] = Hit{
			ID:          h.ID(),
			Name:        h.Name(),
			Category:    h.Category(),
			Description: h.Description(),
			Price:       h.Price(),
			Score:       h.Score(),
		}
	}
	return out
}

// safeReason maps a failure to a sentinel message without exposing internals.
func safeReason(err error) string {
	if err == nil {
		return ""
	}
	sentinels := []error{
		domain.ErrEmptyText,
		domain.ErrRateLimited,
		domain.ErrEmbeddingSizeMismatch,
		domain.ErrNoEmbedding,
		domain.ErrSearchFailed,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "search unavailable"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
