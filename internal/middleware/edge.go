package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/metrics"
)

// EdgeConfig configures the net/http middleware wrapped around the gin engine
type EdgeConfig struct {
	AllowedOrigins    []string
	RateLimitRequests int // 0 disables rate limiting
	RateLimitWindow   time.Duration
}

// CORS returns a CORS middleware using go-chi/cors
func CORS(cfg EdgeConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})
}

// RateLimit returns an IP-keyed rate limiting middleware using go-chi/httprate
func RateLimit(cfg EdgeConfig) func(http.Handler) http.Handler {
	if cfg.RateLimitRequests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimited),
	)
}

// Edge wraps h in rate limiting, then CORS
func Edge(cfg EdgeConfig, h http.Handler) http.Handler {
	return CORS(cfg)(RateLimit(cfg)(h))
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	metrics.RecordRateLimitHit(r.Method)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Request was throttled.").WithSeverity(dto.ErrorSeverityWarning),
	))
}
