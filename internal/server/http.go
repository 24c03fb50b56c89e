package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger checks that a dependency is reachable.
type Pinger func(ctx context.Context) error

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
// redisClient may be nil when caching is disabled.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, api *TriviaHandlers) *http.Server {
	pingers := []Pinger{pool.Ping}
	if redisClient != nil {
		pingers = append(pingers, func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(cfg.CORS, logger, api, pingers...),
	}
}

// NewRouter builds the HTTP handler tree.
func NewRouter(cors config.CORS, logger zerolog.Logger, api *TriviaHandlers, pingers ...Pinger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		for _, ping := range pingers {
			if err := ping(r.Context()); err != nil {
				logger.Error().Err(err).Msg("dependency ping failed")
				httperrors.RespondError(w, http.StatusBadGateway)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	mux.HandleFunc("GET /categories", api.GetCategories)
	mux.HandleFunc("GET /categories/{id}/questions", api.GetQuestionsByCategory)
	mux.HandleFunc("GET /questions", api.GetQuestions)
	mux.HandleFunc("POST /questions", api.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", api.DeleteQuestion)
	mux.HandleFunc("POST /questions/search", api.SearchQuestions)
	mux.HandleFunc("POST /quizzes", api.GetQuizQuestion)

	var handler http.Handler = mux
	handler = unmatchedRoutes(mux, handler)
	handler = requestLogger(mux, logger, handler)
	handler = corsMiddleware(cors, handler)
	return handler
}
