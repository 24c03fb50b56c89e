package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/pagination"
)

const maxBodyBytes = 1 << 20

type triviaService interface {
	Categories(ctx context.Context) (trivia.Categories, error)
	ListQuestions(ctx context.Context, page int) (trivia.QuestionPage, error)
	DeleteQuestion(ctx context.Context, id int64) error
	CreateQuestion(ctx context.Context, req trivia.CreateQuestionRequest) (trivia.Question, error)
	SearchQuestions(ctx context.Context, term string, page int) (trivia.SearchResult, error)
	QuestionsByCategory(ctx context.Context, categoryID int32, page int) (trivia.CategoryQuestions, error)
	NextQuizQuestion(ctx context.Context, req trivia.QuizRequest) (trivia.Question, error)
}

// TriviaHandlers exposes the trivia REST endpoints.
type TriviaHandlers struct {
	svc    triviaService
	logger zerolog.Logger
}

func NewTriviaHandlers(svc triviaService, logger zerolog.Logger) *TriviaHandlers {
	return &TriviaHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// GetCategories handles GET /categories
func (h *TriviaHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// GetQuestions handles GET /questions?page=N
func (h *TriviaHandlers) GetQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), pagination.FromRequest(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"total_questions": page.Total,
		"categories":      page.Categories,
		"questions":       page.Questions,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *TriviaHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, 63)
	if !ok {
		// /questions/search exists for POST only.
		if r.PathValue("id") == "search" {
			w.Header().Set("Allow", http.MethodPost)
			httperrors.RespondMethodNotAllowed(w)
			return
		}
		httperrors.RespondNotFound(w)
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Question deleted successfully",
		"deleted": id,
	})
}

// CreateQuestion handles POST /questions
func (h *TriviaHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req trivia.CreateQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	q, err := h.svc.CreateQuestion(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Question created successfully",
		"created": q.ID,
	})
}

// SearchQuestions handles POST /questions/search
func (h *TriviaHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req trivia.SearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	res, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, pagination.FromRequest(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       res.Questions,
		"total_questions": res.Total,
	})
}

// GetQuestionsByCategory handles GET /categories/{id}/questions?page=N
func (h *TriviaHandlers) GetQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, 31)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	res, err := h.svc.QuestionsByCategory(r.Context(), int32(id), pagination.FromRequest(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       res.Questions,
		"total_questions": res.Total,
		"category":        res.Category,
	})
}

// GetQuizQuestion handles POST /quizzes
func (h *TriviaHandlers) GetQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req trivia.QuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	q, err := h.svc.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// respondServiceError maps trivia error kinds onto HTTP statuses.
func (h *TriviaHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	logger := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	if status == http.StatusInternalServerError {
		httperrors.RespondInternalError(w)
		return
	}
	httperrors.RespondError(w, status)
}

// StatusFor returns the HTTP status for a trivia service error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, trivia.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, trivia.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, trivia.ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, trivia.ErrInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} wildcard as a non-negative integer of the given bit
// size. Anything else does not name a resource.
func pathID(r *http.Request, bits int) (int64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, bits)
	if err != nil {
		return 0, false
	}
	return int64(id), true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
