package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/pkg/pagination"
)

type questionRepo interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	ListByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error)
	Search(ctx context.Context, term string) ([]sqlcgen.Question, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int64) (sqlcgen.Question, error)
	Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepo interface {
	List(ctx context.Context) ([]sqlcgen.Category, error)
	Get(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// Service implements the trivia operations over the question and category
// repositories.
type Service struct {
	questions  questionRepo
	categories categoryRepo
	cache      CategoryCache
	pageSize   int
	intn       func(n int) int
	logger     zerolog.Logger
}

type ServiceOptions struct {
	// PageSize defaults to pagination.DefaultPageSize.
	PageSize int
	// Cache is optional; nil reads categories from Postgres every time.
	Cache CategoryCache
	// Intn draws uniformly from [0, n). Defaults to math/rand/v2.IntN.
	Intn func(n int) int
}

func NewService(questions questionRepo, categories categoryRepo, opts ServiceOptions, logger zerolog.Logger) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = pagination.DefaultPageSize
	}
	if opts.Intn == nil {
		opts.Intn = rand.IntN
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      opts.Cache,
		pageSize:   opts.PageSize,
		intn:       opts.Intn,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// Categories returns every category keyed by id.
func (s *Service) Categories(ctx context.Context) (Categories, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			metrics.CategoryCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		}
		metrics.CategoryCacheLookups.WithLabelValues("miss").Inc()
	}

	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %v: %w", err, ErrInternal)
	}
	categories := make(Categories, len(rows))
	for _, row := range rows {
		categories[row.ID] = row.Type
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// ListQuestions returns one page of all questions ordered by id. An empty
// page, whether the store is empty or the page is out of range, is
// ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %v: %w", err, ErrInternal)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	current := pagination.Page(toDomainList(rows), page, s.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}
	return QuestionPage{
		Total:      len(rows),
		Categories: categories,
		Questions:  current,
	}, nil
}

// DeleteQuestion removes a question. A missing question and a failed delete
// are both ErrUnprocessable.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	if _, err := s.questions.Get(ctx, id); err != nil {
		return fmt.Errorf("get question %d: %v: %w", id, err, ErrUnprocessable)
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %v: %w", id, err, ErrUnprocessable)
	}
	s.logger.Info().Int64("question_id", id).Msg("question deleted")
	return nil
}

// CreateQuestion validates and stores a new question.
func (s *Service) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (Question, error) {
	if err := validateCreate(req); err != nil {
		return Question{}, err
	}
	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int32(req.Category),
		Difficulty: int32(req.Difficulty),
	})
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %v: %w", err, ErrUnprocessable)
	}
	s.logger.Info().Int64("question_id", row.ID).Int32("category", row.Category).Msg("question created")
	return toDomain(row), nil
}

func validateCreate(req CreateQuestionRequest) error {
	switch {
	case req.Question == "":
		return fmt.Errorf("question is required: %w", ErrUnprocessable)
	case req.Answer == "":
		return fmt.Errorf("answer is required: %w", ErrUnprocessable)
	case req.Category == 0:
		return fmt.Errorf("category is required: %w", ErrUnprocessable)
	case req.Difficulty <= 0:
		return fmt.Errorf("difficulty must be a positive integer: %w", ErrUnprocessable)
	case int64(req.Category) != int64(int32(req.Category)) || int64(req.Difficulty) != int64(int32(req.Difficulty)):
		return fmt.Errorf("category or difficulty out of range: %w", ErrUnprocessable)
	}
	return nil
}

// SearchQuestions returns one page of questions whose text contains term,
// case-insensitively. Any failure, including zero matches, is ErrNotFound.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (SearchResult, error) {
	if term == "" {
		return SearchResult{}, fmt.Errorf("empty search term: %w", ErrUnprocessable)
	}
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search questions: %v: %w", err, ErrNotFound)
	}
	if len(rows) == 0 {
		return SearchResult{}, fmt.Errorf("no questions match %q: %w", term, ErrNotFound)
	}
	total, err := s.questions.Count(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("count questions: %v: %w", err, ErrNotFound)
	}
	return SearchResult{
		Total:     int(total),
		Questions: pagination.Page(toDomainList(rows), page, s.pageSize),
	}, nil
}

// QuestionsByCategory returns one page of a category's questions. An unknown
// category is ErrUnprocessable.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int32, page int) (CategoryQuestions, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return CategoryQuestions{}, fmt.Errorf("category %d: %w", categoryID, ErrUnprocessable)
		}
		return CategoryQuestions{}, fmt.Errorf("get category %d: %v: %w", categoryID, err, ErrInternal)
	}
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list category %d questions: %v: %w", categoryID, err, ErrInternal)
	}
	return CategoryQuestions{
		Category:  category.Type,
		Total:     len(rows),
		Questions: pagination.Page(toDomainList(rows), page, s.pageSize),
	}, nil
}
