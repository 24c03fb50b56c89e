package trivia

import (
	"context"
	"fmt"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

// AllCategories selects the whole question store as the quiz pool.
const AllCategories = 0

// NextQuizQuestion draws a random question from the pool, preferring one not
// in PreviousQuestions. After the first draw it re-draws at most len(pool)-1
// times; when that budget runs out the last draw is returned even if it was
// already served.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (Question, error) {
	if req.PreviousQuestions == nil {
		return Question{}, fmt.Errorf("previous_questions is required: %w", ErrBadRequest)
	}
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return Question{}, fmt.Errorf("quiz_category.id is required: %w", ErrBadRequest)
	}

	categoryID := int64(*req.QuizCategory.ID)
	var (
		pool []sqlcgen.Question
		err  error
	)
	if categoryID == AllCategories {
		pool, err = s.questions.List(ctx)
	} else {
		if categoryID != int64(int32(categoryID)) {
			return Question{}, fmt.Errorf("quiz category %d: %w", categoryID, ErrBadRequest)
		}
		pool, err = s.questions.ListByCategory(ctx, int32(categoryID))
	}
	if err != nil {
		return Question{}, fmt.Errorf("load quiz pool: %v: %w", err, ErrInternal)
	}
	if len(pool) == 0 {
		return Question{}, fmt.Errorf("quiz category %d has no questions: %w", categoryID, ErrNotFound)
	}

	seen := make(map[int64]struct{}, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		seen[id] = struct{}{}
	}

	next, repeat := drawUnseen(pool, seen, s.intn)
	if repeat {
		metrics.QuizDraws.WithLabelValues("repeat").Inc()
		s.logger.Debug().Int64("question_id", next.ID).Int("pool", len(pool)).Msg("quiz retry budget exhausted")
	} else {
		metrics.QuizDraws.WithLabelValues("fresh").Inc()
	}
	return toDomain(next), nil
}

// drawUnseen picks from a non-empty pool. repeat reports whether the returned
// question is in seen.
func drawUnseen(pool []sqlcgen.Question, seen map[int64]struct{}, intn func(int) int) (next sqlcgen.Question, repeat bool) {
	next = pool[intn(len(pool))]
	for tries := 0; ; tries++ {
		if _, ok := seen[next.ID]; !ok {
			return next, false
		}
		if tries >= len(pool)-1 {
			return next, true
		}
		next = pool[intn(len(pool))]
	}
}
