package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Question is the formatted record delivered to clients.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int32  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// Categories maps category id to its type label.
type Categories map[int32]string

// QuestionPage is the result of the full question listing.
type QuestionPage struct {
	Total      int
	Categories Categories
	Questions  []Question
}

// SearchResult holds one page of matches. Total counts every stored question,
// not just the matches.
type SearchResult struct {
	Total     int
	Questions []Question
}

// CategoryQuestions holds one page of a category's questions.
type CategoryQuestions struct {
	Category  string
	Total     int
	Questions []Question
}

// CreateQuestionRequest is the POST /questions payload.
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category"`
	Difficulty FlexInt `json:"difficulty"`
}

// SearchRequest is the POST /questions/search payload.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory identifies the candidate pool; ID 0 selects every category.
type QuizCategory struct {
	ID   *FlexInt `json:"id"`
	Type string   `json:"type,omitempty"`
}

// QuizRequest is the POST /quizzes payload. A nil PreviousQuestions means the
// field was absent or null; an empty slice is a valid first draw.
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// FlexInt decodes from a JSON number or a numeric string. Frontends submit
// select values as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		raw = s
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != math.Trunc(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid integer %q", raw)
	}
	*f = FlexInt(v)
	return nil
}

func toDomain(row sqlcgen.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

func toDomainList(rows []sqlcgen.Question) []Question {
	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}
