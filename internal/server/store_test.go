package server

import (
	"context"
	"strings"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// fakeStore backs both repositories in memory.
type fakeStore struct {
	mu         sync.Mutex
	questions  []sqlcgen.Question
	categories []sqlcgen.Category
	nextID     int64
	err        error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: []sqlcgen.Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "Geography"},
			{ID: 4, Type: "History"},
			{ID: 5, Type: "Entertainment"},
			{ID: 6, Type: "Sports"},
		},
		nextID: 1,
	}
}

func (f *fakeStore) add(text string, category int32) sqlcgen.Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := sqlcgen.Question{ID: f.nextID, Question: text, Answer: "answer", Category: category, Difficulty: 1}
	f.nextID++
	f.questions = append(f.questions, q)
	return q
}

func (f *fakeStore) filter(keep func(sqlcgen.Question) bool) ([]sqlcgen.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []sqlcgen.Question
	for _, q := range f.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeStore) List(_ context.Context) ([]sqlcgen.Question, error) {
	return f.filter(func(sqlcgen.Question) bool { return true })
}

func (f *fakeStore) ListByCategory(_ context.Context, category int32) ([]sqlcgen.Question, error) {
	return f.filter(func(q sqlcgen.Question) bool { return q.Category == category })
}

func (f *fakeStore) Search(_ context.Context, term string) ([]sqlcgen.Question, error) {
	term = strings.ToLower(term)
	return f.filter(func(q sqlcgen.Question) bool { return strings.Contains(strings.ToLower(q.Question), term) })
}

func (f *fakeStore) Count(ctx context.Context) (int64, error) {
	all, err := f.List(ctx)
	return int64(len(all)), err
}

func (f *fakeStore) Get(_ context.Context, id int64) (sqlcgen.Question, error) {
	found, err := f.filter(func(q sqlcgen.Question) bool { return q.ID == id })
	if err != nil {
		return sqlcgen.Question{}, err
	}
	if len(found) == 0 {
		return sqlcgen.Question{}, repository.ErrNotFound
	}
	return found[0], nil
}

func (f *fakeStore) Insert(_ context.Context, p sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return sqlcgen.Question{}, f.err
	}
	q := sqlcgen.Question{ID: f.nextID, Question: p.Question, Answer: p.Answer, Category: p.Category, Difficulty: p.Difficulty}
	f.nextID++
	f.questions = append(f.questions, q)
	return q, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCategories struct{ *fakeStore }

func (c fakeCategories) List(_ context.Context) ([]sqlcgen.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return c.categories, nil
}

func (c fakeCategories) Get(_ context.Context, id int32) (sqlcgen.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return sqlcgen.Category{}, c.err
	}
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return sqlcgen.Category{}, repository.ErrNotFound
}
