//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestHealthz(t *testing.T) {
	resp, err := http.Get(fmt.Sprintf("%s/healthz", baseURL()))
	if err != nil {
		t.Fatalf("health check request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}

func TestSeededCategories(t *testing.T) {
	status, out := call(t, http.MethodGet, "/categories", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	categories, _ := out["categories"].(map[string]interface{})
	if categories["6"] != "Sports" {
		t.Fatalf("expected category 6 to be Sports, got %v", categories["6"])
	}
}

func TestQuestionLifecycle(t *testing.T) {
	marker := fmt.Sprintf("integration-%d", time.Now().UnixNano())
	id := createQuestion(t, "Which sport is "+marker+"?", 6)

	status, out := call(t, http.MethodPost, "/questions/search", map[string]string{"searchTerm": marker})
	if status != http.StatusOK {
		t.Fatalf("search: expected 200, got %d: %v", status, out)
	}
	if qs, _ := out["questions"].([]interface{}); len(qs) != 1 {
		t.Fatalf("search: expected exactly one match, got %v", out["questions"])
	}

	status, out = call(t, http.MethodGet, "/categories/6/questions", nil)
	if status != http.StatusOK || out["category"] != "Sports" {
		t.Fatalf("category listing: got %d %v", status, out)
	}

	status, out = call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %v", status, out)
	}

	status, _ = call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("second delete: expected 422, got %d", status)
	}

	status, _ = call(t, http.MethodPost, "/questions/search", map[string]string{"searchTerm": marker})
	if status != http.StatusNotFound {
		t.Fatalf("search after delete: expected 404, got %d", status)
	}
}

func TestQuizDraw(t *testing.T) {
	id := createQuestion(t, fmt.Sprintf("quiz-%d", time.Now().UnixNano()), 1)
	defer call(t, http.MethodDelete, fmt.Sprintf("/questions/%d", id), nil)

	status, out := call(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []int64{},
		"quiz_category":      map[string]interface{}{"id": 0, "type": "click"},
	})
	if status != http.StatusOK {
		t.Fatalf("quiz: expected 200, got %d: %v", status, out)
	}
	if _, ok := out["question"].(map[string]interface{}); !ok {
		t.Fatalf("quiz: missing question: %v", out)
	}

	status, _ = call(t, http.MethodPost, "/quizzes", map[string]interface{}{"quiz_category": map[string]interface{}{"id": 0}})
	if status != http.StatusBadRequest {
		t.Fatalf("quiz without previous_questions: expected 400, got %d", status)
	}
}

func TestErrorShape(t *testing.T) {
	status, out := call(t, http.MethodGet, "/questions?page=100000", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if out["success"] != false || out["error"] != float64(404) || out["message"] == nil {
		t.Fatalf("unexpected error body: %v", out)
	}
}
