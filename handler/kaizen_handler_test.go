package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"flowdeck/repository"
	"flowdeck/usecase"

	"github.com/gin-gonic/gin"
)

func newKaizenRouter() *gin.Engine {
	h := NewKaizenHandler(usecase.NewKaizenService(repository.NewKaizenRepo()))

	router := gin.New()
	goals := router.Group("/api/kaizen-goals")
	{
		goals.GET("", h.ListGoals)
		goals.POST("", h.CreateGoal)
		goals.GET("/range", h.GoalsByDateRange)
		goals.GET("/:id", h.GetGoal)
		goals.PATCH("/:id", h.UpdateGoal)
		goals.DELETE("/:id", h.DeleteGoal)
	}
	return router
}

func TestCreateKaizenGoal(t *testing.T) {
	router := newKaizenRouter()

	w := doJSON(t, router, http.MethodPost, "/api/kaizen-goals",
		`{"goal":"read 10 pages"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["goal"] != "read 10 pages" {
		t.Errorf("unexpected goal: %v", body["goal"])
	}
	if body["date"] == nil {
		t.Error("expected date to default to creation time")
	}
	if completed, _ := body["completed"].(bool); completed {
		t.Error("expected completed to default to false")
	}
}

func TestCreateKaizenGoalInvalid(t *testing.T) {
	router := newKaizenRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing goal", `{"completed":false}`},
		{"empty goal", `{"goal":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/kaizen-goals", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if body := decodeBody(t, w); body["error"] != "Invalid goal data" {
				t.Errorf("unexpected error message: %v", body["error"])
			}
		})
	}
}

func TestUpdateKaizenGoal(t *testing.T) {
	router := newKaizenRouter()

	w := doJSON(t, router, http.MethodPost, "/api/kaizen-goals", `{"goal":"meditate"}`)
	created := decodeBody(t, w)
	id := created["id"].(string)

	w = doJSON(t, router, http.MethodPatch, "/api/kaizen-goals/"+id, `{"completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if completed, _ := body["completed"].(bool); !completed {
		t.Error("completed patch was not applied")
	}
	// Goals have no updated timestamp; the date is untouched.
	if body["date"] != created["date"] {
		t.Errorf("update moved the date: %v -> %v", created["date"], body["date"])
	}
}

func TestKaizenGoalNotFound(t *testing.T) {
	router := newKaizenRouter()

	w := doJSON(t, router, http.MethodPatch, "/api/kaizen-goals/missing", `{"completed":true}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Goal not found" {
		t.Errorf("unexpected error message: %v", body["error"])
	}

	if w = doJSON(t, router, http.MethodDelete, "/api/kaizen-goals/missing", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on delete, got %d", w.Code)
	}
}

func TestKaizenGoalsByDateRange(t *testing.T) {
	router := newKaizenRouter()

	doJSON(t, router, http.MethodPost, "/api/kaizen-goals",
		`{"goal":"inside","date":"2026-08-15T09:00:00Z"}`)
	doJSON(t, router, http.MethodPost, "/api/kaizen-goals",
		`{"goal":"outside","date":"2026-09-15T09:00:00Z"}`)

	w := doJSON(t, router, http.MethodGet,
		"/api/kaizen-goals/range?start=2026-08-01&end=2026-08-31", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var goals []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &goals); err != nil {
		t.Fatal(err)
	}
	if len(goals) != 1 || goals[0]["goal"] != "inside" {
		t.Errorf("unexpected range results: %v", goals)
	}

	w = doJSON(t, router, http.MethodGet, "/api/kaizen-goals/range?start=bad&end=worse", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad bounds, got %d", w.Code)
	}
}
