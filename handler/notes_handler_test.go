package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flowdeck/repository"
	"flowdeck/usecase"

	"github.com/gin-gonic/gin"
)

func newNotesRouter() (*gin.Engine, *repository.NotesRepo) {
	repo := repository.NewNotesRepo()
	h := NewNoteHandler(usecase.NewNotesService(repo))

	router := gin.New()
	notes := router.Group("/api/notes")
	{
		notes.GET("", h.ListNotes)
		notes.POST("", h.CreateNote)
		notes.GET("/search/:query", h.SearchNotes)
		notes.GET("/tag/:tag", h.NotesByTag)
		notes.GET("/date/:date", h.NotesByDate)
		notes.GET("/:id", h.GetNote)
		notes.PATCH("/:id", h.UpdateNote)
		notes.DELETE("/:id", h.DeleteNote)
	}
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCreateNote(t *testing.T) {
	router, _ := newNotesRouter()

	w := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title":"Groceries","content":"milk, eggs","tags":["home"]}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if id, _ := body["id"].(string); id == "" {
		t.Error("expected a generated id")
	}
	if fav, _ := body["isFavorite"].(bool); fav {
		t.Error("expected isFavorite to default to false")
	}
	if body["createdAt"] != body["updatedAt"] {
		t.Errorf("expected createdAt == updatedAt, got %v / %v", body["createdAt"], body["updatedAt"])
	}
	tags, ok := body["tags"].([]interface{})
	if !ok || len(tags) != 1 || tags[0] != "home" {
		t.Errorf("unexpected tags in response: %v", body["tags"])
	}
}

func TestCreateNoteInvalidBody(t *testing.T) {
	router, repo := newNotesRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"content":"no title"}`},
		{"malformed json", `{"title": `},
		{"wrong title type", `{"title": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/notes", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			body := decodeBody(t, w)
			if body["error"] != "Invalid note data" {
				t.Errorf("unexpected error message: %v", body["error"])
			}
		})
	}

	// Validation must not leave partial state behind.
	if total, _ := repo.Count(); total != 0 {
		t.Errorf("store mutated by rejected creates: %d notes", total)
	}
}

func TestCreateNoteWithEmptyTitle(t *testing.T) {
	router, _ := newNotesRouter()

	// A present-but-blank title is legal; the client renders "Untitled".
	w := doJSON(t, router, http.MethodPost, "/api/notes", `{"title":""}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for blank title, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["content"] != "" {
		t.Errorf("expected content to default to empty, got %v", body["content"])
	}
}

func TestPatchNoteFavorite(t *testing.T) {
	router, _ := newNotesRouter()

	w := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title":"Groceries","content":"milk, eggs"}`)
	created := decodeBody(t, w)
	id := created["id"].(string)

	w = doJSON(t, router, http.MethodPatch, "/api/notes/"+id, `{"isFavorite":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if fav, _ := body["isFavorite"].(bool); !fav {
		t.Error("expected isFavorite to be true after patch")
	}
	if body["title"] != "Groceries" || body["content"] != "milk, eggs" {
		t.Error("patch changed fields it did not name")
	}
	if body["createdAt"] != created["createdAt"] {
		t.Error("patch changed createdAt")
	}
}

func TestGetNoteNotFound(t *testing.T) {
	router, _ := newNotesRouter()

	w := doJSON(t, router, http.MethodGet, "/api/notes/nonexistent-id", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Note not found" {
		t.Errorf(`expected {"error":"Note not found"}, got %s`, w.Body.String())
	}
}

func TestDeleteNote(t *testing.T) {
	router, _ := newNotesRouter()

	w := doJSON(t, router, http.MethodPost, "/api/notes", `{"title":"Doomed"}`)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/notes/"+id, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body on delete, got %q", w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/api/notes/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestSearchNotes(t *testing.T) {
	router, _ := newNotesRouter()
	doJSON(t, router, http.MethodPost, "/api/notes", `{"title":"Grocery run","content":"buy milk"}`)
	doJSON(t, router, http.MethodPost, "/api/notes", `{"title":"Standup","tags":["work"]}`)

	w := doJSON(t, router, http.MethodGet, "/api/notes/search/MILK", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var results []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("failed to decode search results: %v", err)
	}
	if len(results) != 1 || results[0]["title"] != "Grocery run" {
		t.Errorf("unexpected search results: %v", results)
	}

	// A query matching nothing returns an empty array, never an error.
	w = doJSON(t, router, http.MethodGet, "/api/notes/search/zzz", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("expected 200 with [], got %d %q", w.Code, w.Body.String())
	}
}

func TestNotesByTag(t *testing.T) {
	router, _ := newNotesRouter()
	doJSON(t, router, http.MethodPost, "/api/notes", `{"title":"a","tags":["home"]}`)
	doJSON(t, router, http.MethodPost, "/api/notes", `{"title":"b","tags":["homework"]}`)

	w := doJSON(t, router, http.MethodGet, "/api/notes/tag/home", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var results []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0]["title"] != "a" {
		t.Errorf("tag filter must match exactly: %v", results)
	}
}
