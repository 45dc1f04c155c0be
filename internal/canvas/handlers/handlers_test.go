package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openlms/canvas-mcp/internal/canvas/common"
	"github.com/openlms/canvas-mcp/internal/canvas/tools"
)

func TestRequireMethod(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", nil)
	w := httptest.NewRecorder()
	if RequireMethod(w, req, "GET") {
		t.Error("POST should not satisfy GET requirement")
	}
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}

	// HEAD is accepted where GET is required.
	req = httptest.NewRequest("HEAD", "/test", nil)
	w = httptest.NewRecorder()
	if !RequireMethod(w, req, "GET") {
		t.Error("HEAD should satisfy GET requirement")
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	if err := WriteJSON(w, http.StatusCreated, map[string]string{"key": "value"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusBadRequest, "bad input")

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body["status"] != "error" || body["error"] != "bad input" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(common.NewSilentLogger())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected ok, got %q", body["status"])
	}
}

func TestVersionHandler(t *testing.T) {
	h := NewVersionHandler(common.NewSilentLogger())

	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body["version"] == "" || body["build"] == "" {
		t.Errorf("expected version fields, got %v", body)
	}
}

func TestIndexHandler(t *testing.T) {
	h := NewIndexHandler("canvas-mcp")

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body["service"] != "canvas-mcp" {
		t.Errorf("unexpected service: %v", body["service"])
	}
}

func TestIndexHandlerUnknownPath(t *testing.T) {
	h := NewIndexHandler("canvas-mcp")

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestToolsHandlerList(t *testing.T) {
	d := tools.NewDispatcher(tools.NewDefaultRegistry(), common.NewSilentLogger())
	h := NewToolsHandler(d, common.NewSilentLogger())

	req := httptest.NewRequest("GET", "/tools", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Total      int      `json:"total"`
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body.Total != 18 {
		t.Errorf("expected 18 tools, got %d", body.Total)
	}
	if len(body.Categories) != 6 {
		t.Errorf("expected 6 categories, got %v", body.Categories)
	}
}

func TestToolsHandlerInspect(t *testing.T) {
	d := tools.NewDispatcher(tools.NewDefaultRegistry(), common.NewSilentLogger())
	h := NewToolsHandler(d, common.NewSilentLogger())

	req := httptest.NewRequest("GET", "/debug/tools/list_quizzes", nil)
	w := httptest.NewRecorder()
	h.Inspect(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var info tools.Info
	if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if info.Name != "list_quizzes" {
		t.Errorf("unexpected tool: %+v", info)
	}
}
