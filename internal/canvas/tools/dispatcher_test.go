package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestDispatchUnknownTool(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&Operation{Name: "list_courses", Category: "courses",
		Execute: func(ctx context.Context, tc *Context) (any, error) { return nil, nil }})
	r.MustRegister(&Operation{Name: "get_course", Category: "courses",
		Execute: func(ctx context.Context, tc *Context) (any, error) { return nil, nil }})

	d := NewDispatcher(r, nil)
	env := d.Dispatch(context.Background(), Call{Tool: "no_such_tool"})

	if env.Error == nil {
		t.Fatal("expected error envelope")
	}
	if env.Result != nil {
		t.Error("expected nil result alongside error")
	}
	if !strings.Contains(*env.Error, "Tool 'no_such_tool' not found") {
		t.Errorf("unexpected error: %q", *env.Error)
	}
	if !strings.Contains(*env.Error, "list_courses, get_course") {
		t.Errorf("expected available tools listed, got %q", *env.Error)
	}
}

func TestDispatchValidatesBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `[]`)
	}))
	defer ts.Close()

	d := NewDispatcher(NewDefaultRegistry(), nil)
	env := d.Dispatch(context.Background(), Call{
		Tool:           "get_course",
		Args:           map[string]any{"courseId": -3},
		CanvasAPIURL:   ts.URL,
		CanvasAPIToken: "token",
	})

	if env.Error == nil {
		t.Fatal("expected error envelope for invalid arguments")
	}
	if !strings.HasPrefix(*env.Error, "Invalid arguments:") {
		t.Errorf("unexpected error: %q", *env.Error)
	}
	if calls.Load() != 0 {
		t.Errorf("expected zero network calls for invalid arguments, got %d", calls.Load())
	}
}

func TestDispatchMissingRequiredArg(t *testing.T) {
	d := NewDispatcher(NewDefaultRegistry(), nil)
	env := d.Dispatch(context.Background(), Call{Tool: "get_assignment", Args: map[string]any{"courseId": 1}})

	if env.Error == nil {
		t.Fatal("expected error envelope")
	}
	if !strings.Contains(*env.Error, "assignmentId is required") {
		t.Errorf("unexpected error: %q", *env.Error)
	}
}

func TestDispatchSuccess(t *testing.T) {
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/courses" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"id": 3, "name": "Chemistry"}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/api/v1/courses?page=2>; rel="next"`, ts.URL))
		fmt.Fprint(w, `[{"id": 1, "name": "Biology"}, {"id": 2, "name": "Physics"}]`)
	}))
	defer ts.Close()

	d := NewDispatcher(NewDefaultRegistry(), nil)
	env := d.Dispatch(context.Background(), Call{
		Tool:           "list_courses",
		CanvasAPIURL:   ts.URL,
		CanvasAPIToken: "token",
	})

	if env.Error != nil {
		t.Fatalf("unexpected error: %q", *env.Error)
	}
	result, ok := env.Result.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", env.Result)
	}
	if result["total"] != 3 {
		t.Errorf("expected 3 courses across pages, got %v", result["total"])
	}
	courses, ok := result["courses"].([]json.RawMessage)
	if !ok || len(courses) != 3 {
		t.Fatalf("unexpected courses payload: %v", result["courses"])
	}
}

func TestDispatchAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"errors": [{"message": "Invalid access token."}]}`)
	}))
	defer ts.Close()

	d := NewDispatcher(NewDefaultRegistry(), nil)
	env := d.Dispatch(context.Background(), Call{
		Tool:           "list_courses",
		CanvasAPIURL:   ts.URL,
		CanvasAPIToken: "bad-token",
	})

	if env.Error == nil {
		t.Fatal("expected error envelope")
	}
	want := "Canvas API Error [401]: Authentication failed. Invalid or expired Canvas API token."
	if *env.Error != want {
		t.Errorf("error = %q, want %q", *env.Error, want)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&Operation{
		Name:     "explode",
		Category: "test",
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			panic("boom")
		},
	})

	d := NewDispatcher(r, nil)
	env := d.Dispatch(context.Background(), Call{Tool: "explode"})

	if env.Error == nil {
		t.Fatal("expected error envelope from recovered panic")
	}
	if *env.Error != "Unexpected error: boom" {
		t.Errorf("unexpected error: %q", *env.Error)
	}
}

func TestEnvelopeJSONShape(t *testing.T) {
	success := Envelope{Result: map[string]any{"total": 0}}
	data, err := json.Marshal(success)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["error"] != nil {
		t.Errorf("success envelope should carry null error, got %v", decoded["error"])
	}
	if decoded["result"] == nil {
		t.Error("success envelope should carry non-null result")
	}

	failure := errorEnvelope("it broke")
	data, err = json.Marshal(failure)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["result"] != nil {
		t.Errorf("failure envelope should carry null result, got %v", decoded["result"])
	}
	if decoded["error"] != "it broke" {
		t.Errorf("failure envelope error = %v", decoded["error"])
	}
}

func TestFormatToolErrorUnexpected(t *testing.T) {
	got := formatToolError(fmt.Errorf("disk full"))
	if got != "Unexpected error: disk full" {
		t.Errorf("formatToolError = %q", got)
	}
}
