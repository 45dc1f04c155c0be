package tools

import (
	"testing"
)

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&Operation{Name: ""}); err == nil {
		t.Error("expected error for empty name")
	}
	if err := r.Register(nil); err == nil {
		t.Error("expected error for nil operation")
	}
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&Operation{Name: "list_courses"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := r.Register(&Operation{Name: "list_courses"}); err == nil {
		t.Error("expected error for duplicate name")
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&Operation{Name: "get_course", Category: "courses"})

	op, ok := r.Get("get_course")
	if !ok || op.Name != "get_course" {
		t.Errorf("expected lookup to succeed, got %v %v", op, ok)
	}
	if _, ok := r.Get("no_such_tool"); ok {
		t.Error("expected miss for unregistered name")
	}
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&Operation{Name: "b_tool", Category: "two"})
	r.MustRegister(&Operation{Name: "a_tool", Category: "one"})
	r.MustRegister(&Operation{Name: "c_tool", Category: "two"})

	names := r.Names()
	if len(names) != 3 || names[0] != "b_tool" || names[1] != "a_tool" || names[2] != "c_tool" {
		t.Errorf("unexpected name order: %v", names)
	}

	cats := r.Categories()
	if len(cats) != 2 || cats[0] != "two" || cats[1] != "one" {
		t.Errorf("unexpected category order: %v", cats)
	}

	twoOps := r.ByCategory("two")
	if len(twoOps) != 2 || twoOps[0].Name != "b_tool" || twoOps[1].Name != "c_tool" {
		t.Errorf("unexpected category contents: %v", twoOps)
	}
}

func TestDefaultRegistryCatalogue(t *testing.T) {
	r := NewDefaultRegistry()

	expected := []string{
		"list_courses",
		"get_course",
		"get_course_progress",
		"get_course_users",
		"preview_html",
		"list_announcements",
		"list_assignments",
		"get_assignment",
		"get_assignment_submission",
		"list_enrollments",
		"list_quizzes",
		"get_quiz",
		"get_quiz_submission",
		"list_quiz_submissions",
		"list_discussion_topics",
		"get_discussion_topic",
		"list_discussion_entries",
		"list_entry_replies",
	}

	names := r.Names()
	if len(names) != len(expected) {
		t.Fatalf("expected %d tools, got %d: %v", len(expected), len(names), names)
	}
	for i, want := range expected {
		if names[i] != want {
			t.Errorf("tool %d: expected %s, got %s", i, want, names[i])
		}
	}

	for _, op := range r.All() {
		if op.Description == "" {
			t.Errorf("tool %s has no description", op.Name)
		}
		if op.Category == "" {
			t.Errorf("tool %s has no category", op.Name)
		}
		if op.Execute == nil {
			t.Errorf("tool %s has no executor", op.Name)
		}
	}

	cats := r.Categories()
	wantCats := []string{"courses", "announcements", "assignments", "enrollments", "quizzes", "discussions"}
	if len(cats) != len(wantCats) {
		t.Fatalf("expected %d categories, got %v", len(wantCats), cats)
	}
	for i, want := range wantCats {
		if cats[i] != want {
			t.Errorf("category %d: expected %s, got %s", i, want, cats[i])
		}
	}
}
