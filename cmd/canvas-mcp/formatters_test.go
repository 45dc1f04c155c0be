package main

import (
	"strings"
	"testing"
)

func TestFormatCourses(t *testing.T) {
	data := []byte(`{
		"courses": [
			{"id": 1, "name": "Biology", "course_code": "BIO-101",
			 "enrollments": [{"type": "student", "computed_current_score": 91.5, "computed_current_grade": "A-"}]},
			{"id": 2, "name": "Physics", "course_code": "Physics"}
		],
		"total": 2
	}`)

	got := formatCourses(data)
	if !strings.Contains(got, "## Courses (2)") {
		t.Errorf("missing header: %s", got)
	}
	if !strings.Contains(got, "**Biology** (id 1) — BIO-101 — current: 91.5% (A-)") {
		t.Errorf("missing graded course line: %s", got)
	}
	if !strings.Contains(got, "**Physics** (id 2)") {
		t.Errorf("missing ungraded course line: %s", got)
	}
	if strings.Contains(got, "Physics — Physics") {
		t.Errorf("course code equal to name should be skipped: %s", got)
	}
}

func TestFormatCoursesEmpty(t *testing.T) {
	if got := formatCourses([]byte(`{"courses": [], "total": 0}`)); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
	if got := formatCourses([]byte(`not json`)); got != "" {
		t.Errorf("expected empty summary for bad JSON, got %q", got)
	}
}

func TestFormatEnrollments(t *testing.T) {
	data := []byte(`{
		"enrollments": [
			{"course_id": 7, "type": "StudentEnrollment",
			 "grades": {"current_score": 88.2, "current_grade": "B+"}}
		],
		"total": 1
	}`)

	got := formatEnrollments(data)
	if !strings.Contains(got, "## Enrollments (1)") {
		t.Errorf("missing header: %s", got)
	}
	if !strings.Contains(got, "course 7 (StudentEnrollment) — current: 88.2% (B+)") {
		t.Errorf("missing enrollment line: %s", got)
	}
}

func TestFormatAssignments(t *testing.T) {
	data := []byte(`{
		"courseId": 3,
		"assignments": [
			{"id": 10, "name": "Essay", "points_possible": 50, "due_at": "2026-09-01T23:59:00Z",
			 "submission": {"score": 45.5}},
			{"id": 11, "name": "Lab Report", "points_possible": 20,
			 "submission": {"missing": true}}
		],
		"total": 2
	}`)

	got := formatAssignments(data)
	if !strings.Contains(got, "## Assignments for course 3 (2)") {
		t.Errorf("missing header: %s", got)
	}
	if !strings.Contains(got, "**Essay** (id 10, 50 pts), due 2026-09-01 23:59 — scored 45.5") {
		t.Errorf("missing scored line: %s", got)
	}
	if !strings.Contains(got, "**Lab Report** (id 11, 20 pts) — missing") {
		t.Errorf("missing missing-submission line: %s", got)
	}
}

func TestFormatQuizzes(t *testing.T) {
	data := []byte(`{
		"courseId": 4,
		"quizzes": [
			{"id": 20, "title": "Midterm", "question_count": 30, "points_possible": 100, "time_limit": 60}
		],
		"total": 1
	}`)

	got := formatQuizzes(data)
	if !strings.Contains(got, "## Quizzes for course 4 (1)") {
		t.Errorf("missing header: %s", got)
	}
	if !strings.Contains(got, "**Midterm** (id 20, 30 questions, 100 pts), 60 min limit") {
		t.Errorf("missing quiz line: %s", got)
	}
}

func TestFormatAnnouncements(t *testing.T) {
	data := []byte(`{
		"announcements": [
			{"id": 30, "title": "Welcome", "context_code": "course_5", "posted_at": "2026-08-20T10:00:00Z"}
		],
		"total": 1
	}`)

	got := formatAnnouncements(data)
	if !strings.Contains(got, "## Announcements (1)") {
		t.Errorf("missing header: %s", got)
	}
	if !strings.Contains(got, "**Welcome** (course_5), posted 2026-08-20") {
		t.Errorf("missing announcement line: %s", got)
	}
}

func TestSummarizeResultUnknownTool(t *testing.T) {
	if got := summarizeResult("get_course", []byte(`{"course": {}}`)); got != "" {
		t.Errorf("expected no summary for detail tools, got %q", got)
	}
}
