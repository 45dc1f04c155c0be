package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openlms/canvas-mcp/internal/canvas/models"
)

// summarizeResult renders a short markdown summary for list-shaped results so
// the assistant can answer without parsing the full payload. Operations
// without a formatter return "" and the handler sends JSON only.
func summarizeResult(toolName string, resultJSON []byte) string {
	switch toolName {
	case "list_courses":
		return formatCourses(resultJSON)
	case "list_enrollments":
		return formatEnrollments(resultJSON)
	case "list_assignments":
		return formatAssignments(resultJSON)
	case "list_quizzes":
		return formatQuizzes(resultJSON)
	case "list_announcements":
		return formatAnnouncements(resultJSON)
	default:
		return ""
	}
}

func formatCourses(data []byte) string {
	var resp struct {
		Courses []models.Course `json:"courses"`
		Total   int             `json:"total"`
	}
	if json.Unmarshal(data, &resp) != nil || resp.Total == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Courses (%d)\n", resp.Total)
	for _, c := range resp.Courses {
		line := fmt.Sprintf("- **%s** (id %d)", c.Name, c.ID)
		if c.CourseCode != "" && c.CourseCode != c.Name {
			line += fmt.Sprintf(" — %s", c.CourseCode)
		}
		if len(c.Enrollments) > 0 {
			e := c.Enrollments[0]
			if e.ComputedCurrentScore != nil {
				grade := e.ComputedCurrentGrade
				if grade == "" {
					grade = "n/a"
				}
				line += fmt.Sprintf(" — current: %.1f%% (%s)", *e.ComputedCurrentScore, grade)
			}
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatEnrollments(data []byte) string {
	var resp struct {
		Enrollments []models.Enrollment `json:"enrollments"`
		Total       int                 `json:"total"`
	}
	if json.Unmarshal(data, &resp) != nil || resp.Total == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Enrollments (%d)\n", resp.Total)
	for _, e := range resp.Enrollments {
		line := fmt.Sprintf("- course %d (%s)", e.CourseID, e.Type)
		if e.Grades != nil && e.Grades.CurrentScore != nil {
			grade := e.Grades.CurrentGrade
			if grade == "" {
				grade = "n/a"
			}
			line += fmt.Sprintf(" — current: %.1f%% (%s)", *e.Grades.CurrentScore, grade)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAssignments(data []byte) string {
	var resp struct {
		CourseID    int                 `json:"courseId"`
		Assignments []models.Assignment `json:"assignments"`
		Total       int                 `json:"total"`
	}
	if json.Unmarshal(data, &resp) != nil || resp.Total == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Assignments for course %d (%d)\n", resp.CourseID, resp.Total)
	for _, a := range resp.Assignments {
		line := fmt.Sprintf("- **%s** (id %d, %.0f pts)", a.Name, a.ID, a.PointsPossible)
		if a.DueAt != nil {
			line += fmt.Sprintf(", due %s", a.DueAt.Format("2006-01-02 15:04"))
		}
		if a.Submission != nil {
			if a.Submission.Score != nil {
				line += fmt.Sprintf(" — scored %.1f", *a.Submission.Score)
			} else if a.Submission.Missing {
				line += " — missing"
			} else if a.Submission.WorkflowState != "" {
				line += fmt.Sprintf(" — %s", a.Submission.WorkflowState)
			}
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatQuizzes(data []byte) string {
	var resp struct {
		CourseID int           `json:"courseId"`
		Quizzes  []models.Quiz `json:"quizzes"`
		Total    int           `json:"total"`
	}
	if json.Unmarshal(data, &resp) != nil || resp.Total == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Quizzes for course %d (%d)\n", resp.CourseID, resp.Total)
	for _, q := range resp.Quizzes {
		line := fmt.Sprintf("- **%s** (id %d, %d questions, %.0f pts)", q.Title, q.ID, q.QuestionCount, q.PointsPossible)
		if q.DueAt != nil {
			line += fmt.Sprintf(", due %s", q.DueAt.Format("2006-01-02 15:04"))
		}
		if q.TimeLimit != nil {
			line += fmt.Sprintf(", %d min limit", *q.TimeLimit)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAnnouncements(data []byte) string {
	var resp struct {
		Announcements []models.DiscussionTopic `json:"announcements"`
		Total         int                      `json:"total"`
	}
	if json.Unmarshal(data, &resp) != nil || resp.Total == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Announcements (%d)\n", resp.Total)
	for _, a := range resp.Announcements {
		line := fmt.Sprintf("- **%s**", a.Title)
		if a.ContextCode != "" {
			line += fmt.Sprintf(" (%s)", a.ContextCode)
		}
		if a.PostedAt != nil {
			line += fmt.Sprintf(", posted %s", a.PostedAt.Format("2006-01-02"))
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
