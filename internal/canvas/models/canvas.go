// Package models defines data structures for Canvas LMS API responses.
//
// Tool executors pass Canvas payloads through as raw JSON so no field is ever
// dropped; these types exist for the places that need structured access —
// formatters, summaries, and tests.
package models

import "time"

// Course is a Canvas course. Fields beyond the core set are populated only
// when the matching include[] parameter was requested.
type Course struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	CourseCode     string `json:"course_code"`
	WorkflowState  string `json:"workflow_state"` // "unpublished", "available", "completed", "deleted"
	AccountID      int    `json:"account_id,omitempty"`
	UUID           string `json:"uuid,omitempty"`
	SISCourseID    string `json:"sis_course_id,omitempty"`
	EnrollmentTerm int    `json:"enrollment_term_id,omitempty"`

	StartAt   *time.Time `json:"start_at,omitempty"`
	EndAt     *time.Time `json:"end_at,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	DefaultView       string `json:"default_view,omitempty"`
	TimeZone          string `json:"time_zone,omitempty"`
	PublicDescription string `json:"public_description,omitempty"`
	TotalStudents     int    `json:"total_students,omitempty"`
	IsFavorite        bool   `json:"is_favorite,omitempty"`
	OriginalName      string `json:"original_name,omitempty"` // set when the user has a nickname

	SyllabusBody string `json:"syllabus_body,omitempty"`

	Term           *Term           `json:"term,omitempty"`
	Enrollments    []Enrollment    `json:"enrollments,omitempty"`
	CourseProgress *CourseProgress `json:"course_progress,omitempty"`
	Sections       []Section       `json:"sections,omitempty"`
	GradingPeriods []GradingPeriod `json:"grading_periods,omitempty"`
}

// Term is a Canvas enrollment term.
type Term struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	EndAt         *time.Time `json:"end_at,omitempty"`
	WorkflowState string     `json:"workflow_state,omitempty"`
}

// EnrollmentGrades holds grade information for an enrollment.
type EnrollmentGrades struct {
	HTMLURL      string   `json:"html_url,omitempty"`
	CurrentScore *float64 `json:"current_score,omitempty"`
	CurrentGrade string   `json:"current_grade,omitempty"`
	FinalScore   *float64 `json:"final_score,omitempty"`
	FinalGrade   string   `json:"final_grade,omitempty"`
}

// Enrollment is a Canvas enrollment record.
type Enrollment struct {
	ID                    int               `json:"id,omitempty"`
	UserID                int               `json:"user_id,omitempty"`
	CourseID              int               `json:"course_id,omitempty"`
	Type                  string            `json:"type"` // "StudentEnrollment", "TeacherEnrollment", ...
	EnrollmentState       string            `json:"enrollment_state,omitempty"`
	Role                  string            `json:"role,omitempty"`
	Grades                *EnrollmentGrades `json:"grades,omitempty"`
	ComputedCurrentScore  *float64          `json:"computed_current_score,omitempty"`
	ComputedCurrentGrade  string            `json:"computed_current_grade,omitempty"`
	ComputedFinalScore    *float64          `json:"computed_final_score,omitempty"`
	ComputedFinalGrade    string            `json:"computed_final_grade,omitempty"`
	LastActivityAt        *time.Time        `json:"last_activity_at,omitempty"`
	TotalActivityTimeSecs int               `json:"total_activity_time,omitempty"`
}

// GradingPeriod is a Canvas grading period.
type GradingPeriod struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsClosed  bool       `json:"is_closed,omitempty"`
}

// Section is a Canvas course section.
type Section struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	CourseID int    `json:"course_id,omitempty"`
}

// CourseProgress tracks a student's module-requirement progress in a course.
type CourseProgress struct {
	RequirementCount          int        `json:"requirement_count"`
	RequirementCompletedCount int        `json:"requirement_completed_count"`
	NextRequirementURL        string     `json:"next_requirement_url,omitempty"`
	CompletedAt               *time.Time `json:"completed_at,omitempty"`
}

// User is a Canvas user.
type User struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	SortableName string       `json:"sortable_name,omitempty"`
	ShortName    string       `json:"short_name,omitempty"`
	LoginID      string       `json:"login_id,omitempty"`
	Email        string       `json:"email,omitempty"`
	AvatarURL    string       `json:"avatar_url,omitempty"`
	Enrollments  []Enrollment `json:"enrollments,omitempty"`
}

// Assignment is a Canvas assignment. Only the fields the formatters read are
// declared; raw payloads carry everything else.
type Assignment struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	CourseID       int         `json:"course_id,omitempty"`
	DueAt          *time.Time  `json:"due_at,omitempty"`
	PointsPossible float64     `json:"points_possible,omitempty"`
	HTMLURL        string      `json:"html_url,omitempty"`
	Submission     *Submission `json:"submission,omitempty"`
}

// Submission is a Canvas assignment submission.
type Submission struct {
	ID            int        `json:"id,omitempty"`
	Score         *float64   `json:"score,omitempty"`
	Grade         string     `json:"grade,omitempty"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	WorkflowState string     `json:"workflow_state,omitempty"`
	Late          bool       `json:"late,omitempty"`
	Missing       bool       `json:"missing,omitempty"`
}

// Quiz is a Canvas quiz.
type Quiz struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	PointsPossible float64    `json:"points_possible,omitempty"`
	QuestionCount  int        `json:"question_count,omitempty"`
	TimeLimit      *int       `json:"time_limit,omitempty"` // minutes
	AllowedAttempt int        `json:"allowed_attempts,omitempty"`
}

// DiscussionTopic is a Canvas discussion topic or announcement.
type DiscussionTopic struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Message         string     `json:"message,omitempty"`
	PostedAt        *time.Time `json:"posted_at,omitempty"`
	DelayedPostAt   *time.Time `json:"delayed_post_at,omitempty"`
	ContextCode     string     `json:"context_code,omitempty"` // "course_123" on announcements
	DiscussionCount int        `json:"discussion_subentry_count,omitempty"`
}
