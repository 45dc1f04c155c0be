package tools

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// Query-parameter structs for the Canvas API, encoded with go-querystring.
// Slice fields expand to repeated key=value fragments in slice order, which
// is the format Canvas expects for include[]-style parameters.

// courseIncludeAll is every include[] value the courses endpoints accept,
// for comprehensive responses.
var courseIncludeAll = []string{
	"syllabus_body",
	"term",
	"course_progress",
	"total_scores",
	"current_grading_period_scores",
	"grading_periods",
	"permissions",
	"sections",
	"favorites",
	"public_description",
	"total_students",
	"needs_grading_count",
	"account",
	"course_image",
	"banner_image",
	"concluded",
	"tabs",
	"passback_status",
	"observed_users",
}

// assignmentIncludeAll is every include[] value the assignments endpoints
// accept for a student-facing response.
var assignmentIncludeAll = []string{
	"submission",
	"assignment_visibility",
	"all_dates",
	"overrides",
	"observed_users",
	"can_edit",
	"score_statistics",
}

// enrollmentIncludeAll requests full grade data on enrollment listings.
var enrollmentIncludeAll = []string{
	"avatar_url",
	"group_ids",
	"locked",
	"observed_users",
	"uuid",
	"current_points",
}

// quizSubmissionIncludeAll expands quiz submission responses with their quiz
// and user objects.
var quizSubmissionIncludeAll = []string{
	"submission",
	"quiz",
	"user",
}

type courseListParams struct {
	Include         []string `url:"include[]"`
	EnrollmentState string   `url:"enrollment_state,omitempty"`
	State           []string `url:"state[]"`
	Homeroom        string   `url:"homeroom,omitempty"` // "true"/"false" when set
	PerPage         int      `url:"per_page,omitempty"`
}

type singleCourseParams struct {
	Include      []string `url:"include[]"`
	TeacherLimit int      `url:"teacher_limit,omitempty"`
}

type courseUserParams struct {
	EnrollmentType  []string `url:"enrollment_type[]"`
	EnrollmentState []string `url:"enrollment_state[]"`
	Include         []string `url:"include[]"`
	PerPage         int      `url:"per_page,omitempty"`
}

type announcementParams struct {
	ContextCodes []string `url:"context_codes[]"`
	StartDate    string   `url:"start_date,omitempty"`
	EndDate      string   `url:"end_date,omitempty"`
	ActiveOnly   bool     `url:"active_only,omitempty"`
	LatestOnly   bool     `url:"latest_only,omitempty"`
	PerPage      int      `url:"per_page,omitempty"`
}

type assignmentListParams struct {
	Include                 []string `url:"include[]"`
	Bucket                  string   `url:"bucket,omitempty"`
	SearchTerm              string   `url:"search_term,omitempty"`
	OrderBy                 string   `url:"order_by,omitempty"`
	OverrideAssignmentDates bool     `url:"override_assignment_dates,omitempty"`
	PerPage                 int      `url:"per_page,omitempty"`
}

type singleAssignmentParams struct {
	Include                 []string `url:"include[]"`
	OverrideAssignmentDates bool     `url:"override_assignment_dates,omitempty"`
}

type submissionParams struct {
	Include []string `url:"include[]"`
}

type enrollmentParams struct {
	State           []string `url:"state[]"`
	Type            []string `url:"type[]"`
	Include         []string `url:"include[]"`
	GradingPeriodID int      `url:"grading_period_id,omitempty"`
	PerPage         int      `url:"per_page,omitempty"`
}

type quizListParams struct {
	SearchTerm string `url:"search_term,omitempty"`
	PerPage    int    `url:"per_page,omitempty"`
}

type quizSubmissionParams struct {
	Include []string `url:"include[]"`
}

type discussionListParams struct {
	PerPage int `url:"per_page,omitempty"`
}

// paramValues encodes a params struct into url.Values. The structs above are
// always encodable; an error here is a programming mistake and surfaces
// through the dispatcher's recovery path.
func paramValues(v any) url.Values {
	vals, err := query.Values(v)
	if err != nil {
		panic(err)
	}
	return vals
}
