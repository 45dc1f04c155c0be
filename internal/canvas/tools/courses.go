package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// registerCourseTools registers the course catalogue: listing, detail,
// progress, roster, and HTML preview.
func registerCourseTools(r *Registry) {
	r.MustRegister(listCoursesOp())
	r.MustRegister(getCourseOp())
	r.MustRegister(getCourseProgressOp())
	r.MustRegister(getCourseUsersOp())
	r.MustRegister(previewHTMLOp())
}

// includeWithoutSyllabus returns the include list with syllabus_body removed.
// The syllabus can be very large, so callers may opt out of it.
func includeWithoutSyllabus(include []string) []string {
	out := make([]string, 0, len(include))
	for _, inc := range include {
		if inc != "syllabus_body" {
			out = append(out, inc)
		}
	}
	return out
}

func listCoursesOp() *Operation {
	return &Operation{
		Name: "list_courses",
		Description: "List all courses for the current user with comprehensive data. " +
			"Includes syllabus, grades, progress, permissions, and more. " +
			"Perfect for answering 'What courses am I taking?' or 'Show me my courses with grades.'",
		Category: "courses",
		Args: []ArgSpec{
			{Name: "enrollmentState", Type: ArgString, Description: "Filter by enrollment state: active, invited_or_pending, completed, all"},
			{Name: "state", Type: ArgStringList, Description: "Filter by course state (e.g. [\"available\"], [\"completed\"])"},
			{Name: "homeroom", Type: ArgBool, Description: "Return only homeroom courses"},
			{Name: "includeSyllabus", Type: ArgBool, Description: "Include full syllabus HTML (default: true)"},
			{Name: "perPage", Type: ArgInt, Description: "Results per page (default: 100)"},
		},
		Validate: func(args map[string]any) error {
			if err := optionalEnum(args, "enrollmentState", "active", "invited_or_pending", "completed", "all"); err != nil {
				return err
			}
			if err := optionalStringList(args, "state"); err != nil {
				return err
			}
			return optionalPerPage(args)
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			enrollmentState := tc.StringOr("enrollmentState", "active")
			state := tc.StringSlice("state")
			homeroom, homeroomSet := tc.Bool("homeroom")
			includeSyllabus := tc.BoolOr("includeSyllabus", true)
			perPage := tc.IntOr("perPage", 100)

			include := append([]string(nil), courseIncludeAll...)
			if !includeSyllabus {
				include = includeWithoutSyllabus(include)
			}

			p := courseListParams{
				Include:         include,
				EnrollmentState: enrollmentState,
				State:           state,
				PerPage:         perPage,
			}
			if homeroomSet {
				p.Homeroom = strconv.FormatBool(homeroom)
			}

			courses, err := tc.Client().GetPaginated(ctx, "/courses", paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courses": courses,
				"total":   len(courses),
				"filters": map[string]any{
					"enrollmentState": enrollmentState,
					"state":           state,
					"homeroom":        homeroomArg(homeroom, homeroomSet),
				},
			}, nil
		},
	}
}

func homeroomArg(v, set bool) any {
	if !set {
		return nil
	}
	return v
}

func getCourseOp() *Operation {
	return &Operation{
		Name: "get_course",
		Description: "Get detailed information about a specific course by ID. " +
			"Returns comprehensive data including syllabus, grades, progress, permissions, and settings. " +
			"Use this when student asks about a specific course.",
		Category: "courses",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "includeSyllabus", Type: ArgBool, Description: "Include full syllabus HTML (default: true)"},
			{Name: "teacherLimit", Type: ArgInt, Description: "Maximum number of teachers to include"},
		},
		Validate: func(args map[string]any) error {
			return requirePositiveInt(args, "courseId")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			includeSyllabus := tc.BoolOr("includeSyllabus", true)
			teacherLimit := tc.IntOr("teacherLimit", 0)

			include := append([]string(nil), courseIncludeAll...)
			if !includeSyllabus {
				include = includeWithoutSyllabus(include)
			}

			p := singleCourseParams{
				Include:      include,
				TeacherLimit: teacherLimit,
			}

			course, err := tc.Client().Get(ctx, fmt.Sprintf("/courses/%d", courseID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"course": course,
			}, nil
		},
	}
}

func getCourseProgressOp() *Operation {
	return &Operation{
		Name: "get_course_progress",
		Description: "Get the current user's progress through a course: requirement counts, " +
			"completion state, and the next requirement URL.",
		Category: "courses",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
		},
		Validate: func(args map[string]any) error {
			return requirePositiveInt(args, "courseId")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")

			progress, err := tc.Client().Get(ctx, fmt.Sprintf("/courses/%d/users/self/progress", courseID), nil)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId": courseID,
				"progress": progress,
			}, nil
		},
	}
}

func getCourseUsersOp() *Operation {
	return &Operation{
		Name: "get_course_users",
		Description: "List users enrolled in a course with enrollment and contact data. " +
			"Use when student asks 'Who is in this course?' or 'Who teaches this course?'",
		Category: "courses",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "enrollmentType", Type: ArgStringList, Description: "Filter by types (default: [\"student\"])"},
			{Name: "enrollmentState", Type: ArgStringList, Description: "Filter by states (default: [\"active\"])"},
			{Name: "includeEmail", Type: ArgBool, Description: "Include email addresses (default: true)"},
			{Name: "includeAvatar", Type: ArgBool, Description: "Include avatar URLs (default: true)"},
			{Name: "perPage", Type: ArgInt, Description: "Results per page (default: 100)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			if _, present := args["enrollmentType"]; present {
				if err := optionalStringList(args, "enrollmentType"); err != nil {
					return err
				}
				for _, etype := range listStrings(args["enrollmentType"]) {
					switch etype {
					case "student", "teacher", "ta", "observer", "designer":
					default:
						return fmt.Errorf("invalid enrollment type %q. Must be one of: student, teacher, ta, observer, designer", etype)
					}
				}
			}
			if _, present := args["enrollmentState"]; present {
				if err := optionalStringList(args, "enrollmentState"); err != nil {
					return err
				}
				for _, state := range listStrings(args["enrollmentState"]) {
					switch state {
					case "active", "invited", "rejected", "completed", "inactive":
					default:
						return fmt.Errorf("invalid enrollment state %q. Must be one of: active, invited, rejected, completed, inactive", state)
					}
				}
			}
			return optionalPerPage(args)
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			enrollmentType := tc.StringSlice("enrollmentType")
			if len(enrollmentType) == 0 {
				enrollmentType = []string{"student"}
			}
			enrollmentState := tc.StringSlice("enrollmentState")
			if len(enrollmentState) == 0 {
				enrollmentState = []string{"active"}
			}

			// Enrollment info is always included; email and avatar are opt-out.
			include := []string{"enrollments"}
			if tc.BoolOr("includeEmail", true) {
				include = append(include, "email")
			}
			if tc.BoolOr("includeAvatar", true) {
				include = append(include, "avatar_url")
			}

			p := courseUserParams{
				EnrollmentType:  enrollmentType,
				EnrollmentState: enrollmentState,
				Include:         include,
				PerPage:         tc.IntOr("perPage", 100),
			}

			users, err := tc.Client().GetPaginated(ctx, fmt.Sprintf("/courses/%d/users", courseID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId": courseID,
				"users":    users,
				"total":    len(users),
				"filters": map[string]any{
					"enrollmentType":  enrollmentType,
					"enrollmentState": enrollmentState,
				},
			}, nil
		},
	}
}

func previewHTMLOp() *Operation {
	return &Operation{
		Name: "preview_html",
		Description: "Preview HTML content processed for a course: Canvas sanitizes the markup " +
			"the same way it would when displayed in the course.",
		Category: "courses",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID for context"},
			{Name: "html", Type: ArgString, Required: true, Description: "HTML content to preview"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			return requireString(args, "html")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			html, _ := tc.String("html")

			result, err := tc.Client().Post(ctx, fmt.Sprintf("/courses/%d/preview_html", courseID),
				map[string]any{"html": html}, nil)
			if err != nil {
				return nil, err
			}

			// Canvas returns the rendered HTML in the 'html' field.
			rendered := html
			var parsed struct {
				HTML string `json:"html"`
			}
			if json.Unmarshal(result, &parsed) == nil && parsed.HTML != "" {
				rendered = parsed.HTML
			}

			return map[string]any{
				"courseId":     courseID,
				"html":         rendered,
				"originalHtml": html,
			}, nil
		},
	}
}

// listStrings coerces a raw list argument to []string for validation.
func listStrings(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
