package tools

import (
	"context"
	"fmt"
)

func registerAssignmentTools(r *Registry) {
	r.MustRegister(listAssignmentsOp())
	r.MustRegister(getAssignmentOp())
	r.MustRegister(getAssignmentSubmissionOp())
}

func listAssignmentsOp() *Operation {
	return &Operation{
		Name: "list_assignments",
		Description: "List all assignments for a specific course with comprehensive data. " +
			"Includes submission status, scores, due dates, and requirements. " +
			"Use when student asks 'What assignments do I have?' or 'Show my upcoming assignments for this course.'",
		Category: "assignments",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "bucket", Type: ArgString, Description: "Filter by bucket: past, overdue, undated, ungraded, unsubmitted, upcoming, future"},
			{Name: "searchTerm", Type: ArgString, Description: "Search assignments by title"},
			{Name: "orderBy", Type: ArgString, Description: "Order results: position, name, due_at (default: due_at)"},
			{Name: "perPage", Type: ArgInt, Description: "Results per page (default: 100)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			if err := optionalEnum(args, "bucket", "past", "overdue", "undated", "ungraded", "unsubmitted", "upcoming", "future"); err != nil {
				return err
			}
			if err := optionalEnum(args, "orderBy", "position", "name", "due_at"); err != nil {
				return err
			}
			return optionalPerPage(args)
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			bucket := tc.StringOr("bucket", "")
			searchTerm := tc.StringOr("searchTerm", "")
			orderBy := tc.StringOr("orderBy", "due_at")

			p := assignmentListParams{
				Include:    assignmentIncludeAll,
				Bucket:     bucket,
				SearchTerm: searchTerm,
				OrderBy:    orderBy,
				// Apply overrides so due dates reflect the student's section.
				OverrideAssignmentDates: true,
				PerPage:                 tc.IntOr("perPage", 100),
			}

			assignments, err := tc.Client().GetPaginated(ctx, fmt.Sprintf("/courses/%d/assignments", courseID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId":    courseID,
				"assignments": assignments,
				"total":       len(assignments),
				"filters": map[string]any{
					"bucket":     bucket,
					"searchTerm": searchTerm,
					"orderBy":    orderBy,
				},
			}, nil
		},
	}
}

func getAssignmentOp() *Operation {
	return &Operation{
		Name: "get_assignment",
		Description: "Get detailed information about a specific assignment by ID. " +
			"Returns comprehensive data including submission status, rubric, scores, and requirements. " +
			"Use when student asks 'Tell me about this assignment' or 'What do I need to do for assignment X?'",
		Category: "assignments",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "assignmentId", Type: ArgInt, Required: true, Description: "Canvas assignment ID"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			return requirePositiveInt(args, "assignmentId")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			assignmentID, _ := tc.Int("assignmentId")

			p := singleAssignmentParams{
				Include:                 assignmentIncludeAll,
				OverrideAssignmentDates: true,
			}

			assignment, err := tc.Client().Get(ctx,
				fmt.Sprintf("/courses/%d/assignments/%d", courseID, assignmentID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId":     courseID,
				"assignmentId": assignmentID,
				"assignment":   assignment,
			}, nil
		},
	}
}

func getAssignmentSubmissionOp() *Operation {
	return &Operation{
		Name: "get_assignment_submission",
		Description: "Get the current user's submission for a specific assignment, including " +
			"submission history, comments, and rubric assessment. " +
			"Use when student asks 'What did I get on this assignment?' or 'Did I submit assignment X?'",
		Category: "assignments",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "assignmentId", Type: ArgInt, Required: true, Description: "Canvas assignment ID"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			return requirePositiveInt(args, "assignmentId")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			assignmentID, _ := tc.Int("assignmentId")

			p := submissionParams{
				Include: []string{
					"submission_history",
					"submission_comments",
					"rubric_assessment",
					"full_rubric_assessment",
					"visibility",
					"course",
					"user",
				},
			}

			// Canvas resolves "self" to the authenticated user.
			submission, err := tc.Client().Get(ctx,
				fmt.Sprintf("/courses/%d/assignments/%d/submissions/self", courseID, assignmentID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId":     courseID,
				"assignmentId": assignmentID,
				"submission":   submission,
			}, nil
		},
	}
}
