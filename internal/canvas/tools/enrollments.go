package tools

import (
	"context"
	"fmt"
)

func registerEnrollmentTools(r *Registry) {
	r.MustRegister(listEnrollmentsOp())
}

func listEnrollmentsOp() *Operation {
	return &Operation{
		Name: "list_enrollments",
		Description: "List the current user's enrollments across all courses with grade data. " +
			"Use when student asks 'What are my grades?' or 'Show me my current scores.'",
		Category: "enrollments",
		Args: []ArgSpec{
			{Name: "state", Type: ArgStringList, Description: "Filter by enrollment state (default: [\"active\"])"},
			{Name: "enrollmentType", Type: ArgStringList, Description: "Filter by type (default: [\"StudentEnrollment\"])"},
			{Name: "gradingPeriodId", Type: ArgInt, Description: "Return grades for a specific grading period"},
			{Name: "perPage", Type: ArgInt, Description: "Results per page (default: 100)"},
		},
		Validate: func(args map[string]any) error {
			if _, present := args["state"]; present {
				if err := optionalStringList(args, "state"); err != nil {
					return err
				}
				for _, state := range listStrings(args["state"]) {
					switch state {
					case "active", "invited_or_pending", "creation_pending", "deleted", "rejected", "completed", "inactive":
					default:
						return fmt.Errorf("invalid state %q. Must be one of: active, invited_or_pending, creation_pending, deleted, rejected, completed, inactive", state)
					}
				}
			}
			if _, present := args["enrollmentType"]; present {
				if err := optionalStringList(args, "enrollmentType"); err != nil {
					return err
				}
				for _, etype := range listStrings(args["enrollmentType"]) {
					switch etype {
					case "StudentEnrollment", "TeacherEnrollment", "TaEnrollment", "DesignerEnrollment", "ObserverEnrollment":
					default:
						return fmt.Errorf("invalid enrollmentType %q. Must be one of: StudentEnrollment, TeacherEnrollment, TaEnrollment, DesignerEnrollment, ObserverEnrollment", etype)
					}
				}
			}
			if _, present := args["gradingPeriodId"]; present {
				if err := requirePositiveInt(args, "gradingPeriodId"); err != nil {
					return err
				}
			}
			return optionalPerPage(args)
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			state := tc.StringSlice("state")
			if len(state) == 0 {
				state = []string{"active"}
			}
			enrollmentType := tc.StringSlice("enrollmentType")
			if len(enrollmentType) == 0 {
				enrollmentType = []string{"StudentEnrollment"}
			}
			gradingPeriodID := tc.IntOr("gradingPeriodId", 0)

			p := enrollmentParams{
				State:           state,
				Type:            enrollmentType,
				Include:         enrollmentIncludeAll,
				GradingPeriodID: gradingPeriodID,
				PerPage:         tc.IntOr("perPage", 100),
			}

			enrollments, err := tc.Client().GetPaginated(ctx, "/users/self/enrollments", paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"enrollments": enrollments,
				"total":       len(enrollments),
				"filters": map[string]any{
					"state":           state,
					"enrollmentType":  enrollmentType,
					"gradingPeriodId": gradingPeriodID,
				},
			}, nil
		},
	}
}
