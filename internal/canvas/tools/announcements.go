package tools

import (
	"context"
	"fmt"
)

func registerAnnouncementTools(r *Registry) {
	r.MustRegister(listAnnouncementsOp())
}

func listAnnouncementsOp() *Operation {
	return &Operation{
		Name: "list_announcements",
		Description: "List announcements across one or more courses. " +
			"Returns title, message, dates, and course context. " +
			"Use when student asks 'What announcements do I have?' or 'Show me course announcements.'",
		Category: "announcements",
		Args: []ArgSpec{
			{Name: "courseIds", Type: ArgIntList, Required: true, Description: "Canvas course IDs to get announcements from"},
			{Name: "startDate", Type: ArgString, Description: "Only return announcements after this date (ISO 8601)"},
			{Name: "endDate", Type: ArgString, Description: "Only return announcements before this date (ISO 8601)"},
			{Name: "activeOnly", Type: ArgBool, Description: "Only return published announcements (default: true)"},
			{Name: "latestOnly", Type: ArgBool, Description: "Only return the most recent announcement per course"},
			{Name: "perPage", Type: ArgInt, Description: "Results per page (default: 100)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveIntList(args, "courseIds"); err != nil {
				return err
			}
			return optionalPerPage(args)
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseIDs := tc.IntSlice("courseIds")

			// Canvas addresses announcement sources as context codes: "course_123".
			contextCodes := make([]string, len(courseIDs))
			for i, id := range courseIDs {
				contextCodes[i] = fmt.Sprintf("course_%d", id)
			}

			startDate := tc.StringOr("startDate", "")
			endDate := tc.StringOr("endDate", "")
			activeOnly := tc.BoolOr("activeOnly", true)
			latestOnly := tc.BoolOr("latestOnly", false)

			p := announcementParams{
				ContextCodes: contextCodes,
				StartDate:    startDate,
				EndDate:      endDate,
				ActiveOnly:   activeOnly,
				LatestOnly:   latestOnly,
				PerPage:      tc.IntOr("perPage", 100),
			}

			announcements, err := tc.Client().GetPaginated(ctx, "/announcements", paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"announcements": announcements,
				"total":         len(announcements),
				"courseIds":     courseIDs,
				"filters": map[string]any{
					"startDate":  startDate,
					"endDate":    endDate,
					"activeOnly": activeOnly,
					"latestOnly": latestOnly,
				},
			}, nil
		},
	}
}
