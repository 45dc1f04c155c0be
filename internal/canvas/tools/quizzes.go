package tools

import (
	"context"
	"fmt"
)

func registerQuizTools(r *Registry) {
	r.MustRegister(listQuizzesOp())
	r.MustRegister(getQuizOp())
	r.MustRegister(getQuizSubmissionOp())
	r.MustRegister(listQuizSubmissionsOp())
}

func listQuizzesOp() *Operation {
	return &Operation{
		Name: "list_quizzes",
		Description: "List all quizzes for a specific course. " +
			"Returns titles, due dates, time limits, and question counts. " +
			"Use when student asks 'What quizzes do I have?' or 'Show me upcoming quizzes.'",
		Category: "quizzes",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "searchTerm", Type: ArgString, Description: "Search quizzes by title"},
			{Name: "perPage", Type: ArgInt, Description: "Results per page (default: 100)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			return optionalPerPage(args)
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			searchTerm := tc.StringOr("searchTerm", "")

			p := quizListParams{
				SearchTerm: searchTerm,
				PerPage:    tc.IntOr("perPage", 100),
			}

			quizzes, err := tc.Client().GetPaginated(ctx, fmt.Sprintf("/courses/%d/quizzes", courseID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId": courseID,
				"quizzes":  quizzes,
				"total":    len(quizzes),
				"filters": map[string]any{
					"searchTerm": searchTerm,
				},
			}, nil
		},
	}
}

func getQuizOp() *Operation {
	return &Operation{
		Name: "get_quiz",
		Description: "Get detailed information about a specific quiz by ID. " +
			"Returns settings, time limit, allowed attempts, and question count. " +
			"Use when student asks 'Tell me about this quiz' or 'How long do I have for quiz X?'",
		Category: "quizzes",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "quizId", Type: ArgInt, Required: true, Description: "Canvas quiz ID"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			return requirePositiveInt(args, "quizId")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			quizID, _ := tc.Int("quizId")

			quiz, err := tc.Client().Get(ctx, fmt.Sprintf("/courses/%d/quizzes/%d", courseID, quizID), nil)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId": courseID,
				"quizId":   quizID,
				"quiz":     quiz,
			}, nil
		},
	}
}

func getQuizSubmissionOp() *Operation {
	return &Operation{
		Name: "get_quiz_submission",
		Description: "Get the current user's submission for a specific quiz, including " +
			"score, attempt number, and time spent. " +
			"Use when student asks 'What did I get on this quiz?' or 'Did I finish quiz X?'",
		Category: "quizzes",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "quizId", Type: ArgInt, Required: true, Description: "Canvas quiz ID"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			return requirePositiveInt(args, "quizId")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			quizID, _ := tc.Int("quizId")

			p := quizSubmissionParams{Include: quizSubmissionIncludeAll}

			// Canvas returns the authenticated user's submission for this quiz.
			submission, err := tc.Client().Get(ctx,
				fmt.Sprintf("/courses/%d/quizzes/%d/submission", courseID, quizID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId":   courseID,
				"quizId":     quizID,
				"submission": submission,
			}, nil
		},
	}
}

func listQuizSubmissionsOp() *Operation {
	return &Operation{
		Name: "list_quiz_submissions",
		Description: "List all submissions for a specific quiz. " +
			"For students this returns their own submissions across attempts.",
		Category: "quizzes",
		Args: []ArgSpec{
			{Name: "courseId", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "quizId", Type: ArgInt, Required: true, Description: "Canvas quiz ID"},
			{Name: "perPage", Type: ArgInt, Description: "Results per page (default: 100)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "courseId"); err != nil {
				return err
			}
			if err := requirePositiveInt(args, "quizId"); err != nil {
				return err
			}
			return optionalPerPage(args)
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("courseId")
			quizID, _ := tc.Int("quizId")

			p := quizSubmissionParams{Include: quizSubmissionIncludeAll}

			submissions, err := tc.Client().GetPaginated(ctx,
				fmt.Sprintf("/courses/%d/quizzes/%d/submissions", courseID, quizID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"courseId":    courseID,
				"quizId":      quizID,
				"submissions": submissions,
				"total":       len(submissions),
			}, nil
		},
	}
}
