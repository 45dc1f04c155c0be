package tools

import (
	"context"
	"fmt"
)

// Discussion tools use snake_case argument names (course_id, topic_id,
// entry_id) matching the Canvas discussion API parameter conventions.
func registerDiscussionTools(r *Registry) {
	r.MustRegister(listDiscussionTopicsOp())
	r.MustRegister(getDiscussionTopicOp())
	r.MustRegister(listDiscussionEntriesOp())
	r.MustRegister(listEntryRepliesOp())
}

func listDiscussionTopicsOp() *Operation {
	return &Operation{
		Name: "list_discussion_topics",
		Description: "List discussion topics for a course. " +
			"Returns titles, posting dates, and reply counts. " +
			"Use when student asks 'What discussions are there?' or 'Show me the course forum.'",
		Category: "discussions",
		Args: []ArgSpec{
			{Name: "course_id", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "per_page", Type: ArgInt, Description: "Results per page (default: 50)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "course_id"); err != nil {
				return err
			}
			return optionalPerPageKey(args, "per_page")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("course_id")

			p := discussionListParams{PerPage: tc.IntOr("per_page", 50)}

			topics, err := tc.Client().GetPaginated(ctx,
				fmt.Sprintf("/courses/%d/discussion_topics", courseID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"discussion_topics": topics,
				"total":             len(topics),
			}, nil
		},
	}
}

func getDiscussionTopicOp() *Operation {
	return &Operation{
		Name: "get_discussion_topic",
		Description: "Get detailed information about a specific discussion topic, " +
			"including the full message body and posting settings.",
		Category: "discussions",
		Args: []ArgSpec{
			{Name: "course_id", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "topic_id", Type: ArgInt, Required: true, Description: "Canvas discussion topic ID"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "course_id"); err != nil {
				return err
			}
			return requirePositiveInt(args, "topic_id")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("course_id")
			topicID, _ := tc.Int("topic_id")

			topic, err := tc.Client().Get(ctx,
				fmt.Sprintf("/courses/%d/discussion_topics/%d", courseID, topicID), nil)
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"discussion_topic": topic,
			}, nil
		},
	}
}

func listDiscussionEntriesOp() *Operation {
	return &Operation{
		Name: "list_discussion_entries",
		Description: "List top-level entries posted to a discussion topic. " +
			"Use when student asks 'What did people post in this discussion?'",
		Category: "discussions",
		Args: []ArgSpec{
			{Name: "course_id", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "topic_id", Type: ArgInt, Required: true, Description: "Canvas discussion topic ID"},
			{Name: "per_page", Type: ArgInt, Description: "Results per page (default: 50)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "course_id"); err != nil {
				return err
			}
			if err := requirePositiveInt(args, "topic_id"); err != nil {
				return err
			}
			return optionalPerPageKey(args, "per_page")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("course_id")
			topicID, _ := tc.Int("topic_id")

			p := discussionListParams{PerPage: tc.IntOr("per_page", 50)}

			entries, err := tc.Client().GetPaginated(ctx,
				fmt.Sprintf("/courses/%d/discussion_topics/%d/entries", courseID, topicID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"discussion_entries": entries,
				"total":              len(entries),
			}, nil
		},
	}
}

func listEntryRepliesOp() *Operation {
	return &Operation{
		Name: "list_entry_replies",
		Description: "List replies to a specific discussion entry. " +
			"Use to read the thread under one post.",
		Category: "discussions",
		Args: []ArgSpec{
			{Name: "course_id", Type: ArgInt, Required: true, Description: "Canvas course ID"},
			{Name: "topic_id", Type: ArgInt, Required: true, Description: "Canvas discussion topic ID"},
			{Name: "entry_id", Type: ArgInt, Required: true, Description: "Canvas discussion entry ID"},
			{Name: "per_page", Type: ArgInt, Description: "Results per page (default: 50)"},
		},
		Validate: func(args map[string]any) error {
			if err := requirePositiveInt(args, "course_id"); err != nil {
				return err
			}
			if err := requirePositiveInt(args, "topic_id"); err != nil {
				return err
			}
			if err := requirePositiveInt(args, "entry_id"); err != nil {
				return err
			}
			return optionalPerPageKey(args, "per_page")
		},
		Execute: func(ctx context.Context, tc *Context) (any, error) {
			courseID, _ := tc.Int("course_id")
			topicID, _ := tc.Int("topic_id")
			entryID, _ := tc.Int("entry_id")

			p := discussionListParams{PerPage: tc.IntOr("per_page", 50)}

			replies, err := tc.Client().GetPaginated(ctx,
				fmt.Sprintf("/courses/%d/discussion_topics/%d/entries/%d/replies", courseID, topicID, entryID), paramValues(p))
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"entry_replies": replies,
				"total":         len(replies),
			}, nil
		},
	}
}
