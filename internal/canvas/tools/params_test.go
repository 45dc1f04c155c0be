package tools

import (
	"testing"
)

func TestParamValuesRepeatsListKeys(t *testing.T) {
	p := courseUserParams{
		EnrollmentType:  []string{"student", "teacher"},
		EnrollmentState: []string{"active"},
		Include:         []string{"enrollments", "email"},
		PerPage:         50,
	}

	vals := paramValues(p)

	types := vals["enrollment_type[]"]
	if len(types) != 2 || types[0] != "student" || types[1] != "teacher" {
		t.Errorf("enrollment_type[] = %v", types)
	}
	includes := vals["include[]"]
	if len(includes) != 2 || includes[0] != "enrollments" || includes[1] != "email" {
		t.Errorf("include[] = %v", includes)
	}
	if vals.Get("per_page") != "50" {
		t.Errorf("per_page = %q", vals.Get("per_page"))
	}
}

func TestParamValuesOmitsEmpty(t *testing.T) {
	p := assignmentListParams{
		Include: assignmentIncludeAll,
		OrderBy: "due_at",
	}

	vals := paramValues(p)

	if _, present := vals["bucket"]; present {
		t.Error("empty bucket should be omitted")
	}
	if _, present := vals["search_term"]; present {
		t.Error("empty search_term should be omitted")
	}
	if _, present := vals["override_assignment_dates"]; present {
		t.Error("false override_assignment_dates should be omitted")
	}
	if vals.Get("order_by") != "due_at" {
		t.Errorf("order_by = %q", vals.Get("order_by"))
	}
}

func TestCourseIncludeAllCoversGradeData(t *testing.T) {
	// The course listing answers grade questions, so these includes are
	// load-bearing for that path.
	required := []string{"total_scores", "current_grading_period_scores", "term", "syllabus_body"}
	for _, want := range required {
		found := false
		for _, inc := range courseIncludeAll {
			if inc == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("courseIncludeAll missing %q", want)
		}
	}
}
