package prioritize

import (
	"time"

	"github.com/spf13/cast"
)

// Keys of a semi-structured task record.
const (
	KeyID             = "id"
	KeyTitle          = "title"
	KeyDueDate        = "due_date"
	KeyEstimatedHours = "estimated_hours"
	KeyImportance     = "importance"
	KeyDependencies   = "dependencies"
)

// TaskFromMap converts a loosely typed record (usually decoded JSON) into a
// Task. Values that cannot be cast are dropped so the scoring defaults apply;
// it never fails.
func TaskFromMap(m map[string]any) Task {
	t := Task{
		ID:    castString(m[KeyID]),
		Title: castString(m[KeyTitle]),
	}

	switch v := m[KeyDueDate].(type) {
	case time.Time:
		if !v.IsZero() {
			t.DueDate = v.Format(time.DateOnly)
		}
	case *time.Time:
		if v != nil && !v.IsZero() {
			t.DueDate = v.Format(time.DateOnly)
		}
	case string:
		t.DueDate = v
	}

	if hours, err := cast.ToFloat64E(m[KeyEstimatedHours]); err == nil {
		t.EstimatedHours = hours
	}
	if importance, err := cast.ToIntE(m[KeyImportance]); err == nil {
		t.Importance = importance
	}

	switch deps := m[KeyDependencies].(type) {
	case []string:
		t.Dependencies = append([]string(nil), deps...)
	case []any:
		t.Dependencies = make([]string, 0, len(deps))
		for _, d := range deps {
			t.Dependencies = append(t.Dependencies, cast.ToString(d))
		}
	}

	return t
}

// TasksFromMaps applies TaskFromMap to every record.
func TasksFromMaps(records []map[string]any) []Task {
	tasks := make([]Task, len(records))
	for i, r := range records {
		tasks[i] = TaskFromMap(r)
	}
	return tasks
}

// castString stringifies v, mapping nil, false, numeric zero and failed
// casts to "". Strings are kept as given, so "0" survives.
func castString(v any) string {
	if _, ok := v.(string); !ok {
		if f, err := cast.ToFloat64E(v); err == nil && f == 0 {
			return ""
		}
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}
