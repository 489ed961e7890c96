package scoring

import (
	"fmt"
	"strings"
	"time"

	"task-prioritizer/internal/prioritize"
	"task-prioritizer/pkg/datemath"
)

// entry is a task with every default applied and a batch-unique id.
type entry struct {
	id             string
	title          string
	dueDate        string
	estimatedHours float64
	importance     int
	dependencies   []string
}

// buildEntries applies field defaults in input order and makes ids unique.
// A taken id falls back to T<index>, then to T<index>-2, T<index>-3, ...
func buildEntries(tasks []prioritize.Task) []entry {
	entries := make([]entry, 0, len(tasks))
	taken := make(map[string]bool, len(tasks))

	for idx, t := range tasks {
		id := t.ID
		if id == "" || taken[id] {
			id = fmt.Sprintf("T%d", idx)
		}
		for n := 2; taken[id]; n++ {
			id = fmt.Sprintf("T%d-%d", idx, n)
		}
		taken[id] = true

		title := strings.TrimSpace(t.Title)
		if title == "" {
			title = fmt.Sprintf("Task %d", idx+1)
		}

		hours := t.EstimatedHours
		if hours == 0 {
			hours = DefaultEstimatedHours
		}

		importance := t.Importance
		if importance == 0 {
			importance = DefaultImportance
		}

		deps := make([]string, len(t.Dependencies))
		copy(deps, t.Dependencies)

		entries = append(entries, entry{
			id:             id,
			title:          title,
			dueDate:        t.DueDate,
			estimatedHours: hours,
			importance:     importance,
			dependencies:   deps,
		})
	}
	return entries
}

// vectors holds one raw value per task for each factor, in entry order.
type vectors struct {
	urgency      []float64
	importance   []float64
	effort       []float64
	dependencies []float64
}

func buildVectors(entries []entry, blocking map[string]int, today time.Time) vectors {
	v := vectors{
		urgency:      make([]float64, len(entries)),
		importance:   make([]float64, len(entries)),
		effort:       make([]float64, len(entries)),
		dependencies: make([]float64, len(entries)),
	}
	for i, e := range entries {
		v.urgency[i] = rawUrgency(e.dueDate, today)
		v.importance[i] = float64(e.importance)
		v.effort[i] = max(MinEstimatedHours, e.estimatedHours)
		v.dependencies[i] = float64(blocking[e.id])
	}
	return v
}

// rawUrgency is the number of days the task is overdue: positive when past
// due, negative when due in the future, 0 without a usable due date.
func rawUrgency(dueDate string, today time.Time) float64 {
	if dueDate == "" {
		return 0
	}
	due, err := datemath.ParseDate(dueDate)
	if err != nil {
		return 0
	}
	return -float64(datemath.DaysBetween(today, due))
}
