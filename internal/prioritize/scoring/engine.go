// Package scoring ranks a batch of tasks by a weighted, min-max normalized
// combination of urgency, importance, effort and dependency impact.
//
// Every function here is pure: results depend only on the arguments, so
// the package is safe for concurrent use.
package scoring

import (
	"math"
	"sort"
	"time"

	"task-prioritizer/internal/prioritize"
	"task-prioritizer/pkg/depgraph"
)

// Compute scores every task and returns them best-first, with the analysis
// of the batch. nil weights select prioritize.DefaultWeights. today is the
// reference day for urgency; only its calendar date is used.
func Compute(tasks []prioritize.Task, weights *prioritize.Weights, today time.Time) ([]prioritize.ScoredTask, prioritize.Analysis) {
	w := prioritize.DefaultWeights()
	if weights != nil {
		w = *weights
	}
	w = w.Normalize()

	entries := buildEntries(tasks)

	graph := depgraph.New()
	for _, e := range entries {
		graph.AddNode(e.id, e.dependencies)
	}
	cycles := depgraph.DetectCycles(graph)
	blocking := graph.BlockingCounts()

	scored := make([]prioritize.ScoredTask, 0, len(entries))
	if len(entries) > 0 {
		raw := buildVectors(entries, blocking, today)
		urgency := minMax(raw.urgency)
		importance := minMax(raw.importance)
		effort := minMax(raw.effort)
		deps := minMax(raw.dependencies)

		for i, e := range entries {
			f := factors{
				urgency:      urgency[i],
				importance:   importance[i],
				effort:       1.0 - effort[i],
				dependencies: deps[i],
			}
			scored = append(scored, prioritize.ScoredTask{
				ID:             e.id,
				Title:          e.title,
				DueDate:        e.dueDate,
				EstimatedHours: e.estimatedHours,
				Importance:     e.importance,
				Dependencies:   e.dependencies,
				Score:          f.score(w),
				Explanation:    f.explain(int(raw.dependencies[i]), len(cycles) > 0),
			})
		}
	}

	// Ties keep input order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	summary := prioritize.Summary{TotalTasks: len(scored)}
	if len(scored) > 0 {
		top := scored[0].Score
		summary.HighestScore = &top
	}

	return scored, prioritize.Analysis{
		Weights: w,
		Cycles:  cycles,
		Summary: summary,
	}
}

// SuggestTop returns the topN best tasks of the batch. topN <= 0 selects DefaultTopN.
func SuggestTop(tasks []prioritize.Task, topN int, weights *prioritize.Weights, today time.Time) []prioritize.ScoredTask {
	if topN <= 0 {
		topN = DefaultTopN
	}
	scored, _ := Compute(tasks, weights, today)
	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// factors holds one task's normalized sub-scores, effort already inverted.
type factors struct {
	urgency      float64
	importance   float64
	effort       float64
	dependencies float64
}

func (f factors) score(w prioritize.Weights) float64 {
	s := w.Urgency*f.urgency +
		w.Importance*f.importance +
		w.Effort*f.effort +
		w.Dependencies*f.dependencies
	return clamp(round2(s*100), 0, 100)
}

// minMax maps values onto [0,1]. When every value is equal each maps to 0.5.
func minMax(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	for i, v := range values {
		if hi == lo {
			out[i] = degenerateNorm
			continue
		}
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
