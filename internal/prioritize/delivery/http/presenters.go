package http

import (
	"task-prioritizer/internal/prioritize"
	"task-prioritizer/pkg/datemath"
	"task-prioritizer/pkg/response"
)

// --- Request DTOs ---

// taskReq is one validated entry of a task list.
type taskReq struct {
	ID             string   `json:"id"`
	Title          *string  `json:"title"           binding:"required,notblank"`
	DueDate        string   `json:"due_date"        binding:"omitempty,isodate"`
	EstimatedHours *float64 `json:"estimated_hours"`
	Importance     *int     `json:"importance"      binding:"omitnil,min=1,max=10"`
	Dependencies   []string `json:"dependencies"`
}

func (r taskReq) toTask() prioritize.Task {
	t := prioritize.Task{
		ID:           r.ID,
		Dependencies: r.Dependencies,
	}
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.DueDate != "" {
		if d, err := datemath.ParseDate(r.DueDate); err == nil {
			t.DueDate = d.Format(datemath.ISODate)
		}
	}
	if r.EstimatedHours != nil {
		t.EstimatedHours = *r.EstimatedHours
	}
	if r.Importance != nil {
		t.Importance = *r.Importance
	}
	return t
}

// weightsReq carries the strategy and weight overrides shared by both endpoints.
type weightsReq struct {
	Strategy  prioritize.Strategy
	Overrides prioritize.WeightOverrides
}

type analyzeReq struct {
	weightsReq
	Tasks []prioritize.Task
}

func (r analyzeReq) toInput() prioritize.AnalyzeInput {
	return prioritize.AnalyzeInput{
		Tasks:     r.Tasks,
		Strategy:  r.Strategy,
		Overrides: r.Overrides,
	}
}

type suggestReq struct {
	weightsReq
	Tasks []prioritize.Task
}

func (r suggestReq) toInput() prioritize.SuggestInput {
	return prioritize.SuggestInput{
		Tasks:     r.Tasks,
		Strategy:  r.Strategy,
		Overrides: r.Overrides,
	}
}

// --- Response DTOs ---

type scoredTaskResp struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	DueDate        *response.Date `json:"due_date" swaggertype:"string" example:"2024-05-01"`
	EstimatedHours float64        `json:"estimated_hours"`
	Importance     int            `json:"importance"`
	Dependencies   []string       `json:"dependencies"`
	Score          float64        `json:"score"`
	Explanation    string         `json:"explanation"`
}

func newScoredTaskResp(t prioritize.ScoredTask) scoredTaskResp {
	resp := scoredTaskResp{
		ID:             t.ID,
		Title:          t.Title,
		EstimatedHours: t.EstimatedHours,
		Importance:     t.Importance,
		Dependencies:   t.Dependencies,
		Score:          t.Score,
		Explanation:    t.Explanation,
	}
	if d, err := datemath.ParseDate(t.DueDate); err == nil {
		due := response.Date(d)
		resp.DueDate = &due
	}
	if resp.Dependencies == nil {
		resp.Dependencies = []string{}
	}
	return resp
}

func newScoredTaskResps(tasks []prioritize.ScoredTask) []scoredTaskResp {
	resps := make([]scoredTaskResp, len(tasks))
	for i, t := range tasks {
		resps[i] = newScoredTaskResp(t)
	}
	return resps
}

type summaryResp struct {
	TotalTasks   int      `json:"total_tasks"`
	HighestScore *float64 `json:"highest_score"`
}

type analysisResp struct {
	Weights prioritize.Weights `json:"weights"`
	Cycles  [][]string         `json:"cycles"`
	Summary summaryResp        `json:"summary"`
}

type analyzeResp struct {
	Tasks    []scoredTaskResp `json:"tasks"`
	Analysis analysisResp     `json:"analysis"`
}

func (h *handler) newAnalyzeResp(out prioritize.AnalyzeOutput) analyzeResp {
	cycles := out.Analysis.Cycles
	if cycles == nil {
		cycles = [][]string{}
	}
	return analyzeResp{
		Tasks: newScoredTaskResps(out.Tasks),
		Analysis: analysisResp{
			Weights: out.Analysis.Weights,
			Cycles:  cycles,
			Summary: summaryResp{
				TotalTasks:   out.Analysis.Summary.TotalTasks,
				HighestScore: out.Analysis.Summary.HighestScore,
			},
		},
	}
}

type suggestResp struct {
	Suggestions []scoredTaskResp `json:"suggestions"`
}

func (h *handler) newSuggestResp(out prioritize.SuggestOutput) suggestResp {
	return suggestResp{Suggestions: newScoredTaskResps(out.Suggestions)}
}
