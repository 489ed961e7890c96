package prioritize

// --- Domain Model ---

// Task is a single user-submitted task, after best-effort coercion.
// Zero values mean "not supplied"; the scoring engine applies defaults.
type Task struct {
	ID             string
	Title          string
	DueDate        string // ISO-8601 date as supplied, "" when absent
	EstimatedHours float64
	Importance     int
	Dependencies   []string
}

// ScoredTask is a Task after scoring, with every default resolved.
type ScoredTask struct {
	ID             string
	Title          string
	DueDate        string
	EstimatedHours float64
	Importance     int
	Dependencies   []string
	Score          float64 // in [0,100], rounded to 2 decimals
	Explanation    string
}

// Summary is the batch-level overview of a scoring run.
type Summary struct {
	TotalTasks   int
	HighestScore *float64 // nil for an empty batch
}

// Analysis is the metadata returned next to the ranked tasks.
type Analysis struct {
	Weights Weights
	Cycles  [][]string
	Summary Summary
}

// --- UseCase Inputs ---

// WeightOverrides replaces individual factor weights. Nil fields keep the
// value of the selected strategy.
type WeightOverrides struct {
	Urgency      *float64
	Importance   *float64
	Effort       *float64
	Dependencies *float64
}

// IsEmpty reports whether no factor is overridden.
func (o WeightOverrides) IsEmpty() bool {
	return o.Urgency == nil && o.Importance == nil && o.Effort == nil && o.Dependencies == nil
}

type AnalyzeInput struct {
	Tasks     []Task
	Strategy  Strategy
	Overrides WeightOverrides
}

type SuggestInput struct {
	Tasks     []Task
	TopN      int // <= 0 means the configured default
	Strategy  Strategy
	Overrides WeightOverrides
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	Tasks    []ScoredTask
	Analysis Analysis
}

type SuggestOutput struct {
	Suggestions []ScoredTask
}
