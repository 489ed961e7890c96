package scoring

const (
	DefaultEstimatedHours = 1.0
	MinEstimatedHours     = 0.1
	DefaultImportance     = 5
	DefaultTopN           = 3

	// degenerateNorm is the normalized value when every task ties on a factor.
	degenerateNorm = 0.5

	CycleWarning = "Warning: dependency cycle(s) detected in task list."

	explanationSep = " | "
)
