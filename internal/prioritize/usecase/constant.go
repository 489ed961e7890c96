package usecase

const (
	DefaultSuggestTopN = 3
	DefaultMaxTasks    = 1000

	OperationAnalyze = "analyze"
	OperationSuggest = "suggest"
)
