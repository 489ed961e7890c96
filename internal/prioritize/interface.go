package prioritize

import "context"

// UseCase ranks task batches.
type UseCase interface {
	// Analyze scores every task and returns them best-first with the batch analysis.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// Suggest returns only the top-ranked tasks of the batch.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
}
