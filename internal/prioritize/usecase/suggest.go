package usecase

import (
	"context"

	"task-prioritizer/internal/prioritize"
	"task-prioritizer/internal/prioritize/scoring"
)

// Suggest returns the top-ranked tasks of the batch.
func (uc *implUseCase) Suggest(ctx context.Context, input prioritize.SuggestInput) (prioritize.SuggestOutput, error) {
	if err := uc.checkBatch(input.Tasks); err != nil {
		uc.l.Warnf(ctx, "uc.Suggest checkBatch: %v", err)
		return prioritize.SuggestOutput{}, err
	}

	weights, err := uc.resolveWeights(input.Strategy, input.Overrides)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Suggest resolveWeights: %v", err)
		return prioritize.SuggestOutput{}, err
	}

	topN := input.TopN
	if topN <= 0 {
		topN = uc.topN
	}

	scored, analysis := scoring.Compute(input.Tasks, weights, uc.today())
	uc.observe(ctx, OperationSuggest, len(input.Tasks), analysis.Cycles)

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return prioritize.SuggestOutput{Suggestions: scored}, nil
}
