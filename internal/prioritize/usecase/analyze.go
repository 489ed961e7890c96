package usecase

import (
	"context"

	"task-prioritizer/internal/prioritize"
	"task-prioritizer/internal/prioritize/scoring"
)

// Analyze scores the whole batch and returns it best-first with the batch analysis.
func (uc *implUseCase) Analyze(ctx context.Context, input prioritize.AnalyzeInput) (prioritize.AnalyzeOutput, error) {
	if err := uc.checkBatch(input.Tasks); err != nil {
		uc.l.Warnf(ctx, "uc.Analyze checkBatch: %v", err)
		return prioritize.AnalyzeOutput{}, err
	}

	weights, err := uc.resolveWeights(input.Strategy, input.Overrides)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Analyze resolveWeights: %v", err)
		return prioritize.AnalyzeOutput{}, err
	}

	scored, analysis := scoring.Compute(input.Tasks, weights, uc.today())
	uc.observe(ctx, OperationAnalyze, len(input.Tasks), analysis.Cycles)

	return prioritize.AnalyzeOutput{
		Tasks:    scored,
		Analysis: analysis,
	}, nil
}
