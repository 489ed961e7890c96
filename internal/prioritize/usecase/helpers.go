package usecase

import (
	"context"
	"fmt"
	"time"

	"task-prioritizer/internal/prioritize"
)

// resolveWeights picks the strategy preset and applies overrides on top.
// It returns nil when the caller asked for nothing, so the engine defaults apply.
func (uc *implUseCase) resolveWeights(strategy prioritize.Strategy, overrides prioritize.WeightOverrides) (*prioritize.Weights, error) {
	if strategy == "" && overrides.IsEmpty() {
		return nil, nil
	}

	base, err := strategy.Weights()
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, strategy)
	}

	w := base.WithOverrides(overrides)
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

func (uc *implUseCase) checkBatch(tasks []prioritize.Task) error {
	if len(tasks) > uc.maxTasks {
		return fmt.Errorf("%w: %d > %d", prioritize.ErrTooManyTasks, len(tasks), uc.maxTasks)
	}
	return nil
}

// today resolves the current calendar day in the configured timezone.
func (uc *implUseCase) today() time.Time {
	now := uc.now()
	if uc.dateMath == nil {
		return now
	}
	return uc.dateMath.Today(now)
}

func (uc *implUseCase) observe(ctx context.Context, operation string, size int, cycles [][]string) {
	uc.l.Debugf(ctx, "uc.%s: scored %d task(s)", operation, size)
	if len(cycles) > 0 {
		uc.l.Warnf(ctx, "uc.%s: %d dependency cycle(s) detected: %v", operation, len(cycles), cycles)
	}
	if uc.recorder != nil {
		uc.recorder.ObserveBatch(operation, size, len(cycles))
	}
}
