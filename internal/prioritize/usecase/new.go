package usecase

import (
	"time"

	"task-prioritizer/pkg/datemath"
	pkgLog "task-prioritizer/pkg/log"
)

// Recorder receives one observation per scored batch.
type Recorder interface {
	ObserveBatch(operation string, size, cycles int)
}

// Config tunes the use case. Zero values select the defaults.
type Config struct {
	SuggestTopN int
	MaxTasks    int
}

type implUseCase struct {
	l        pkgLog.Logger
	dateMath *datemath.Parser
	recorder Recorder
	now      func() time.Time
	topN     int
	maxTasks int
}

// New creates a new prioritize UseCase instance. recorder may be nil.
func New(l pkgLog.Logger, dateMath *datemath.Parser, recorder Recorder, cfg Config) *implUseCase {
	uc := &implUseCase{
		l:        l,
		dateMath: dateMath,
		recorder: recorder,
		now:      time.Now,
		topN:     cfg.SuggestTopN,
		maxTasks: cfg.MaxTasks,
	}
	if uc.topN <= 0 {
		uc.topN = DefaultSuggestTopN
	}
	if uc.maxTasks <= 0 {
		uc.maxTasks = DefaultMaxTasks
	}
	return uc
}

// SetClock replaces the time source used to resolve "today".
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
