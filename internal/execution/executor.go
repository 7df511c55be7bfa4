package execution

import (
	"context"
	"time"

	"apptest/internal/domain"
)

// Executor executes app tests and returns results
type Executor interface {
	Execute(ctx context.Context, tests []domain.AppTest) ([]domain.TestResult, time.Duration, error)
}

// TestRunner runs the driver for a single app test
type TestRunner interface {
	Run(ctx context.Context, test domain.AppTest) domain.TestResult
}

// Progress receives updates while tests execute
type Progress interface {
	Update(passed, failed int)
	Finish()
}
