package execution

import (
	"context"
	"fmt"
	"time"

	"apptest/internal/domain"
)

// Sequential runs app tests one after another, in discovery order
type Sequential struct {
	runner   TestRunner
	progress Progress
}

// NewSequential creates a new Sequential executor
func NewSequential(runner TestRunner) *Sequential {
	return &Sequential{runner: runner}
}

// SetProgress sets the progress reporter for the executor
func (s *Sequential) SetProgress(progress Progress) {
	s.progress = progress
}

// Execute runs every test and returns one result per test, in order.
// Cancellation between two tests aborts the run.
func (s *Sequential) Execute(ctx context.Context, tests []domain.AppTest) ([]domain.TestResult, time.Duration, error) {
	startTime := time.Now()
	results := make([]domain.TestResult, 0, len(tests))

	var passed, failed int
	for _, test := range tests {
		if err := ctx.Err(); err != nil {
			return nil, time.Since(startTime), fmt.Errorf("run interrupted before %s: %w", test.Name, err)
		}

		result := s.runner.Run(ctx, test)
		results = append(results, result)

		if result.Passed() {
			passed++
		} else {
			failed++
		}
		if s.progress != nil {
			s.progress.Update(passed, failed)
		}
	}

	if s.progress != nil {
		s.progress.Finish()
	}
	return results, time.Since(startTime), nil
}
