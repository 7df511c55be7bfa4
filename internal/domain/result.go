package domain

import "time"

// Status is the outcome of one driver invocation
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// TestResult represents the result of running the driver for one app
type TestResult struct {
	Name       string        // Test identifier
	Status     Status        // Passed or failed
	Diagnostic string        // Captured stderr, empty when passed
	Duration   time.Duration // Time taken to execute
}

// Passed reports whether the driver exited zero
func (r TestResult) Passed() bool {
	return r.Status == StatusPassed
}

// RunSummary contains the aggregate counts of a run
type RunSummary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize counts passed and failed results
func Summarize(results []TestResult) RunSummary {
	s := RunSummary{Total: len(results)}
	for _, r := range results {
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// Failures returns the failed results in their original order
func Failures(results []TestResult) []TestResult {
	var failed []TestResult
	for _, r := range results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}
