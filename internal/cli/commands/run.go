package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"apptest/internal/config"
	"apptest/internal/discovery"
	"apptest/internal/domain"
	"apptest/internal/execution"
	"apptest/internal/storage"
	"apptest/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrTestsFailed is returned by run --exit-code when at least one app test failed
var ErrTestsFailed = errors.New("one or more app tests failed")

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	executor  *execution.Sequential
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	executor *execution.Sequential,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		executor:  executor,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	return rc.Run(cmd.Context(), cmd.OutOrStdout())
}

// Run discovers app tests, runs each one, prints the summary to out and
// writes the report. Driver failures are recorded; discovery and report
// errors abort the run.
func (rc *RunCommand) Run(ctx context.Context, out io.Writer) error {
	// Discover tests
	tests, err := rc.scanner.Scan(rc.config.GetAppsPath())
	if err != nil {
		return err
	}

	if !rc.config.Flags.NoProgress && len(tests) > 0 && ui.IsTerminal(os.Stderr) {
		rc.executor.SetProgress(ui.NewProgressBar(len(tests), os.Stderr))
	} else {
		rc.executor.SetProgress(nil)
	}

	// Execute tests
	results, duration, err := rc.executor.Execute(ctx, tests)
	if err != nil {
		return err
	}

	summary := domain.Summarize(results)
	logrus.WithFields(logrus.Fields{
		"total":    summary.Total,
		"passed":   summary.Passed,
		"failed":   summary.Failed,
		"duration": duration,
	}).Info("app tests finished")

	rc.formatter.PrintSummary(out, results)

	// Save results
	if err := rc.storage.Save(results); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	if rc.config.Flags.ExitCode && summary.Failed > 0 {
		return ErrTestsFailed
	}
	return nil
}
