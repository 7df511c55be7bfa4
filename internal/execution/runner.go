package execution

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"apptest/internal/config"
	"apptest/internal/domain"

	"github.com/sirupsen/logrus"
)

// Runner executes the driver script for a single app test
type Runner struct {
	config *config.Config
	stdout io.Writer
}

// NewRunner creates a new Runner that passes driver stdout through to os.Stdout
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg, stdout: os.Stdout}
}

// SetStdout sets where the driver's standard output goes
func (r *Runner) SetStdout(w io.Writer) {
	r.stdout = w
}

// Run executes the driver with the app name as its only argument, inside the
// tests directory. A nonzero exit or a failure to start the driver both
// produce a failed result.
func (r *Runner) Run(ctx context.Context, test domain.AppTest) domain.TestResult {
	driver := r.config.GetDriverPath()
	cmd := exec.CommandContext(ctx, driver, test.Name)
	cmd.Dir = r.config.TestsDir
	cmd.Stdout = r.stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log := logrus.WithFields(logrus.Fields{"app": test.Name, "driver": driver})
	log.Debug("running driver")

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := domain.TestResult{
		Name:     test.Name,
		Status:   domain.StatusPassed,
		Duration: duration,
	}
	if err == nil {
		log.WithField("duration", duration).Debug("driver passed")
		return result
	}

	result.Status = domain.StatusFailed

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.Diagnostic = decodeDiagnostic(stderr.Bytes())
		log.WithFields(logrus.Fields{"duration": duration, "exit_code": exitErr.ExitCode()}).Debug("driver failed")
		return result
	}

	// The driver never ran: missing, not executable, or the context was done.
	result.Diagnostic = err.Error()
	log.WithError(err).Warn("failed to start driver")
	return result
}

// decodeDiagnostic turns captured stderr into UTF-8 text
func decodeDiagnostic(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
