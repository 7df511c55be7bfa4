package ui

import (
	"fmt"
	"io"
	"strings"

	"apptest/internal/config"
	"apptest/internal/domain"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
}

// PrintSummary prints the run summary: a single success line, or a failure
// header followed by one line per failed app.
func (f *Formatter) PrintSummary(w io.Writer, results []domain.TestResult) {
	failed := domain.Failures(results)
	if len(failed) == 0 {
		f.green.Fprintln(w, "All tests passed")
		return
	}

	f.red.Fprintln(w, "Some tests failed")
	for _, r := range failed {
		fmt.Fprintf(w, "Test %s failed with error: %s\n", r.Name, r.Diagnostic)
	}
}

// PrintAppList prints the discovered app tests as a tree under the apps directory
func (f *Formatter) PrintAppList(w io.Writer, tests []domain.AppTest) {
	if len(tests) == 0 {
		f.yellow.Fprintln(w, "No app tests found")
		return
	}

	f.green.Fprintf(w, "Found %d app test(s) in %s:\n", len(tests), f.config.GetAppsPath())
	for i, test := range tests {
		if i == len(tests)-1 {
			f.cyan.Fprintf(w, "└── %s\n", test.Name)
		} else {
			f.cyan.Fprintf(w, "├── %s\n", test.Name)
		}
	}
}

// PrintFailures prints the failed apps of a stored report with their diagnostics
func (f *Formatter) PrintFailures(w io.Writer, results []domain.TestResult) {
	failed := domain.Failures(results)
	if len(failed) == 0 {
		f.green.Fprintf(w, "✓ No test failures found! (%d app test(s))\n", len(results))
		return
	}

	f.red.Fprintf(w, "✗ %d of %d app test(s) failed\n", len(failed), len(results))
	for i, r := range failed {
		fmt.Fprintln(w)
		f.yellow.Fprintf(w, "%d. %s\n", i+1, r.Name)
		diag := strings.TrimRight(r.Diagnostic, "\n")
		if diag == "" {
			fmt.Fprintln(w, "   (no diagnostic output)")
			continue
		}
		for _, line := range strings.Split(diag, "\n") {
			fmt.Fprintf(w, "   %s\n", line)
		}
	}
}
