package ui

import (
	"bytes"
	"os"
	"testing"

	"apptest/internal/config"
	"apptest/internal/domain"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatter_PrintSummary(t *testing.T) {
	f := NewFormatter(config.New())

	tests := []struct {
		name     string
		results  []domain.TestResult
		expected string
	}{
		{
			name:     "no tests",
			results:  nil,
			expected: "All tests passed\n",
		},
		{
			name: "all passed",
			results: []domain.TestResult{
				{Name: "app-a", Status: domain.StatusPassed},
				{Name: "app-b", Status: domain.StatusPassed},
			},
			expected: "All tests passed\n",
		},
		{
			name: "one failure",
			results: []domain.TestResult{
				{Name: "app-a", Status: domain.StatusPassed},
				{Name: "app-b", Status: domain.StatusFailed, Diagnostic: "port scan failed"},
			},
			expected: "Some tests failed\nTest app-b failed with error: port scan failed\n",
		},
		{
			name: "failures keep order",
			results: []domain.TestResult{
				{Name: "z", Status: domain.StatusFailed, Diagnostic: "first"},
				{Name: "a", Status: domain.StatusFailed, Diagnostic: "second"},
			},
			expected: "Some tests failed\nTest z failed with error: first\nTest a failed with error: second\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f.PrintSummary(&buf, tt.results)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestFormatter_PrintAppList(t *testing.T) {
	cfg := config.New()
	f := NewFormatter(cfg)

	t.Run("tree of apps", func(t *testing.T) {
		var buf bytes.Buffer
		f.PrintAppList(&buf, []domain.AppTest{{Name: "kafka"}, {Name: "redis"}})

		expected := "Found 2 app test(s) in " + cfg.GetAppsPath() + ":\n├── kafka\n└── redis\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("no apps", func(t *testing.T) {
		var buf bytes.Buffer
		f.PrintAppList(&buf, nil)
		assert.Equal(t, "No app tests found\n", buf.String())
	})
}

func TestFormatter_PrintFailures(t *testing.T) {
	f := NewFormatter(config.New())

	t.Run("lists failures with indented diagnostics", func(t *testing.T) {
		var buf bytes.Buffer
		f.PrintFailures(&buf, []domain.TestResult{
			{Name: "redis", Status: domain.StatusPassed},
			{Name: "kafka", Status: domain.StatusFailed, Diagnostic: "line one\nline two\n"},
			{Name: "etcd", Status: domain.StatusFailed},
		})

		expected := "✗ 2 of 3 app test(s) failed\n" +
			"\n1. kafka\n   line one\n   line two\n" +
			"\n2. etcd\n   (no diagnostic output)\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("no failures", func(t *testing.T) {
		var buf bytes.Buffer
		f.PrintFailures(&buf, []domain.TestResult{{Name: "redis", Status: domain.StatusPassed}})
		assert.Equal(t, "✓ No test failures found! (1 app test(s))\n", buf.String())
	})
}
