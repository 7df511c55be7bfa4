package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"apptest/internal/config"
	"apptest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passed(name string) domain.TestResult {
	return domain.TestResult{Name: name, Status: domain.StatusPassed}
}

func failed(name, diag string) domain.TestResult {
	return domain.TestResult{Name: name, Status: domain.StatusFailed, Diagnostic: diag}
}

func encode(t *testing.T, results []domain.TestResult) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, BuildSuite(results)))
	return buf.String()
}

func TestBuildSuite(t *testing.T) {
	results := []domain.TestResult{
		passed("app-a"),
		failed("app-b", "port scan failed"),
		failed("app-c", ""),
	}

	suite := BuildSuite(results)

	assert.Equal(t, "network-scanner-cmd-tests", suite.Name)
	assert.Equal(t, 3, suite.Tests)
	assert.Equal(t, 2, suite.Failures)
	assert.Equal(t, 0, suite.Errors)
	require.Len(t, suite.TestCases, 3)

	failures := 0
	for i, tc := range suite.TestCases {
		assert.Equal(t, "test-app-discovery.sh", tc.ClassName)
		assert.Equal(t, results[i].Name, tc.Name)
		if tc.Failure != nil {
			failures++
			assert.Equal(t, "Test failed", tc.Failure.Message)
			assert.Equal(t, results[i].Diagnostic, tc.Failure.Text)
		}
	}
	assert.Equal(t, suite.Failures, failures)
	assert.Nil(t, suite.TestCases[0].Failure)
}

func TestEncode_Empty(t *testing.T) {
	out := encode(t, nil)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<testsuite name="network-scanner-cmd-tests" tests="0" failures="0" errors="0">`)
	assert.NotContains(t, out, "<testcase")
}

func TestEncode_Scenario(t *testing.T) {
	out := encode(t, []domain.TestResult{
		passed("app-a"),
		failed("app-b", "port scan failed"),
	})

	assert.Contains(t, out, `<testsuite name="network-scanner-cmd-tests" tests="2" failures="1" errors="0">`)
	assert.Contains(t, out, `<testcase classname="test-app-discovery.sh" name="app-a"></testcase>`)
	assert.Contains(t, out, `<testcase classname="test-app-discovery.sh" name="app-b">`)
	assert.Contains(t, out, `<failure message="Test failed">port scan failed</failure>`)
	assert.Equal(t, 2, strings.Count(out, "<testcase "))
	assert.Equal(t, 1, strings.Count(out, "<failure "))
}

func TestEncode_EscapesDiagnostic(t *testing.T) {
	diag := "expected <open> & \"closed\"\nsecond line"
	out := encode(t, []domain.TestResult{failed("app", diag)})

	assert.NotContains(t, out, "<open>")

	suite, err := Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, suite.TestCases, 1)
	require.NotNil(t, suite.TestCases[0].Failure)
	assert.Equal(t, diag, suite.TestCases[0].Failure.Text)
}

func TestEncode_Deterministic(t *testing.T) {
	results := []domain.TestResult{passed("a"), failed("b", "boom")}
	results[0].Duration = 3
	other := []domain.TestResult{passed("a"), failed("b", "boom")}
	other[0].Duration = 7

	assert.Equal(t, encode(t, results), encode(t, other))
}

func TestXMLStorage_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.OutputFile = filepath.Join(dir, "reports", "test-results.xml")
	st := NewXMLStorage(cfg)

	results := []domain.TestResult{passed("redis"), failed("kafka", "boom")}
	require.NoError(t, st.Save(results))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, results, loaded)

	t.Run("save overwrites previous report", func(t *testing.T) {
		require.NoError(t, st.Save([]domain.TestResult{passed("only")}))

		data, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "kafka")
		assert.Contains(t, string(data), `tests="1" failures="0"`)
	})

	t.Run("identical runs write identical bytes", func(t *testing.T) {
		require.NoError(t, st.Save(results))
		first, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)

		require.NoError(t, st.Save(results))
		second, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestXMLStorage_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("load missing report", func(t *testing.T) {
		cfg := config.New()
		cfg.OutputFile = filepath.Join(dir, "missing.xml")

		_, err := NewXMLStorage(cfg).Load()
		assert.Error(t, err)
	})

	t.Run("load malformed report", func(t *testing.T) {
		cfg := config.New()
		cfg.OutputFile = filepath.Join(dir, "broken.xml")
		require.NoError(t, os.WriteFile(cfg.OutputFile, []byte("<testsuite"), 0644))

		_, err := NewXMLStorage(cfg).Load()
		assert.Error(t, err)
	})

	t.Run("save into a file path", func(t *testing.T) {
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		cfg := config.New()
		cfg.OutputFile = filepath.Join(blocker, "test-results.xml")

		err := NewXMLStorage(cfg).Save(nil)
		assert.Error(t, err)
	})
}
