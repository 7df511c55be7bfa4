package storage

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"apptest/internal/config"
	"apptest/internal/domain"

	"github.com/sirupsen/logrus"
)

// TestSuite is the root element of the JUnit report
type TestSuite struct {
	XMLName   xml.Name   `xml:"testsuite"`
	Name      string     `xml:"name,attr"`
	Tests     int        `xml:"tests,attr"`
	Failures  int        `xml:"failures,attr"`
	Errors    int        `xml:"errors,attr"`
	TestCases []TestCase `xml:"testcase"`
}

// TestCase is one app test in the report
type TestCase struct {
	ClassName string   `xml:"classname,attr"`
	Name      string   `xml:"name,attr"`
	Failure   *Failure `xml:"failure,omitempty"`
}

// Failure carries the diagnostic of a failed app test
type Failure struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

// BuildSuite converts results into a report document, preserving order
func BuildSuite(results []domain.TestResult) TestSuite {
	summary := domain.Summarize(results)
	suite := TestSuite{
		Name:      config.SuiteName,
		Tests:     summary.Total,
		Failures:  summary.Failed,
		Errors:    0,
		TestCases: make([]TestCase, 0, len(results)),
	}

	for _, r := range results {
		tc := TestCase{ClassName: config.CaseClassName, Name: r.Name}
		if !r.Passed() {
			tc.Failure = &Failure{Message: config.FailureMessage, Text: r.Diagnostic}
		}
		suite.TestCases = append(suite.TestCases, tc)
	}
	return suite
}

// Encode writes the report document with an XML header
func Encode(w io.Writer, suite TestSuite) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(suite); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a report document
func Decode(r io.Reader) (TestSuite, error) {
	var suite TestSuite
	if err := xml.NewDecoder(r).Decode(&suite); err != nil {
		return TestSuite{}, fmt.Errorf("parse report: %w", err)
	}
	return suite, nil
}

// Results converts a report document back into results.
// Durations are not part of the report and come back as zero.
func (s TestSuite) Results() []domain.TestResult {
	results := make([]domain.TestResult, 0, len(s.TestCases))
	for _, tc := range s.TestCases {
		r := domain.TestResult{Name: tc.Name, Status: domain.StatusPassed}
		if tc.Failure != nil {
			r.Status = domain.StatusFailed
			r.Diagnostic = tc.Failure.Text
		}
		results = append(results, r)
	}
	return results
}

// Save writes the report for results to the configured output path,
// replacing any previous report.
func (s *XMLStorage) Save(results []domain.TestResult) error {
	var buf bytes.Buffer
	if err := Encode(&buf, BuildSuite(results)); err != nil {
		return err
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logrus.WithField("path", path).Info("test report written")
	return nil
}

// Load reads the last report from the configured output path.
func (s *XMLStorage) Load() ([]domain.TestResult, error) {
	path := s.cfg.GetOutputPath()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	defer f.Close()

	suite, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite.Results(), nil
}
