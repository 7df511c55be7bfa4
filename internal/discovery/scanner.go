package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"apptest/internal/domain"

	"github.com/sirupsen/logrus"
)

// Scanner lists the app tests under an apps directory
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns one AppTest per immediate subdirectory of appsDir.
// Regular files are skipped; symlinks count when they resolve to a directory.
func (s *Scanner) Scan(appsDir string) ([]domain.AppTest, error) {
	appsDir = filepath.Clean(appsDir)
	info, err := os.Stat(appsDir)
	if err != nil {
		return nil, fmt.Errorf("apps directory does not exist: %s: %w", appsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("apps path is not a directory: %s", appsDir)
	}

	entries, err := os.ReadDir(appsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps directory %s: %w", appsDir, err)
	}

	tests := make([]domain.AppTest, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(appsDir, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil {
				isDir = target.IsDir()
			}
		}
		if !isDir {
			continue
		}

		tests = append(tests, domain.AppTest{Name: entry.Name(), Path: path})
	}

	logrus.WithField("apps_dir", appsDir).Debugf("discovered %d app test(s)", len(tests))
	return tests, nil
}

// Names returns the identifiers of the given app tests
func Names(tests []domain.AppTest) []string {
	names := make([]string, len(tests))
	for i, t := range tests {
		names[i] = t.Name
	}
	return names
}
