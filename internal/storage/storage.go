package storage

import (
	"apptest/internal/config"
	"apptest/internal/domain"
)

// Storage persists and loads test run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.TestResult) error
	Load() ([]domain.TestResult, error)
}

// XMLStorage stores results as a JUnit report at the configured output path.
type XMLStorage struct {
	cfg *config.Config
}

// NewXMLStorage returns a Storage that reads/writes the config's report path.
func NewXMLStorage(cfg *config.Config) *XMLStorage {
	return &XMLStorage{cfg: cfg}
}
