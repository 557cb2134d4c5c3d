// Package artifact persists analysis results as JSON files in an output
// directory, the contract consumed by downstream tooling.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsift/docsift/internal/outline"
	"github.com/docsift/docsift/internal/relevance"
)

// Store writes result artifacts under a base directory.
type Store struct {
	dir string
}

// NewStore creates the output directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the base output directory.
func (s *Store) Dir() string { return s.dir }

// SaveOutline writes one document's outline as <stem>.json and returns the
// path written.
func (s *Store) SaveOutline(filename string, result outline.DocumentResult) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if stem == "" {
		stem = "document"
	}
	path := filepath.Join(s.dir, stem+".json")
	if err := s.writeJSON(path, result); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAnalysis writes a persona analysis result, keyed by job ID so
// concurrent jobs never clobber each other.
func (s *Store) SaveAnalysis(jobID string, result relevance.AnalysisResult) (string, error) {
	path := filepath.Join(s.dir, "persona_analysis-"+jobID+".json")
	if err := s.writeJSON(path, result); err != nil {
		return "", err
	}
	return path, nil
}

// writeJSON writes indented JSON atomically via temp file and rename.
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, ".artifact-*.json")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename artifact: %w", err)
	}
	return nil
}
