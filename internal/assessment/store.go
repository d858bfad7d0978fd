package assessment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const modelFileName = "wellbeing_model.json"

// ModelState is the persisted fitted-model artifact: linear weights, the
// frozen column schema and the per-column normalization statistics captured
// at fit time. Predictions must always be projected onto this schema.
type ModelState struct {
	Columns     []string  `json:"columns"`
	Weights     []float64 `json:"weights"`
	Intercept   float64   `json:"intercept"`
	Means       []float64 `json:"means"`
	Scales      []float64 `json:"scales"`
	SampleCount int       `json:"sample_count"`
	TrainedAt   time.Time `json:"trained_at"`
}

// valid checks internal consistency of a loaded state.
func (s *ModelState) valid() bool {
	n := len(s.Columns)
	return n > 0 && len(s.Weights) == n && len(s.Means) == n && len(s.Scales) == n
}

// ModelStore persists the fitted model state on disk.
type ModelStore struct {
	dataDir string
}

// NewModelStore creates a model store rooted at dataDir.
func NewModelStore(dataDir string) *ModelStore {
	return &ModelStore{dataDir: dataDir}
}

// Load reads the persisted model state. A missing artifact returns
// (nil, nil); a corrupt or inconsistent one returns an error.
func (m *ModelStore) Load() (*ModelState, error) {
	path := filepath.Join(m.dataDir, modelFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read model state: %w", err)
	}

	var state ModelState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode model state: %w", err)
	}
	if !state.valid() {
		return nil, fmt.Errorf("model state at %s is inconsistent", path)
	}

	return &state, nil
}

// Save atomically replaces the persisted model state. The state is written
// to a temp file first and renamed into place so a concurrent Load never
// observes a partially written artifact.
func (m *ModelStore) Save(state *ModelState) error {
	if err := os.MkdirAll(m.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model state: %w", err)
	}

	tmp, err := os.CreateTemp(m.dataDir, modelFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp model file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write model state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp model file: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(m.dataDir, modelFileName)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace model state: %w", err)
	}

	return nil
}
