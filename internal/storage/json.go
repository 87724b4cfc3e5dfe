package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tsplit/internal/config"
	"tsplit/internal/domain"
)

const tempFilePattern = ".durations-*.tmp"

// JSONStore keeps durations in a flat JSON file under the configured path.
type JSONStore struct {
	cfg *config.Config
}

// NewJSONStore returns a Store that reads/writes the config's durations path.
func NewJSONStore(cfg *config.Config) *JSONStore {
	return &JSONStore{cfg: cfg}
}

// Load reads the durations file. A missing file yields an empty record with
// no error; an unparsable file yields an empty record and ErrCorrupt.
func (s *JSONStore) Load() (*domain.Durations, error) {
	path := s.cfg.GetDurationsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewDurations(), nil
		}
		return domain.NewDurations(), fmt.Errorf("read durations file: %w", err)
	}

	d := domain.NewDurations()
	if err := json.Unmarshal(data, d); err != nil {
		return domain.NewDurations(), fmt.Errorf("%s: %w: %v", path, ErrCorrupt, err)
	}
	return d, nil
}

// Save writes the full record atomically: the contents go to a temp file in
// the target directory first, then replace the store in a single rename, so
// a crash or concurrent writer never leaves a partially written file.
func (s *JSONStore) Save(d *domain.Durations) error {
	path := s.cfg.GetDurationsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create durations dir: %w", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal durations: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp durations file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp durations file: %w", err)
	}
	if err := tempFile.Chmod(0644); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp durations file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp durations file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace durations file: %w", err)
	}
	cleanup = false

	return nil
}

// Record merges observed durations into the current store contents and
// saves the result. A corrupt existing store is replaced rather than kept.
func (s *JSONStore) Record(observed *domain.Durations) error {
	existing, err := s.Load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	existing.Merge(observed)
	return s.Save(existing)
}
