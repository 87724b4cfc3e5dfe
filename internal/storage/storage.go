package storage

import (
	"errors"
	"fmt"

	"tsplit/internal/config"
	"tsplit/internal/domain"
)

// ErrCorrupt marks a durations store that exists but cannot be parsed.
// Callers downgrade it to a warning and proceed with an empty record,
// since duration data is advisory.
var ErrCorrupt = errors.New("durations store is corrupt")

// Store loads and persists recorded test durations.
type Store interface {
	// Load reads the full duration record. A missing store is not an
	// error and yields an empty record.
	Load() (*domain.Durations, error)
	// Save replaces the store contents wholesale.
	Save(d *domain.Durations) error
	// Record merges observed durations into the existing store contents
	// (read old, overlay new, write merged).
	Record(observed *domain.Durations) error
}

// NewStore returns the store for the configured backend.
func NewStore(cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case "json":
		return NewJSONStore(cfg), nil
	case "mysql":
		return NewSQLStore(cfg), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (supported: json, mysql)", cfg.StoreBackend)
	}
}
