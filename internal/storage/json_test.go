package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tsplit/internal/config"
	"tsplit/internal/domain"
)

func newTestStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".test_durations")
	cfg := config.New()
	cfg.Flags.DurationsPath = path
	return NewJSONStore(cfg), path
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	d, err := store.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("expected empty durations, got %d entries", d.Len())
	}
}

func TestJSONStore_LoadCorruptFile(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := store.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("expected empty durations alongside the error, got %d entries", d.Len())
	}
}

func TestJSONStore_SaveLoadRoundtrip(t *testing.T) {
	store, _ := newTestStore(t)

	d := domain.NewDurations()
	d.Set("tests/test_api.py::test_create", 1.5)
	d.Set("tests/test_api.py::test_delete", 0.25)
	d.Set("tests/test_models.py::test_str", 3.0)

	if err := store.Save(d); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !reflect.DeepEqual(loaded.IDs(), d.IDs()) {
		t.Errorf("expected insertion order %v, got %v", d.IDs(), loaded.IDs())
	}
	for _, id := range d.IDs() {
		want, _ := d.Get(id)
		got, ok := loaded.Get(id)
		if !ok || got != want {
			t.Errorf("%s: expected %v, got %v (present: %v)", id, want, got, ok)
		}
	}
}

func TestJSONStore_SaveLeavesNoTempFiles(t *testing.T) {
	store, path := newTestStore(t)

	d := domain.NewDurations()
	d.Set("test_a", 1.0)
	if err := store.Save(d); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("expected only the durations file, got %v", names)
	}
}

func TestJSONStore_RecordMergesExisting(t *testing.T) {
	store, _ := newTestStore(t)

	existing := domain.NewDurations()
	existing.Set("test_a", 1.0)
	existing.Set("test_b", 2.0)
	if err := store.Save(existing); err != nil {
		t.Fatal(err)
	}

	observed := domain.NewDurations()
	observed.Set("test_b", 3.0)
	observed.Set("test_c", 4.0)
	if err := store.Record(observed); err != nil {
		t.Fatalf("unexpected record error: %v", err)
	}

	merged, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"test_a", "test_b", "test_c"}
	if !reflect.DeepEqual(merged.IDs(), wantOrder) {
		t.Errorf("expected order %v, got %v", wantOrder, merged.IDs())
	}
	if v, _ := merged.Get("test_a"); v != 1.0 {
		t.Errorf("expected test_a to keep 1.0, got %v", v)
	}
	if v, _ := merged.Get("test_b"); v != 3.0 {
		t.Errorf("expected test_b updated to 3.0, got %v", v)
	}
	if v, _ := merged.Get("test_c"); v != 4.0 {
		t.Errorf("expected test_c recorded as 4.0, got %v", v)
	}
}

func TestJSONStore_RecordOverCorruptStartsFresh(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("no longer json"), 0644); err != nil {
		t.Fatal(err)
	}

	observed := domain.NewDurations()
	observed.Set("test_a", 1.0)
	if err := store.Record(observed); err != nil {
		t.Fatalf("unexpected record error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("store should be readable after record, got %v", err)
	}
	if loaded.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", loaded.Len())
	}
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{"json backend", "json", false},
		{"mysql backend", "mysql", false},
		{"unknown backend", "redis", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.StoreBackend = tt.backend
			store, err := NewStore(cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if store == nil {
				t.Error("expected a store")
			}
		})
	}
}
