package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Durations is the persisted record of observed test durations, mapping a
// test identifier to seconds. It remembers insertion order so that reports
// and serialization stay stable across runs; a Go map alone would reorder
// keys and break the cross-process determinism the partitioner depends on.
type Durations struct {
	order  []string
	values map[string]float64
}

// NewDurations returns an empty duration record.
func NewDurations() *Durations {
	return &Durations{values: make(map[string]float64)}
}

// Get returns the recorded duration for id, and whether one exists.
func (d *Durations) Get(id string) (float64, bool) {
	v, ok := d.values[id]
	return v, ok
}

// Set records a duration for id. New ids are appended to the insertion
// order; existing ids keep their original position.
func (d *Durations) Set(id string, seconds float64) {
	if _, exists := d.values[id]; !exists {
		d.order = append(d.order, id)
	}
	d.values[id] = seconds
}

// Len returns the number of recorded tests.
func (d *Durations) Len() int {
	return len(d.values)
}

// IDs returns the recorded test identifiers in insertion order.
func (d *Durations) IDs() []string {
	ids := make([]string, len(d.order))
	copy(ids, d.order)
	return ids
}

// Merge overlays other onto d, key by key. Values from other win on
// conflicts; ids new to d are appended in other's insertion order.
func (d *Durations) Merge(other *Durations) {
	for _, id := range other.order {
		d.Set(id, other.values[id])
	}
}

// MarshalJSON encodes the record as a flat JSON object in insertion order,
// compatible with pytest-split's .test_durations format.
func (d *Durations) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(d.values[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object, preserving the key order of the
// document as the insertion order.
func (d *Durations) UnmarshalJSON(data []byte) error {
	d.order = nil
	d.values = make(map[string]float64)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("durations: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("durations: expected string key, got %v", keyTok)
		}
		var seconds float64
		if err := dec.Decode(&seconds); err != nil {
			return fmt.Errorf("durations: value for %q: %w", id, err)
		}
		if seconds < 0 {
			return fmt.Errorf("durations: negative duration %v for %q", seconds, id)
		}
		d.Set(id, seconds)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
