package timing

import (
	"encoding/json"
	"fmt"
	"os"
)

// Table maps root-relative spec paths to measured durations in seconds.
type Table map[string]float64

// Lookup returns the usable timing for a path. Only positive durations are
// usable; zero or negative entries fall through to static estimation.
func (t Table) Lookup(path string) (float64, bool) {
	duration, ok := t[path]
	if !ok || duration <= 0 {
		return 0, false
	}
	return duration, true
}

// Loader reads timing tables from JSON documents.
type Loader struct {
	key string
}

// NewLoader returns a Loader extracting the table from the given top-level key.
func NewLoader(key string) *Loader {
	return &Loader{key: key}
}

// Load parses the timing file and extracts the table. A missing file or
// malformed document returns an empty table alongside the error; callers
// report the error as a diagnostic and continue, since static estimation
// covers every file without timing data.
func (l *Loader) Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read timing file: %w", err)
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return Table{}, fmt.Errorf("parse timing file: %w", err)
	}

	raw, ok := document[l.key]
	if !ok {
		return Table{}, nil
	}

	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		return Table{}, fmt.Errorf("parse %q object: %w", l.key, err)
	}
	return table, nil
}
