package timing

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTimingFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write timing file: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader("timings")

	t.Run("loads valid timing data", func(t *testing.T) {
		path := writeTimingFile(t, `{"timings": {"spec/a_spec.sh": 10.5, "spec/b_spec.sh": 1}}`)
		table, err := loader.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table) != 2 {
			t.Errorf("expected 2 entries, got %d", len(table))
		}
		if table["spec/a_spec.sh"] != 10.5 {
			t.Errorf("expected 10.5, got %v", table["spec/a_spec.sh"])
		}
	})

	t.Run("missing file returns empty table with error", func(t *testing.T) {
		table, err := loader.Load(filepath.Join(t.TempDir(), "absent.json"))
		if err == nil {
			t.Error("expected error for missing file")
		}
		if len(table) != 0 {
			t.Errorf("expected empty table, got %v", table)
		}
	})

	t.Run("malformed JSON returns empty table with error", func(t *testing.T) {
		path := writeTimingFile(t, `{"timings": {`)
		table, err := loader.Load(path)
		if err == nil {
			t.Error("expected error for malformed JSON")
		}
		if len(table) != 0 {
			t.Errorf("expected empty table, got %v", table)
		}
	})

	t.Run("missing key yields empty table without error", func(t *testing.T) {
		path := writeTimingFile(t, `{"meta": {"runs": 3}}`)
		table, err := loader.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(table) != 0 {
			t.Errorf("expected empty table, got %v", table)
		}
	})

	t.Run("custom key", func(t *testing.T) {
		custom := NewLoader("durations")
		path := writeTimingFile(t, `{"durations": {"spec/a_spec.sh": 2}}`)
		table, err := custom.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if table["spec/a_spec.sh"] != 2 {
			t.Errorf("expected 2, got %v", table["spec/a_spec.sh"])
		}
	})
}

func TestTable_Lookup(t *testing.T) {
	table := Table{
		"spec/a_spec.sh": 10,
		"spec/b_spec.sh": 0,
		"spec/c_spec.sh": -3,
	}

	if d, ok := table.Lookup("spec/a_spec.sh"); !ok || d != 10 {
		t.Errorf("expected usable timing 10, got %v %v", d, ok)
	}
	if _, ok := table.Lookup("spec/b_spec.sh"); ok {
		t.Error("zero duration should not be usable")
	}
	if _, ok := table.Lookup("spec/c_spec.sh"); ok {
		t.Error("negative duration should not be usable")
	}
	if _, ok := table.Lookup("spec/missing_spec.sh"); ok {
		t.Error("missing entry should not be usable")
	}
}
