package reservednames

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewYAMLProvider(t *testing.T) {
	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") returned nil error")
	}
	if _, err := NewYAMLProvider("/tmp/reserved.yaml"); err != nil {
		t.Errorf("NewYAMLProvider() returned %v", err)
	}
}

func TestYAMLProvider_ReservedNames(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		provider, err := NewYAMLProvider(filepath.Join(t.TempDir(), "reserved.yaml"))
		if err != nil {
			t.Fatal(err)
		}

		names, err := provider.ReservedNames()
		if err != nil {
			t.Fatalf("ReservedNames() returned %v", err)
		}
		for _, want := range []string{"ls", "cd", "alias", "sudo"} {
			if _, ok := names[want]; !ok {
				t.Errorf("default denylist is missing %q", want)
			}
		}
	})

	t.Run("file extends the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reserved.yaml")
		content := "reserved:\n  - deploy\n  - mycorp\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		provider, err := NewYAMLProvider(path)
		if err != nil {
			t.Fatal(err)
		}
		names, err := provider.ReservedNames()
		if err != nil {
			t.Fatalf("ReservedNames() returned %v", err)
		}
		for _, want := range []string{"deploy", "mycorp", "ls"} {
			if _, ok := names[want]; !ok {
				t.Errorf("denylist is missing %q", want)
			}
		}
	})

	t.Run("replace drops the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reserved.yaml")
		content := "replace: true\nreserved:\n  - only\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		provider, err := NewYAMLProvider(path)
		if err != nil {
			t.Fatal(err)
		}
		names, err := provider.ReservedNames()
		if err != nil {
			t.Fatalf("ReservedNames() returned %v", err)
		}
		if len(names) != 1 {
			t.Errorf("ReservedNames() = %v, want only the file entries", names)
		}
		if _, ok := names["only"]; !ok {
			t.Error("denylist is missing the file entry")
		}
	})

	t.Run("empty file contributes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reserved.yaml")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}

		provider, err := NewYAMLProvider(path)
		if err != nil {
			t.Fatal(err)
		}
		names, err := provider.ReservedNames()
		if err != nil {
			t.Fatalf("ReservedNames() returned %v", err)
		}
		if _, ok := names["ls"]; !ok {
			t.Error("defaults missing for empty file")
		}
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reserved.yaml")
		if err := os.WriteFile(path, []byte("banned:\n  - x\n"), 0644); err != nil {
			t.Fatal(err)
		}

		provider, err := NewYAMLProvider(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := provider.ReservedNames(); err == nil {
			t.Error("ReservedNames() returned nil error for unknown field")
		}
	})
}
