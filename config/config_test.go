package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseList(t *testing.T) {
	res := ParseList("a,b , c")
	if len(res) != 3 || res[1] != "b" {
		t.Fatalf("unexpected result: %v", res)
	}
	if res := ParseList(""); len(res) != 0 {
		t.Fatalf("expected empty slice")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	content := `{"roots":["/photos"],"move_files":false,"hash_algorithm":"blake3"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Roots) != 1 || cfg.Roots[0] != "/photos" {
		t.Fatalf("roots not loaded: %v", cfg.Roots)
	}
	if cfg.MoveFiles {
		t.Fatal("move_files override lost")
	}
	if cfg.HashAlgorithm != "blake3" {
		t.Fatalf("hash algorithm not loaded: %s", cfg.HashAlgorithm)
	}
	// Untouched defaults survive the merge.
	if !cfg.OrganizeByDate {
		t.Fatal("organize_by_date default lost")
	}

	if err := cfg.LoadFile(path + ".absent"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.HashAlgorithm = "crc32"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown hash algorithm")
	}

	cfg = Default()
	cfg.PerceptualAlgorithm = "ahash"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown perceptual algorithm")
	}
	cfg.PerceptualHash = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("perceptual algorithm must be ignored when disabled: %v", err)
	}

	cfg = Default()
	cfg.MaxIOPerSecond = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative IO limit")
	}
}
