package hasher

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hash-test")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestSumSHA256(t *testing.T) {
	path := writeTemp(t, "hello world")
	digest, err := Sum(path, "sha256")
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if digest != "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" {
		t.Errorf("sha256 mismatch: %s", digest)
	}

	// Empty algorithm means the default.
	def, err := Sum(path, "")
	if err != nil || def != digest {
		t.Errorf("default algorithm mismatch: %s, %v", def, err)
	}
}

func TestSumAlternativeAlgorithms(t *testing.T) {
	a := writeTemp(t, "hello world")
	b := writeTemp(t, "hello world!")

	for algo, hexLen := range map[string]int{"blake3": 64, "xxh64": 16} {
		da, err := Sum(a, algo)
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if len(da) != hexLen {
			t.Errorf("%s digest length %d, want %d", algo, len(da), hexLen)
		}
		again, err := Sum(a, algo)
		if err != nil || again != da {
			t.Errorf("%s not stable: %s vs %s (%v)", algo, da, again, err)
		}
		db, err := Sum(b, algo)
		if err != nil || db == da {
			t.Errorf("%s produced equal digests for different content", algo)
		}
	}
}

func TestSumUnknownAlgorithm(t *testing.T) {
	path := writeTemp(t, "x")
	if _, err := Sum(path, "md4"); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
}

func TestSumMissingFile(t *testing.T) {
	if _, err := Sum(filepath.Join(t.TempDir(), "absent"), "sha256"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
