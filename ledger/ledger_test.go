package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"photosift/logger"
)

func init() {
	logger.Init("error")
}

func TestLoadAbsent(t *testing.T) {
	store := NewJSONStore(t.TempDir())
	entries, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty mapping, got %v", entries)
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := NewJSONStore(dir).Load()
	if err != nil {
		t.Fatalf("malformed ledger must not fail: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty mapping, got %v", entries)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	in := map[string]string{
		"a.jpg":   "/photos/a.jpg",
		"a_1.jpg": "/backup/a.jpg",
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out["a_1.jpg"] != "/backup/a.jpg" {
		t.Fatalf("round trip mismatch: %v", out)
	}

	// A second save is a full overwrite, not a merge.
	if err := store.Save(map[string]string{"b.jpg": "/photos/b.jpg"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err = store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out["b.jpg"] != "/photos/b.jpg" {
		t.Fatalf("overwrite semantics broken: %v", out)
	}

	// No temp files left behind.
	dirents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(dirents) != 1 || dirents[0].Name() != FileName {
		t.Fatalf("unexpected files in review folder: %v", dirents)
	}
}

func TestSaveCreatesReviewFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "review")
	store := NewJSONStore(dir)
	if err := store.Save(map[string]string{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("ledger file missing: %v", err)
	}
}
