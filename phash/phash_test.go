package phash

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, name string, fill func(x, y int) color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, fill(x, y))
		}
	}
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestRegistry(t *testing.T) {
	if _, ok := Lookup("dhash"); !ok {
		t.Fatal("dhash not registered")
	}
	if _, ok := Lookup("TLSH"); !ok {
		t.Fatal("lookup must be case-insensitive")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unexpected hasher")
	}
	names := Available()
	if len(names) < 2 {
		t.Fatalf("expected at least dhash and tlsh, got %v", names)
	}
}

func TestDHashStable(t *testing.T) {
	gradient := func(x, y int) color.Color {
		return color.Gray{Y: uint8(x * 8)}
	}
	path := writePNG(t, "gradient.png", gradient)

	first, err := DHasher{}.HashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if len(first) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", first)
	}
	second, err := DHasher{}.HashFile(path)
	if err != nil || second != first {
		t.Fatalf("hash not stable: %s vs %s (%v)", first, second, err)
	}

	// A rising horizontal gradient sets every comparison bit.
	if first != "ffffffffffffffff" {
		t.Errorf("gradient hash = %s, want all ones", first)
	}

	flat := writePNG(t, "flat.png", func(x, y int) color.Color {
		return color.Gray{Y: 128}
	})
	flatHash, err := DHasher{}.HashFile(flat)
	if err != nil {
		t.Fatalf("hash flat: %v", err)
	}
	if flatHash == first {
		t.Error("distinct images produced identical dhash")
	}
}

func TestTLSHRejectsTinyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.jpg")
	if err := os.WriteFile(path, []byte("short"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := (TLSHHasher{}).HashFile(path); err == nil {
		t.Fatal("expected error below the minimum input size")
	}
	if _, err := (TLSHHasher{}).HashFile(filepath.Join(t.TempDir(), "absent.jpg")); err == nil {
		t.Fatal("expected open error")
	}
}

func TestDHashDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.jpg")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := (DHasher{}).HashFile(path); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := (DHasher{}).HashFile(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("expected open error")
	}
}
