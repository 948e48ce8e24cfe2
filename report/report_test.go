package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"photosift/media"
)

type reportDoc struct {
	SchemaVersion string `json:"schema_version"`
	GeneratedBy   string `json:"generated_by"`
	Groups        []struct {
		Digest           string `json:"digest"`
		KeepPath         string `json:"keep_path"`
		RecoverableBytes int64  `json:"recoverable_bytes"`
		Members          []struct {
			Path        string `json:"path"`
			IsDuplicate bool   `json:"is_duplicate"`
		} `json:"members"`
	} `json:"groups"`
	Uniques []struct {
		Path          string `json:"path"`
		ContentDigest string `json:"content_digest"`
	} `json:"uniques"`
	Metrics Metrics `json:"metrics"`
}

func readReport(t *testing.T, path string) reportDoc {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var doc reportDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, data)
	}
	return doc
}

func testResult() *media.ScanResult {
	group := media.NewGroup("aaa", []*media.Item{
		{Path: "/photos/a.jpg", Size: 100, ContentDigest: "aaa"},
		{Path: "/photos/b.jpg", Size: 100, ContentDigest: "aaa"},
	})
	return &media.ScanResult{
		TotalFiles: 3,
		TotalBytes: 250,
		Groups:     []*media.Group{group},
		UniqueItems: []*media.Item{
			{Path: "/photos/c.jpg", Size: 50, ContentDigest: "ccc"},
		},
	}
}

func TestWriteResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteResult(path, testResult(), time.Now()); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc := readReport(t, path)
	if doc.SchemaVersion != SchemaVersion {
		t.Fatalf("unexpected schema version: %s", doc.SchemaVersion)
	}
	if len(doc.Groups) != 1 || len(doc.Uniques) != 1 {
		t.Fatalf("got %d groups, %d uniques", len(doc.Groups), len(doc.Uniques))
	}
	g := doc.Groups[0]
	if g.KeepPath != "/photos/a.jpg" || g.RecoverableBytes != 100 {
		t.Fatalf("unexpected group: %+v", g)
	}
	if !g.Members[1].IsDuplicate {
		t.Fatal("second member not flagged as duplicate")
	}
	if doc.Metrics.TotalFiles != 3 || doc.Metrics.Duplicates != 1 || doc.Metrics.RecoverableBytes != 100 {
		t.Fatalf("unexpected metrics: %+v", doc.Metrics)
	}
	if doc.Metrics.EndTime == "" {
		t.Fatal("end time not filled in on close")
	}
}

func TestEmptyReportIsValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w, err := New(path, &Metrics{StartTime: time.Now().Format(time.RFC3339)})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	doc := readReport(t, path)
	if len(doc.Groups) != 0 || len(doc.Uniques) != 0 {
		t.Fatal("expected empty sections")
	}
}

func TestFileTimesIncludedForRealFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "real.jpg")
	if err := os.WriteFile(file, []byte("bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "report.json")
	res := &media.ScanResult{
		TotalFiles:  1,
		UniqueItems: []*media.Item{{Path: file, Size: 5, ContentDigest: "x"}},
	}
	if err := WriteResult(path, res, time.Now()); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw struct {
		Uniques []map[string]any `json:"uniques"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw.Uniques[0]["access_time"]; !ok {
		t.Fatal("access_time missing for an existing file")
	}
}
