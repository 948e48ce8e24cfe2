// Package report writes a machine-readable summary of a completed scan as a
// single JSON document: duplicate groups, unique items, and run metrics.
// Records stream into the file as they are written, so a large scan never
// has to sit in memory twice.
package report

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"
	"time"

	"photosift/media"
	"photosift/metadata"
	"photosift/version"
)

const SchemaVersion = "1.0"

// Metrics summarizes one run.
type Metrics struct {
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	TotalFiles       int    `json:"total_files"`
	TotalBytes       int64  `json:"total_bytes"`
	DuplicateGroups  int    `json:"duplicate_groups"`
	Duplicates       int    `json:"duplicates"`
	UniqueFiles      int    `json:"unique_files"`
	RecoverableBytes int64  `json:"recoverable_bytes"`
	Errors           int    `json:"errors"`
}

type itemRecord struct {
	Path             string `json:"path"`
	Size             int64  `json:"size"`
	ContentDigest    string `json:"content_digest"`
	PerceptualDigest string `json:"perceptual_digest,omitempty"`
	CapturedAt       string `json:"captured_at,omitempty"`
	metadata.FileTimes
	IsDuplicate bool   `json:"is_duplicate,omitempty"`
	DuplicateOf string `json:"duplicate_of,omitempty"`
}

type groupRecord struct {
	Digest           string       `json:"digest"`
	KeepPath         string       `json:"keep_path"`
	RecoverableBytes int64        `json:"recoverable_bytes"`
	Members          []itemRecord `json:"members"`
}

// Writer streams a scan report to a file. Sections must be written in
// order: groups, then uniques, then Close with the final metrics.
type Writer struct {
	file       *os.File
	buf        *bufio.Writer
	mu         sync.Mutex
	firstGroup bool
	firstItem  bool
	inUniques  bool
	metrics    *Metrics
}

func New(path string, m *Metrics) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}
	w := &Writer{
		file:       f,
		buf:        bufio.NewWriterSize(f, 1024*1024),
		firstGroup: true,
		firstItem:  true,
		metrics:    m,
	}
	if err := w.writeHeader(); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	return w, nil
}

func (w *Writer) writeHeader() error {
	if _, err := w.buf.WriteString("{\n"); err != nil {
		return err
	}
	if _, err := w.buf.WriteString("  \"schema_version\": " + quoted(SchemaVersion) + ",\n"); err != nil {
		return err
	}
	if _, err := w.buf.WriteString("  \"generated_by\": " + quoted("photosift "+version.Version) + ",\n"); err != nil {
		return err
	}
	if _, err := w.buf.WriteString("  \"groups\": [\n"); err != nil {
		return err
	}
	return w.buf.Flush()
}

// WriteGroup appends one duplicate group record.
func (w *Writer) WriteGroup(g *media.Group) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec := groupRecord{
		Digest:           g.Digest,
		KeepPath:         g.KeepPath,
		RecoverableBytes: g.RecoverableBytes(),
		Members:          make([]itemRecord, 0, len(g.Members)),
	}
	for _, m := range g.Members {
		rec.Members = append(rec.Members, newItemRecord(m))
	}
	if !w.firstGroup {
		_, _ = w.buf.WriteString(",\n")
	}
	w.writeIndented(rec)
	w.firstGroup = false
	_ = w.buf.Flush()
}

// WriteUnique appends one unique item record. The first call closes the
// groups section.
func (w *Writer) WriteUnique(item *media.Item) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.inUniques {
		w.beginUniquesLocked()
	}
	if !w.firstItem {
		_, _ = w.buf.WriteString(",\n")
	}
	w.writeIndented(newItemRecord(item))
	w.firstItem = false
	_ = w.buf.Flush()
}

// Close finishes the document with the metrics block and syncs the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.inUniques {
		w.beginUniquesLocked()
	}
	_, _ = w.buf.WriteString("\n  ]")
	if w.metrics != nil {
		if w.metrics.EndTime == "" {
			w.metrics.EndTime = time.Now().Format(time.RFC3339)
		}
		if data, err := json.MarshalIndent(w.metrics, "  ", "  "); err == nil {
			_, _ = w.buf.WriteString(",\n  \"metrics\": ")
			_, _ = w.buf.Write(data)
		}
	}
	_, _ = w.buf.WriteString("\n}\n")
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return err
	}
	_ = w.file.Sync()
	return w.file.Close()
}

func (w *Writer) beginUniquesLocked() {
	_, _ = w.buf.WriteString("\n  ],\n  \"uniques\": [\n")
	w.inUniques = true
	w.firstItem = true
}

func (w *Writer) writeIndented(v any) {
	data, err := json.MarshalIndent(v, "    ", "  ")
	if err != nil {
		return
	}
	_, _ = w.buf.WriteString("    ")
	_, _ = w.buf.Write(data)
}

func newItemRecord(m *media.Item) itemRecord {
	rec := itemRecord{
		Path:             m.Path,
		Size:             m.Size,
		ContentDigest:    m.ContentDigest,
		PerceptualDigest: m.PerceptualDigest,
		IsDuplicate:      m.IsDuplicate,
		DuplicateOf:      m.DuplicateOf,
	}
	if !m.CapturedAt.IsZero() {
		rec.CapturedAt = m.CapturedAt.Format(time.RFC3339)
	}
	if ft, err := metadata.GetFileTimes(m.Path); err == nil {
		rec.FileTimes = ft
	}
	return rec
}

// WriteResult dumps an entire scan result through a fresh writer.
func WriteResult(path string, res *media.ScanResult, started time.Time) error {
	m := &Metrics{
		StartTime:        started.Format(time.RFC3339),
		TotalFiles:       res.TotalFiles,
		TotalBytes:       res.TotalBytes,
		DuplicateGroups:  len(res.Groups),
		Duplicates:       res.DuplicateCount(),
		UniqueFiles:      len(res.UniqueItems),
		RecoverableBytes: res.RecoverableBytes(),
		Errors:           len(res.Errors),
	}
	w, err := New(path, m)
	if err != nil {
		return err
	}
	for _, g := range res.Groups {
		w.WriteGroup(g)
	}
	for _, item := range res.UniqueItems {
		w.WriteUnique(item)
	}
	return w.Close()
}

func quoted(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
