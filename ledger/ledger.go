// Package ledger persists the mapping from quarantined file names to their
// original locations. Each review folder owns exactly one ledger file at its
// root; the mapping is what makes a move into review reversible across
// process restarts.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"photosift/logger"
)

// FileName is the ledger's fixed name inside a review folder. The leading
// dot keeps it out of review listings.
const FileName = ".photosifter_metadata.json"

// Store is a load-mutate-save key-value persistence abstraction. Keys are
// current file names inside the review folder, values are absolute original
// paths.
type Store interface {
	Load() (map[string]string, error)
	Save(entries map[string]string) error
}

// JSONStore keeps the mapping as a single flat JSON object.
type JSONStore struct {
	path string
}

// NewJSONStore returns the ledger store for a review folder.
func NewJSONStore(reviewRoot string) *JSONStore {
	return &JSONStore{path: filepath.Join(reviewRoot, FileName)}
}

// Path returns the ledger file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the ledger. A missing file is an empty mapping; a malformed
// file is treated as empty rather than failing the operation.
func (s *JSONStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warnf("Malformed ledger %s, treating as empty: %v", s.path, err)
		return map[string]string{}, nil
	}
	return entries, nil
}

// Save overwrites the ledger with a complete, freshly serialized view. The
// write goes to a temp file in the same directory and is renamed into
// place, so a crash leaves either the old or the new ledger, never a
// truncated one.
func (s *JSONStore) Save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create review folder: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}
