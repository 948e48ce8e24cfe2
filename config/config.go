// Package config holds the runtime settings shared by the CLI and the
// engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"photosift/hasher"
	"photosift/phash"
)

type Config struct {
	Roots               []string `json:"roots"`
	Destination         string   `json:"destination"`
	ReviewDir           string   `json:"review_dir"`
	OrganizeByDate      bool     `json:"organize_by_date"`
	MoveFiles           bool     `json:"move_files"` // false = copy
	HashAlgorithm       string   `json:"hash_algorithm"`
	PerceptualHash      bool     `json:"perceptual_hash"`
	PerceptualAlgorithm string   `json:"perceptual_algorithm"`
	ExcludePatterns     []string `json:"exclude_patterns"`
	IncludePatterns     []string `json:"include_patterns"`
	MaxIOPerSecond      int      `json:"max_io_per_second"`
	ReportFile          string   `json:"report_file"`
	LogLevel            string   `json:"log_level"`
}

// Default returns the baseline configuration before config file and flag
// overrides.
func Default() *Config {
	return &Config{
		OrganizeByDate:      true,
		MoveFiles:           true,
		HashAlgorithm:       hasher.DefaultAlgorithm,
		PerceptualHash:      true,
		PerceptualAlgorithm: "dhash",
		LogLevel:            "info",
	}
}

// LoadFile merges settings from a JSON config file into the receiver.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks algorithm names against what is compiled in.
func (c *Config) Validate() error {
	if _, err := hasher.New(c.HashAlgorithm); err != nil {
		return err
	}
	if c.PerceptualHash {
		if _, ok := phash.Lookup(c.PerceptualAlgorithm); !ok {
			return fmt.Errorf("unknown perceptual algorithm %q (available: %s)",
				c.PerceptualAlgorithm, strings.Join(phash.Available(), ", "))
		}
	}
	if c.MaxIOPerSecond < 0 {
		return fmt.Errorf("max_io_per_second must not be negative")
	}
	return nil
}

// ParseList splits a comma-separated flag value, dropping empty entries.
func ParseList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
