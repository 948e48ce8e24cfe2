package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"photosift/engine"
	"photosift/logger"
	"photosift/media"
)

// scanFlags are the scan options shared by the scan, organize, and
// quarantine commands.
type scanFlags struct {
	hash            string
	perceptual      bool
	perceptualAlgo  string
	includePatterns []string
	excludePatterns []string
	maxIOPerSecond  int
	limit           int
	keepPolicy      string
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.hash, "hash", "", "Content hash algorithm (sha256, blake3, xxh64)")
	cmd.Flags().BoolVar(&f.perceptual, "perceptual", true, "Compute advisory perceptual digests for photos")
	cmd.Flags().StringVar(&f.perceptualAlgo, "perceptual-algorithm", "", "Perceptual hash algorithm")
	cmd.Flags().StringSliceVar(&f.includePatterns, "include", nil, "Only scan paths matching these glob patterns")
	cmd.Flags().StringSliceVar(&f.excludePatterns, "exclude", nil, "Skip paths matching these glob patterns")
	cmd.Flags().IntVar(&f.maxIOPerSecond, "max-io", 0, "Throttle to at most this many files per second (0 = unlimited)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Stop after this many files (0 = no limit)")
	cmd.Flags().StringVar(&f.keepPolicy, "keep", "first", "Which group member to keep (first, newest, oldest)")
}

// runScan applies flag overrides, runs a full scan over roots, and applies
// the keep policy to every duplicate group. SIGINT and SIGTERM request a
// cooperative cancellation; the partial result is still returned.
func runScan(ctx *commandContext, f *scanFlags, roots []string) (*media.ScanResult, error) {
	cfg := ctx.cfg
	if f.hash != "" {
		cfg.HashAlgorithm = f.hash
	}
	cfg.PerceptualHash = f.perceptual
	if f.perceptualAlgo != "" {
		cfg.PerceptualAlgorithm = f.perceptualAlgo
	}
	if len(f.includePatterns) > 0 {
		cfg.IncludePatterns = f.includePatterns
	}
	if len(f.excludePatterns) > 0 {
		cfg.ExcludePatterns = f.excludePatterns
	}
	if f.maxIOPerSecond > 0 {
		cfg.MaxIOPerSecond = f.maxIOPerSecond
	}
	if len(roots) == 0 {
		roots = cfg.Roots
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("no folders to scan: pass them as arguments or set roots in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	eng := engine.New(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigChan)
		close(sigChan)
	}()
	go func() {
		if _, ok := <-sigChan; ok {
			logger.Info("Interrupt received, finishing current file...")
			eng.Cancel()
		}
	}()

	bar := newProgressBar(-1, "Scanning")
	processed := 0
	res := eng.Scan(roots, cfg.PerceptualHash, func(current, total int, name string) {
		bar.ChangeMax(total)
		_ = bar.Set(current)
		processed++
		if f.limit > 0 && processed >= f.limit {
			eng.Cancel()
		}
	})
	_ = bar.Finish()

	if err := applyKeepPolicy(res, f.keepPolicy); err != nil {
		return nil, err
	}
	return res, nil
}

// applyKeepPolicy re-selects the kept member of every group. "first" keeps
// the default discovery-order selection.
func applyKeepPolicy(res *media.ScanResult, policy string) error {
	switch policy {
	case "", "first":
		return nil
	case "newest", "oldest":
	default:
		return fmt.Errorf("unknown keep policy %q (available: first, newest, oldest)", policy)
	}

	for _, g := range res.Groups {
		keep := g.Members[0]
		for _, m := range g.Members[1:] {
			switch policy {
			case "newest":
				if m.CapturedAt.After(keep.CapturedAt) {
					keep = m
				}
			case "oldest":
				if m.CapturedAt.Before(keep.CapturedAt) {
					keep = m
				}
			}
		}
		if err := g.SetKeep(keep.Path); err != nil {
			return err
		}
	}
	return nil
}
