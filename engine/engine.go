// Package engine implements the scan/hash/group pipeline over media files.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/time/rate"

	"photosift/config"
	"photosift/hasher"
	"photosift/logger"
	"photosift/media"
	"photosift/metadata"
	"photosift/phash"
	"photosift/utils"
)

// Engine runs scans sequentially, one file at a time, so progress order and
// cancellation granularity stay deterministic. It keeps at most one live
// ScanResult; each Scan call discards the previous one.
type Engine struct {
	cfg     *config.Config
	matcher *utils.PatternMatcher
	limiter *rate.Limiter
	cancel  atomic.Bool
	result  *media.ScanResult
}

func New(cfg *config.Config) *Engine {
	e := &Engine{cfg: cfg}
	if len(cfg.IncludePatterns) > 0 || len(cfg.ExcludePatterns) > 0 {
		e.matcher = utils.NewPatternMatcher(cfg.IncludePatterns, cfg.ExcludePatterns)
	}
	if cfg.MaxIOPerSecond > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.MaxIOPerSecond), cfg.MaxIOPerSecond)
	}
	return e
}

// Cancel requests a cooperative stop. The flag is polled once per file, so
// the file in flight still completes.
func (e *Engine) Cancel() {
	e.cancel.Store(true)
}

// Result returns the live result of the most recent scan, if any.
func (e *Engine) Result() *media.ScanResult {
	return e.result
}

// Scan enumerates the roots, fingerprints every candidate, and partitions
// them into duplicate groups and unique items by exact content digest.
// Missing roots and unreadable files are recorded as error strings; neither
// aborts the scan. On cancellation the partial result covers everything
// processed so far.
func (e *Engine) Scan(roots []string, computePerceptual bool, onProgress media.ProgressFunc) *media.ScanResult {
	e.cancel.Store(false)

	result := &media.ScanResult{}
	files, errs := media.Enumerate(roots, e.matcher)
	result.Errors = errs
	result.TotalFiles = len(files)

	// Digest buckets in processing order.
	var order []string
	buckets := map[string][]*media.Item{}

	for i, path := range files {
		if e.cancel.Load() {
			logger.Info("Scan cancelled")
			break
		}
		if e.limiter != nil {
			_ = e.limiter.Wait(context.Background())
		}
		if onProgress != nil {
			onProgress(i+1, result.TotalFiles, filepath.Base(path))
		}

		item, err := e.processFile(path, computePerceptual)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("error processing %s: %v", path, err))
			continue
		}

		result.TotalBytes += item.Size
		if _, seen := buckets[item.ContentDigest]; !seen {
			order = append(order, item.ContentDigest)
		}
		buckets[item.ContentDigest] = append(buckets[item.ContentDigest], item)
	}

	for _, digest := range order {
		members := buckets[digest]
		if len(members) == 1 {
			result.UniqueItems = append(result.UniqueItems, members[0])
			continue
		}
		result.Groups = append(result.Groups, media.NewGroup(digest, members))
	}

	e.result = result
	return result
}

func (e *Engine) processFile(path string, computePerceptual bool) (item *media.Item, err error) {
	// Image decoders occasionally panic on hostile input; that counts as a
	// per-file failure, not a scan failure.
	defer func() {
		if r := recover(); r != nil {
			item = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	digest, err := hasher.Sum(path, e.cfg.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	item = &media.Item{
		Path:          path,
		Size:          info.Size(),
		ContentDigest: digest,
		CapturedAt:    metadata.CaptureTime(path, info.ModTime()),
	}

	if computePerceptual && media.IsPhoto(path) {
		item.PerceptualDigest = e.perceptualDigest(path)
	}
	return item, nil
}

// perceptualDigest is advisory: any failure yields an empty digest, never an
// error, and the digest is never used for grouping.
func (e *Engine) perceptualDigest(path string) string {
	h, ok := phash.Lookup(e.cfg.PerceptualAlgorithm)
	if !ok {
		return ""
	}
	if !media.SniffImage(path) {
		logger.Debugf("Skipping perceptual hash for non-image content: %s", path)
		return ""
	}
	digest, err := h.HashFile(path)
	if err != nil {
		logger.Debugf("Perceptual hash failed for %s: %v", path, err)
		return ""
	}
	return digest
}
