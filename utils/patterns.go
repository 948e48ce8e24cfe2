package utils

import (
	"path/filepath"
	"regexp"
)

// PatternMatcher filters paths by optional include and exclude patterns.
// Patterns are tried as globs against the base name first, then as regular
// expressions against the full path. Invalid regexes are ignored.
type PatternMatcher struct {
	include []pattern
	exclude []pattern
}

type pattern struct {
	glob string
	re   *regexp.Regexp
}

func NewPatternMatcher(includePatterns, excludePatterns []string) *PatternMatcher {
	return &PatternMatcher{
		include: compilePatterns(includePatterns),
		exclude: compilePatterns(excludePatterns),
	}
}

// ShouldInclude reports whether the path passes the configured filters. A nil
// matcher or an empty include list admits everything not excluded.
func (m *PatternMatcher) ShouldInclude(path string) bool {
	if m == nil {
		return true
	}
	if len(m.include) > 0 && !matchAny(path, m.include) {
		return false
	}
	return !matchAny(path, m.exclude)
}

func matchAny(path string, patterns []pattern) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p.glob, filepath.Base(path)); ok {
			return true
		}
		if p.re != nil && p.re.MatchString(path) {
			return true
		}
	}
	return false
}

func compilePatterns(raw []string) []pattern {
	compiled := make([]pattern, 0, len(raw))
	for _, s := range raw {
		p := pattern{glob: s}
		if re, err := regexp.Compile(s); err == nil {
			p.re = re
		}
		compiled = append(compiled, p)
	}
	return compiled
}
