// Package utils holds small helpers shared by the cenum packages.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Ptr returns a pointer to the given value
func Ptr[T any](v T) *T {
	return &v
}

// DerefPtr returns the value pointed to by ptr, or defaultValue if ptr is nil
func DerefPtr[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// EnsureDir makes sure a directory exists
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// SplitPatterns separates include patterns from "!"-prefixed excludes.
func SplitPatterns(patterns []string) (include, exclude []string) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if after, ok := strings.CutPrefix(p, "!"); ok {
			exclude = append(exclude, after)
		} else {
			include = append(include, p)
		}
	}
	return include, exclude
}

// ExpandGlobs expands file glob patterns with "!" negations.
// Example:
//
//	"./models/*.go", "!./models/models_test.go"
func ExpandGlobs(patterns ...string) ([]string, error) {
	include, exclude := SplitPatterns(patterns)

	results := map[string]struct{}{}
	for _, pattern := range include {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			results[m] = struct{}{}
		}
	}
	for _, pattern := range exclude {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			delete(results, m)
		}
	}

	out := make([]string, 0, len(results))
	for k := range results {
		out = append(out, k)
	}
	return out, nil
}

// AllImportPaths reports whether every pattern looks like a Go import path
// rather than a file or directory pattern.
func AllImportPaths(patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if after, ok := strings.CutPrefix(pattern, "!"); ok {
			pattern = after
		}
		// "..." wildcards only exist in import-path patterns, ./... included.
		if strings.Contains(pattern, "...") {
			continue
		}
		if strings.Contains(pattern, ".go") ||
			strings.Contains(pattern, "*") ||
			pattern == "." || pattern == ".." ||
			strings.HasPrefix(pattern, "./") ||
			strings.HasPrefix(pattern, "../") ||
			strings.HasPrefix(pattern, string(filepath.Separator)) {
			return false
		}
	}
	return true
}

// LoadPackages loads Go packages by import-path patterns (./... included)
// with syntax trees and comments attached.
func LoadPackages(patterns ...string) ([]*packages.Package, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedSyntax |
			// NeedTypes keeps Package.Fset populated on x/tools <= v0.23;
			// newer versions retain it with NeedSyntax alone.
			packages.NeedTypes |
			packages.NeedModule,
		Dir: wd,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}
