// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namer turns raw document titles into filesystem-safe,
// collision-free filenames.
package namer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf-renamer/pkg/types"
)

// bannedChars are stripped outright during sanitization: ASCII path
// separators and wildcards, plus full-width and typographic punctuation
// common in non-Latin titles.
const bannedChars = `\/*?:"<>|()（）‘’“”《》`

// Resolver sanitizes titles and probes for unused destination names.
type Resolver struct {
	maxNameLength int
	placeholder   string
}

// NewResolver builds a Resolver, substituting defaults for zero values.
func NewResolver(cfg types.NamingConfig) *Resolver {
	defaults := types.DefaultRenameConfig().Naming
	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = defaults.MaxNameLength
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = defaults.Placeholder
	}
	return &Resolver{maxNameLength: cfg.MaxNameLength, placeholder: cfg.Placeholder}
}

// Placeholder returns the fallback name used when sanitization leaves
// nothing usable.
func (r *Resolver) Placeholder() string {
	return r.placeholder
}

// Sanitize strips banned characters, collapses whitespace runs (including
// embedded line breaks) to single spaces, truncates to the configured
// rune limit, and trims trailing dots and spaces. An empty result becomes
// the placeholder. Sanitize is idempotent.
func (r *Resolver) Sanitize(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, ru := range title {
		if !strings.ContainsRune(bannedChars, ru) {
			b.WriteRune(ru)
		}
	}

	clean := strings.Join(strings.Fields(b.String()), " ")

	if runes := []rune(clean); len(runes) > r.maxNameLength {
		// Truncation may land mid-word; accepted.
		clean = strings.TrimSpace(string(runes[:r.maxNameLength]))
	}

	// Trailing dots make some filesystems misbehave.
	clean = strings.TrimRight(clean, ". ")

	if clean == "" {
		return r.placeholder
	}
	return clean
}

// Resolve returns a path in dir that does not name an existing file,
// starting at base+ext and probing base_1+ext, base_2+ext, and so on.
// The probe is unbounded; directories are expected to be small. The
// check-then-use pattern is not atomic, so a concurrent writer could
// still collide at rename time — single-process use is assumed.
func (r *Resolver) Resolve(dir, base, ext string) (string, error) {
	candidate := filepath.Join(dir, base+ext)
	for counter := 1; ; counter++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
	}
}
