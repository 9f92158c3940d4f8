// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package title guesses a human-readable title for a PDF document,
// preferring the metadata title and falling back to a first-page text
// heuristic.
package title

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf-renamer/pkg/types"
)

// Document is the PDF collaborator surface the extractor consumes. The
// extractor never parses PDF structure itself.
type Document interface {
	// MetadataTitle returns the document-level title field, or "" if absent.
	MetadataTitle() string

	// NumPages returns the page count.
	NumPages() int

	// PageText returns the extracted plain text of page n (1-indexed).
	PageText(n int) (string, error)
}

// Extractor applies the title heuristic. The line-length bounds are
// policy constants, kept as fields so tests can tighten them.
type Extractor struct {
	minLineLen int
	maxLineLen int
	log        *logrus.Logger
}

// NewExtractor builds an Extractor, substituting defaults for
// non-positive bounds.
func NewExtractor(cfg types.HeuristicConfig, log *logrus.Logger) *Extractor {
	defaults := types.DefaultRenameConfig().Heuristic
	if cfg.MinLineLen <= 0 {
		cfg.MinLineLen = defaults.MinLineLen
	}
	if cfg.MaxLineLen <= 0 {
		cfg.MaxLineLen = defaults.MaxLineLen
	}
	return &Extractor{minLineLen: cfg.MinLineLen, maxLineLen: cfg.MaxLineLen, log: log}
}

// Extract returns the best-guess title for doc, or false when no
// plausible title exists. name is used only for log context.
//
// The metadata title wins when present. Otherwise the first page's text
// is scanned line by line for the first line of plausible title length
// that is not a bare page number; if nothing qualifies, the first
// non-empty line is used as a best-effort answer.
func (e *Extractor) Extract(name string, doc Document) (string, bool) {
	if t := strings.TrimSpace(doc.MetadataTitle()); t != "" {
		e.log.WithFields(logrus.Fields{"file": name, "title": t}).Debug("title from metadata")
		return t, true
	}

	if doc.NumPages() == 0 {
		return "", false
	}

	text, err := doc.PageText(1)
	if err != nil {
		e.log.WithFields(logrus.Fields{"file": name, "error": err}).Warn("first-page text extraction failed")
		return "", false
	}

	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return "", false
	}

	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n > e.minLineLen && n < e.maxLineLen && !allDigits(line) {
			e.log.WithFields(logrus.Fields{"file": name, "title": line}).Debug("title from first-page text")
			return line, true
		}
	}

	// Nothing passed the filter; the first non-empty line is the
	// accepted best-effort approximation.
	e.log.WithFields(logrus.Fields{"file": name, "title": lines[0]}).Debug("falling back to first text line")
	return lines[0], true
}

// nonEmptyLines splits text on newlines, trims each line, and drops the
// empty ones, preserving order.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// allDigits reports whether s consists entirely of digit runes. Pure
// digit lines are page numbers, not titles.
func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
