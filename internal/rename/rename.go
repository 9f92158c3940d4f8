// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename orchestrates a batch rename run: discover PDFs in a
// directory, extract a title for each, and move the file to a sanitized,
// collision-free name. Per-file failures never abort the batch.
package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf-renamer/internal/namer"
)

// ErrNotDirectory reports that the target path is missing or not a
// directory. It is the only error that aborts a run.
var ErrNotDirectory = errors.New("not a directory")

// Status classifies the outcome of processing one file.
type Status string

const (
	StatusRenamed Status = "renamed"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records the result of processing one PDF.
type Outcome struct {
	// OldName is the file's base name before processing.
	OldName string

	// NewName is the base name after a rename; empty otherwise.
	NewName string

	Status Status

	// Reason explains skips and failures; empty for plain renames.
	Reason string
}

// BatchResult aggregates the outcomes of one run.
type BatchResult struct {
	Outcomes []Outcome
	Renamed  int
	Skipped  int
	Failed   int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Renamed + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

func (r *BatchResult) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusRenamed:
		r.Renamed++
	case StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
}

// TitleSource produces a best-guess title for the PDF at path, or false
// when none can be extracted. Implementations report their own per-file
// errors; the runner only counts the failure.
type TitleSource interface {
	ExtractTitle(path string) (string, bool)
}

// Runner drives a batch rename over one directory.
type Runner struct {
	titles TitleSource
	names  *namer.Resolver
	log    *logrus.Logger
	dryRun bool
}

// NewRunner wires a Runner from its collaborators. With dryRun set, the
// runner resolves and reports renames without touching the filesystem.
func NewRunner(titles TitleSource, names *namer.Resolver, log *logrus.Logger, dryRun bool) *Runner {
	return &Runner{titles: titles, names: names, log: log, dryRun: dryRun}
}

// Run processes every *.pdf directly under dir (non-recursive) and
// returns the aggregated outcomes. The only fatal error is an invalid
// target directory.
func (r *Runner) Run(dir string) (BatchResult, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return BatchResult{}, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	paths, err := discover(dir)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, path := range paths {
		result.add(r.processOne(dir, path))
	}

	r.log.WithFields(logrus.Fields{
		"renamed": result.Renamed,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	}).Info("batch complete")

	return result, nil
}

// discover lists *.pdf files directly under dir, sorted for
// deterministic processing order.
func discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}

func (r *Runner) processOne(dir, path string) Outcome {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	r.log.WithField("file", name).Info("processing")

	rawTitle, ok := r.titles.ExtractTitle(path)
	if !ok {
		r.log.WithField("file", name).Warn("no title found")
		return Outcome{OldName: name, Status: StatusFailed, Reason: "no title found"}
	}

	clean := r.names.Sanitize(rawTitle)

	// An untitled file that would stay untitled is a pointless rename loop.
	if clean == r.names.Placeholder() && stem == r.names.Placeholder() {
		r.log.WithField("file", name).Warn("already placeholder-named and no better title available")
		return Outcome{OldName: name, Status: StatusSkipped, Reason: "no better title than placeholder"}
	}

	if clean == stem {
		r.log.WithField("file", name).Info("name already matches title")
		return Outcome{OldName: name, Status: StatusSkipped, Reason: "name unchanged"}
	}

	newPath, err := r.names.Resolve(dir, clean, ext)
	if err != nil {
		r.log.WithFields(logrus.Fields{"file": name, "error": err}).Error("resolving destination failed")
		return Outcome{OldName: name, Status: StatusFailed, Reason: err.Error()}
	}
	newName := filepath.Base(newPath)

	if r.dryRun {
		r.log.WithFields(logrus.Fields{"from": name, "to": newName}).Info("would rename (dry run)")
		return Outcome{OldName: name, NewName: newName, Status: StatusRenamed, Reason: "dry run"}
	}

	if err := os.Rename(path, newPath); err != nil {
		r.log.WithFields(logrus.Fields{"file": name, "error": err}).Error("rename failed")
		return Outcome{OldName: name, Status: StatusFailed, Reason: err.Error()}
	}

	r.log.WithFields(logrus.Fields{"from": name, "to": newName}).Info("renamed")
	return Outcome{OldName: name, NewName: newName, Status: StatusRenamed}
}
