// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfread adapts the ledongthuc/pdf library to the Document
// surface the title extractor consumes: a metadata title plus per-page
// plain text.
package pdfread

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"
)

// File is an opened PDF document. Close it when done.
type File struct {
	f *os.File
	r *pdf.Reader
}

// Open opens and parses the PDF at path. Malformed documents surface as
// errors, never panics, so a bad file cannot take down a batch.
func Open(path string) (doc *File, err error) {
	defer func() {
		// The library panics on some malformed cross-reference tables.
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("parsing %s: %v", filepath.Base(path), r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	return &File{f: f, r: r}, nil
}

// Close releases the underlying file handle.
func (d *File) Close() error {
	return d.f.Close()
}

// MetadataTitle returns the trailer Info dictionary's Title entry, or ""
// when the document carries none.
func (d *File) MetadataTitle() (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()

	info := d.r.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return info.Key("Title").Text()
}

// NumPages returns the document's page count.
func (d *File) NumPages() int {
	return d.r.NumPage()
}

// PageText extracts plain text from page n (1-indexed). A missing page
// yields empty text; decoding failures yield an error.
func (d *File) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extracting page %d text: %v", n, r)
		}
	}()

	page := d.r.Page(n)
	if page.V.IsNull() {
		return "", nil
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extracting page %d text: %w", n, err)
	}
	return text, nil
}
