// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf-renamer/internal/pdfread"
	"github.com/pdiddy/pdf-renamer/internal/title"
)

// PDFTitleSource opens PDFs from disk and runs the heuristic extractor
// over them. Each document is closed before the next is opened.
type PDFTitleSource struct {
	extractor *title.Extractor
	log       *logrus.Logger
}

// NewPDFTitleSource wires the on-disk title source.
func NewPDFTitleSource(extractor *title.Extractor, log *logrus.Logger) *PDFTitleSource {
	return &PDFTitleSource{extractor: extractor, log: log}
}

// ExtractTitle implements TitleSource. Unreadable documents are reported
// and answered with false rather than an error, so the batch continues.
func (s *PDFTitleSource) ExtractTitle(path string) (string, bool) {
	name := filepath.Base(path)

	doc, err := pdfread.Open(path)
	if err != nil {
		s.log.WithFields(logrus.Fields{"file": name, "error": err}).Error("cannot read PDF")
		return "", false
	}
	defer doc.Close()

	return s.extractor.Extract(name, doc)
}
