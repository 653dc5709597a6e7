package pdftext

// Text-layer extraction via github.com/ledongthuc/pdf. Only the embedded
// text layer is read; scanned (image-only) PDFs yield empty pages and need
// OCR, which is out of scope here.

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdfvox/pdfvox/pkg/logger"
)

// Extract reads every page of the PDF at path and returns the document text:
// non-empty page texts joined by newline, trimmed. An empty result is not an
// error; it means the document has no extractable text (the caller decides
// what to do with that). Per-page character counts are reported on stdout as
// extraction progresses.
func Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			fmt.Printf("Page %d/%d chars=0\n", i, numPages)
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f2 := p.Font(name)
				fonts[name] = &f2
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			// A page that fails text extraction is treated like an
			// image-only page rather than aborting the document.
			logger.DebugCF("pdftext", "page extraction failed", map[string]any{
				"page":  i,
				"error": pageErr.Error(),
			})
			text = ""
		}
		text = strings.TrimSpace(text)
		fmt.Printf("Page %d/%d chars=%d\n", i, numPages, len(text))
		pages = append(pages, text)
	}

	return joinPages(pages), nil
}

func joinPages(pages []string) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// Normalize collapses every run of whitespace to a single space and trims
// the ends. Normalizing an already-normalized string is a no-op.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
