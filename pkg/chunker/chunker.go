// Package chunker slices normalized document text into bounded pieces.
//
// Speech engines get unreliable with very long input strings, and writing
// audio in chunks is the portable way to record long documents, so every
// downstream consumer works on chunks instead of the whole text.
package chunker

import "github.com/pdfvox/pdfvox/pkg/pdftext"

// Split cuts text into contiguous pieces of at most max characters, in
// order, covering the whitespace-normalized text exactly once. Length is
// counted in runes, never bytes, so a multibyte character is never cut in
// half at a boundary. There is no word-boundary logic; slicing is
// fixed-length. Empty text yields no chunks.
//
// Split is a pure function: each phase that consumes chunks calls it
// independently, so no cursor state is ever shared between phases.
func Split(text string, max int) []string {
	text = pdftext.Normalize(text)
	if text == "" || max <= 0 {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+max-1)/max)
	for i := 0; i < len(runes); i += max {
		end := i + max
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
