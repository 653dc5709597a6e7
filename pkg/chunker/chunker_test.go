package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdfvox/pdfvox/pkg/pdftext"
)

func TestSplit_CoversTextExactly(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
	}{
		{"short text one chunk", "Hello world. Goodbye.", 1200},
		{"exact multiple", strings.Repeat("x", 40), 10},
		{"remainder chunk", strings.Repeat("x", 45), 10},
		{"max of one", "abc", 1},
		{"messy whitespace", "Hello   world.\n\nGoodbye.", 5},
		{"multibyte runes", "héllo wörld, çoncentré", 2},
		{"cjk text", strings.Repeat("音声合成", 7), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := pdftext.Normalize(tt.text)
			chunks := Split(tt.text, tt.max)

			if got := strings.Join(chunks, ""); got != normalized {
				t.Errorf("concatenated chunks = %q, want %q", got, normalized)
			}

			runeCount := utf8.RuneCountInString(normalized)
			wantCount := (runeCount + tt.max - 1) / tt.max
			if len(chunks) != wantCount {
				t.Errorf("chunk count = %d, want %d", len(chunks), wantCount)
			}

			for i, c := range chunks {
				if utf8.RuneCountInString(c) > tt.max {
					t.Errorf("chunk %d has %d runes, exceeds max %d", i, utf8.RuneCountInString(c), tt.max)
				}
				if !utf8.ValidString(c) {
					t.Errorf("chunk %d is not valid UTF-8: %q", i, c)
				}
				if c == "" {
					t.Errorf("chunk %d is empty", i)
				}
			}
		})
	}
}

func TestSplit_NeverCutsARune(t *testing.T) {
	chunks := Split("héllo wörld", 2)

	if got := strings.Join(chunks, ""); got != "héllo wörld" {
		t.Errorf("concatenated chunks = %q, want %q", got, "héllo wörld")
	}
	if len(chunks) == 0 || chunks[0] != "hé" {
		t.Errorf("first chunk = %q, want %q", chunks[0], "hé")
	}
	for i, c := range chunks {
		if !utf8.ValidString(c) {
			t.Errorf("chunk %d is not valid UTF-8: %q", i, c)
		}
	}
}

func TestSplit_EmptyText(t *testing.T) {
	if chunks := Split("", 1200); len(chunks) != 0 {
		t.Errorf("empty text should yield no chunks, got %d", len(chunks))
	}
	if chunks := Split("   \n\t ", 1200); len(chunks) != 0 {
		t.Errorf("whitespace-only text should yield no chunks, got %d", len(chunks))
	}
}

func TestSplit_Deterministic(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 100)

	first := Split(text, 64)
	second := Split(text, 64)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between invocations", i)
		}
	}
}

func TestSplit_SinglePageDocument(t *testing.T) {
	// A 3-page document where the middle page had no text layer.
	text := "Hello world.\nGoodbye."

	chunks := Split(text, 1200)

	if len(chunks) != 1 {
		t.Fatalf("expected one chunk, got %d", len(chunks))
	}
	if chunks[0] != "Hello world. Goodbye." {
		t.Errorf("chunk = %q, want %q", chunks[0], "Hello world. Goodbye.")
	}
}
