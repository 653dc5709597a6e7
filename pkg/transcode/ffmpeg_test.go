package transcode

import "testing"

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"book_part001.wav", "book_part001.mp3"},
		{"output_audio/book_part001.wav", "output_audio/book_part001.mp3"},
		{"noext", "noext.mp3"},
		{"dir.d/noext", "dir.d/noext.mp3"},
	}
	for _, tt := range tests {
		if got := replaceExt(tt.in, ".mp3"); got != tt.want {
			t.Errorf("replaceExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
