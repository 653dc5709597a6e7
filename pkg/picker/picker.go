// Package picker wraps the OS-native open-file dialog so the user never has
// to type a path.
package picker

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ncruces/zenity"
)

// ErrCancelled means the user dismissed the dialog without choosing a file.
// It is a normal outcome, not an internal failure.
var ErrCancelled = errors.New("no file selected")

// PickPDF shows a native file dialog restricted to PDFs and returns the
// chosen path as an absolute path.
func PickPDF() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Select a PDF file"),
		zenity.FileFilters{
			{Name: "PDF files", Patterns: []string{"*.pdf"}, CaseFold: true},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("file dialog: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}
