package voice

import (
	"context"

	"github.com/pdfvox/pdfvox/pkg/config"
)

// Voice describes one selectable voice as the engine reports it.
type Voice struct {
	Index int
	Name  string
	ID    string
}

// Engine is a text-to-speech engine with a pending-work queue. Enqueue and
// EnqueueToFile buffer work; Flush executes the queue in order and blocks
// until every pending utterance has been spoken or written.
type Engine interface {
	Voices(ctx context.Context) ([]Voice, error)
	Enqueue(text string)
	EnqueueToFile(text string, path string)
	Flush(ctx context.Context) error
	IsAvailable() bool
}

// Factory builds a fresh Engine from run settings. Each synthesis phase
// constructs its own instance; reusing one engine across a record pass and a
// speak pass makes the second pass silently no-op on some platforms, so
// instances are never shared.
type Factory func(cfg config.Settings) Engine
