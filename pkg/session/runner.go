// Package session orchestrates the synthesis phases of one run: recording
// chunk files, speaking aloud, and reporting what was produced.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfvox/pdfvox/pkg/chunker"
	"github.com/pdfvox/pdfvox/pkg/config"
	"github.com/pdfvox/pdfvox/pkg/logger"
	"github.com/pdfvox/pdfvox/pkg/transcode"
	"github.com/pdfvox/pdfvox/pkg/voice"
)

// reportLimit caps how many saved file names get printed before eliding.
const reportLimit = 10

type convertFunc func(ctx context.Context, wavPath string) (string, error)

// Runner executes the record and/or speak phases for one document. Each
// phase gets its own engine instance built from the same settings; engines
// are never reused across phases.
type Runner struct {
	cfg       config.Settings
	newEngine voice.Factory
	convert   convertFunc
	out       io.Writer
}

func NewRunner(cfg config.Settings, factory voice.Factory) *Runner {
	return &Runner{
		cfg:       cfg,
		newEngine: factory,
		convert:   transcode.WavToMP3,
		out:       os.Stdout,
	}
}

// Run drives every enabled phase over the document text and returns the
// files produced. stem names the output files (usually the PDF base name).
func (r *Runner) Run(ctx context.Context, stem, text string) ([]string, error) {
	var saved []string

	if r.cfg.Recording() {
		fmt.Fprintln(r.out, "\nRecording enabled... (saving WAV chunks)")
		files, err := r.record(ctx, stem, text)
		saved = files
		if err != nil {
			return saved, err
		}
	}

	if r.cfg.Speaking() {
		fmt.Fprintln(r.out, "\nSpeaking...")
		if err := r.speak(ctx, text); err != nil {
			return saved, err
		}
	}

	r.report(saved)
	return saved, nil
}

// record writes one WAV file per chunk into the output directory, then
// converts each to MP3 when that format was chosen. Files from earlier
// chunks survive a failed conversion.
func (r *Runner) record(ctx context.Context, stem, text string) ([]string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	engine := r.newEngine(r.cfg)

	chunks := chunker.Split(text, r.cfg.MaxChunk)
	wavFiles := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		path := filepath.Join(r.cfg.OutputDir, fmt.Sprintf("%s_part%03d.wav", stem, i+1))
		engine.EnqueueToFile(chunk, path)
		wavFiles = append(wavFiles, path)
	}

	if err := engine.Flush(ctx); err != nil {
		return nil, fmt.Errorf("recording: %w", err)
	}

	logger.InfoCF("session", "recorded chunks", map[string]any{
		"files": len(wavFiles),
		"dir":   r.cfg.OutputDir,
	})

	if r.cfg.SaveFormat != config.FormatMP3 {
		return wavFiles, nil
	}

	fmt.Fprintln(r.out, "Converting to MP3 (ffmpeg)...")
	mp3Files := make([]string, 0, len(wavFiles))
	for _, wav := range wavFiles {
		mp3, err := r.convert(ctx, wav)
		if err != nil {
			return mp3Files, err
		}
		mp3Files = append(mp3Files, mp3)
	}
	return mp3Files, nil
}

// speak queues every chunk on a fresh engine and blocks until playback
// finishes.
func (r *Runner) speak(ctx context.Context, text string) error {
	engine := r.newEngine(r.cfg)

	for _, chunk := range chunker.Split(text, r.cfg.MaxChunk) {
		engine.Enqueue(chunk)
	}
	if err := engine.Flush(ctx); err != nil {
		return fmt.Errorf("speaking: %w", err)
	}
	return nil
}

func (r *Runner) report(saved []string) {
	if len(saved) == 0 {
		return
	}

	fmt.Fprintf(r.out, "\nSaved %d file(s) in: %s\n", len(saved), r.cfg.OutputDir)
	for i, f := range saved {
		if i == reportLimit {
			fmt.Fprintln(r.out, " ...")
			break
		}
		fmt.Fprintf(r.out, " - %s\n", filepath.Base(f))
	}
}
