package voice

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pdfvox/pdfvox/pkg/config"
	"github.com/pdfvox/pdfvox/pkg/logger"
)

// espeak amplitude runs 0-200; the engine always plays at maximum.
const maxAmplitude = 200

var espeakBinaries = []string{"espeak-ng", "espeak"}

type job struct {
	text string
	path string // empty = speak aloud, otherwise write a WAV here
}

// EspeakEngine drives the espeak-ng (or espeak) binary as a blocking
// subprocess, one invocation per queued utterance.
type EspeakEngine struct {
	binary  string
	voiceID string
	rate    int
	queue   []job
}

// NewEspeakEngine builds an engine from run settings. Binary discovery
// prefers espeak-ng and can be overridden via Settings.EngineBinary.
func NewEspeakEngine(cfg config.Settings) *EspeakEngine {
	binary := cfg.EngineBinary
	if binary == "" {
		binary = detectBinary()
	}

	logger.DebugCF("voice", "created espeak engine", map[string]any{
		"binary": binary,
		"voice":  cfg.VoiceID,
		"rate":   cfg.Rate,
	})

	return &EspeakEngine{
		binary:  binary,
		voiceID: cfg.VoiceID,
		rate:    cfg.Rate,
	}
}

// NewEngine is the Factory for the default espeak backend.
func NewEngine(cfg config.Settings) Engine {
	return NewEspeakEngine(cfg)
}

func detectBinary() string {
	for _, name := range espeakBinaries {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// IsAvailable reports whether a speech binary was found.
func (e *EspeakEngine) IsAvailable() bool {
	return e.binary != ""
}

func (e *EspeakEngine) Enqueue(text string) {
	e.queue = append(e.queue, job{text: text})
}

func (e *EspeakEngine) EnqueueToFile(text string, path string) {
	e.queue = append(e.queue, job{text: text, path: path})
}

// Flush runs every queued job in order, blocking on each subprocess. The
// queue is emptied even when a job fails; jobs after the failing one are not
// run.
func (e *EspeakEngine) Flush(ctx context.Context) error {
	pending := e.queue
	e.queue = nil

	if len(pending) == 0 {
		return nil
	}
	if !e.IsAvailable() {
		return fmt.Errorf("no speech engine found (tried %s)", strings.Join(espeakBinaries, ", "))
	}

	for _, j := range pending {
		cmd := exec.CommandContext(ctx, e.binary, e.args(j)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("speech synthesis failed: %w\n%s", err, out)
		}
	}
	return nil
}

func (e *EspeakEngine) args(j job) []string {
	args := []string{"-s", strconv.Itoa(e.rate), "-a", strconv.Itoa(maxAmplitude)}
	if e.voiceID != "" {
		args = append(args, "-v", e.voiceID)
	}
	if j.path != "" {
		args = append(args, "-w", j.path)
	}
	return append(args, "--", j.text)
}

// Voices enumerates the engine's voice list via `--voices`.
func (e *EspeakEngine) Voices(ctx context.Context) ([]Voice, error) {
	if !e.IsAvailable() {
		return nil, fmt.Errorf("no speech engine found (tried %s)", strings.Join(espeakBinaries, ", "))
	}

	out, err := exec.CommandContext(ctx, e.binary, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("listing voices: %w", err)
	}
	return parseVoices(string(out)), nil
}

// parseVoices reads `espeak --voices` output. Columns are
// "Pty Language Age/Gender VoiceName File ..."; the language code is what
// gets passed back with -v.
func parseVoices(out string) []Voice {
	var voices []Voice

	sc := bufio.NewScanner(strings.NewReader(out))
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if first {
			// Header row.
			first = false
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{
			Index: len(voices),
			Name:  fields[3],
			ID:    fields[1],
		})
	}
	return voices
}
