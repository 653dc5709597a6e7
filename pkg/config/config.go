package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Mode selects what the run does with the extracted text.
type Mode string

const (
	ModeSpeak  Mode = "speak"
	ModeRecord Mode = "record"
	ModeBoth   Mode = "both"
)

// Format is the container format for recorded audio files.
type Format string

const (
	FormatWAV Format = "wav"
	FormatMP3 Format = "mp3"
)

const (
	RateMin = 80
	RateMax = 350

	DefaultRate     = 170
	DefaultMaxChunk = 1200
	DefaultOutDir   = "output_audio"
)

// Settings is the full configuration for one run. It is built once, before
// any synthesis starts, and handed to each phase by value; phases never
// mutate it.
type Settings struct {
	// VoiceID is the engine-specific voice identifier. Empty means the
	// engine default voice.
	VoiceID string `env:"PDFVOX_VOICE"`

	// Rate is the speaking rate in words per minute, within [RateMin, RateMax].
	Rate int `env:"PDFVOX_RATE"`

	Mode       Mode   `env:"PDFVOX_MODE"`
	SaveFormat Format `env:"PDFVOX_FORMAT"`

	// OutputDir receives recorded chunk files, relative to the working
	// directory unless absolute.
	OutputDir string `env:"PDFVOX_OUTPUT_DIR"`

	// MaxChunk bounds the length of text handed to the engine per call.
	MaxChunk int `env:"PDFVOX_MAX_CHUNK"`

	// EngineBinary overrides speech engine binary discovery.
	EngineBinary string `env:"PDFVOX_ENGINE"`
}

func Default() Settings {
	return Settings{
		Rate:       DefaultRate,
		Mode:       ModeSpeak,
		SaveFormat: FormatWAV,
		OutputDir:  DefaultOutDir,
		MaxChunk:   DefaultMaxChunk,
	}
}

// FromEnv returns the defaults with PDFVOX_* environment overrides applied.
func FromEnv() (Settings, error) {
	s := Default()
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Rate < RateMin || s.Rate > RateMax {
		return fmt.Errorf("rate %d out of range [%d, %d]", s.Rate, RateMin, RateMax)
	}
	switch s.Mode {
	case ModeSpeak, ModeRecord, ModeBoth:
	default:
		return fmt.Errorf("unknown mode %q", s.Mode)
	}
	switch s.SaveFormat {
	case FormatWAV, FormatMP3:
	default:
		return fmt.Errorf("unknown save format %q", s.SaveFormat)
	}
	if s.MaxChunk <= 0 {
		return fmt.Errorf("max chunk size must be positive, got %d", s.MaxChunk)
	}
	if s.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

// Recording reports whether the run writes audio files.
func (s Settings) Recording() bool {
	return s.Mode == ModeRecord || s.Mode == ModeBoth
}

// Speaking reports whether the run plays audio aloud.
func (s Settings) Speaking() bool {
	return s.Mode == ModeSpeak || s.Mode == ModeBoth
}

// UnmarshalText lets env overrides use the same spellings the wizard
// accepts ("b", "Both", "both", ...).
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
