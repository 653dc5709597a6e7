package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdfvox/pdfvox/pkg/config"
	"github.com/pdfvox/pdfvox/pkg/logger"
	"github.com/pdfvox/pdfvox/pkg/pdftext"
	"github.com/pdfvox/pdfvox/pkg/picker"
	"github.com/pdfvox/pdfvox/pkg/session"
	"github.com/pdfvox/pdfvox/pkg/transcode"
	"github.com/pdfvox/pdfvox/pkg/voice"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
)

func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

func main() {
	root := newRootCommand()
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

type runOptions struct {
	input          string
	voiceID        string
	rate           int
	mode           string
	format         string
	outputDir      string
	maxChunk       int
	nonInteractive bool
	debug          bool
	logFile        string
}

func newRootCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:          "pdfvox",
		Short:        "Read a PDF aloud or record it as audio files",
		Long:         "pdfvox extracts the text layer of a PDF and feeds it to a local speech engine,\nspeaking it aloud, recording it as chunked audio files, or both.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "PDF path (skips the file dialog)")
	cmd.Flags().StringVar(&opts.voiceID, "voice", "", "engine voice id (skips the voice prompt)")
	cmd.Flags().IntVar(&opts.rate, "rate", config.DefaultRate, "speaking rate in wpm (80-350)")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "speak, record, or both")
	cmd.Flags().StringVar(&opts.format, "format", "", "save format: wav or mp3")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "directory for recorded chunks")
	cmd.Flags().IntVar(&opts.maxChunk, "max-chunk", config.DefaultMaxChunk, "max characters per synthesis chunk")
	cmd.Flags().BoolVarP(&opts.nonInteractive, "non-interactive", "n", false, "skip all prompts, use flags/env/defaults")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "also write structured logs to this file")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("pdfvox %s\n", formatVersion())
			if buildTime != "" {
				fmt.Printf("  Build: %s\n", buildTime)
			}
			fmt.Printf("  Go: %s\n", runtime.Version())
		},
	}
}

func run(cmd *cobra.Command, opts runOptions) error {
	if opts.debug {
		logger.SetLevel(logger.DEBUG)
	} else {
		logger.SetLevel(logger.WARN)
	}
	if opts.logFile != "" {
		if err := logger.EnableFileLogging(opts.logFile); err != nil {
			return err
		}
		defer logger.DisableFileLogging()
	}

	runID := uuid.NewString()
	logger.DebugCF("main", "starting run", map[string]any{"run_id": runID})

	cfg, err := settingsFromFlags(cmd, opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pdfPath, err := selectPDF(opts.input)
	if err != nil {
		return err
	}
	fmt.Println("Selected:", pdfPath)

	text, err := pdftext.Extract(pdfPath)
	if err != nil {
		return err
	}
	if text == "" {
		// Settings are never collected and no engine is built for an
		// unreadable document.
		return fmt.Errorf("no extractable text found in this PDF\nIf it's a scanned PDF (image-only), you'll need OCR first")
	}
	fmt.Println("TOTAL chars:", len(text))

	ffmpegFound := transcode.Detect()

	if !opts.nonInteractive {
		cfg, err = collectSettings(ctx, cmd, cfg, ffmpegFound)
		if err != nil {
			return err
		}
	}

	cfg = applyFormatPolicy(cfg, ffmpegFound)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.DebugCF("main", "settings collected", map[string]any{
		"run_id": runID,
		"mode":   cfg.Mode,
		"rate":   cfg.Rate,
		"format": cfg.SaveFormat,
	})

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	runner := session.NewRunner(cfg, voice.NewEngine)

	if _, err := runner.Run(ctx, stem, text); err != nil {
		return err
	}
	return nil
}

// settingsFromFlags layers explicit flags over env overrides over defaults.
// Only flags the user actually set win over the environment.
func settingsFromFlags(cmd *cobra.Command, opts runOptions) (config.Settings, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("voice") {
		cfg.VoiceID = opts.voiceID
	}
	if flags.Changed("rate") {
		cfg.Rate = opts.rate
	}
	if flags.Changed("mode") {
		mode, err := config.ParseMode(opts.mode)
		if err != nil {
			return config.Settings{}, fmt.Errorf("--mode: %w", err)
		}
		cfg.Mode = mode
	}
	if flags.Changed("format") {
		format, err := config.ParseFormat(opts.format)
		if err != nil {
			return config.Settings{}, fmt.Errorf("--format: %w", err)
		}
		cfg.SaveFormat = format
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("max-chunk") {
		cfg.MaxChunk = opts.maxChunk
	}

	return cfg, cfg.Validate()
}

// applyFormatPolicy pins the save format to the universal one whenever mp3
// cannot be produced (no ffmpeg) or is irrelevant (nothing is recorded).
// This holds no matter how the format was chosen: wizard, flag, or env.
func applyFormatPolicy(cfg config.Settings, ffmpegFound bool) config.Settings {
	if cfg.SaveFormat == config.FormatMP3 && !ffmpegFound {
		cfg.SaveFormat = config.FormatWAV
	}
	if !cfg.Recording() {
		cfg.SaveFormat = config.FormatWAV
	}
	return cfg
}

func selectPDF(input string) (string, error) {
	if input != "" {
		abs, err := filepath.Abs(input)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", input, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", fmt.Errorf("cannot read %s: %w", abs, err)
		}
		return abs, nil
	}

	path, err := picker.PickPDF()
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			return "", fmt.Errorf("no PDF selected, exiting")
		}
		return "", err
	}
	return path, nil
}
