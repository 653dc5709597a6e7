package main

import (
	"context"
	"fmt"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/pdfvox/pdfvox/pkg/config"
	"github.com/pdfvox/pdfvox/pkg/voice"
)

// ─── ANSI color helpers ────────────────────────────────────────────────────────

const (
	cReset = "\033[0m"
	cBold  = "\033[1m"
	cDim   = "\033[2m"
	cRed   = "\033[31m"
	cGreen = "\033[32m"
	cCyan  = "\033[36m"
)

func printStepHeader(current, total int, title string) {
	fmt.Println()
	fmt.Printf("  %s────────────────────────────────────────%s\n", cDim, cReset)
	fmt.Printf("  %sStep %d/%d%s  %s%s%s\n", cBold, current, total, cReset, cCyan, title, cReset)
	fmt.Printf("  %s────────────────────────────────────────%s\n", cDim, cReset)
}

func printInvalid(msg string) {
	fmt.Printf("  %sInvalid input: %s.%s\n", cRed, msg, cReset)
}

// ─── Settings wizard ───────────────────────────────────────────────────────────

// collectSettings walks the user through voice, rate, mode and save format.
// Every answer is gathered before any synthesis starts so playback is never
// interrupted by a prompt. Settings already pinned by a flag are not asked
// again. Invalid answers re-prompt forever; blank accepts the default.
func collectSettings(ctx context.Context, cmd *cobra.Command, cfg config.Settings, ffmpegFound bool) (config.Settings, error) {
	rl, err := readline.New("")
	if err != nil {
		return cfg, fmt.Errorf("opening terminal input: %w", err)
	}
	defer rl.Close()

	flags := cmd.Flags()
	total := len(plannedSteps(cmd, cfg, ffmpegFound))
	step := 0

	// Voice
	if !flags.Changed("voice") {
		step++
		printStepHeader(step, total, "Voice")
		voiceID, err := chooseVoice(ctx, rl, cfg)
		if err != nil {
			return cfg, err
		}
		cfg.VoiceID = voiceID
	}

	// Rate
	if !flags.Changed("rate") {
		step++
		printStepHeader(step, total, "Speed")
		rate, err := chooseRate(rl)
		if err != nil {
			return cfg, err
		}
		cfg.Rate = rate
	}

	// Mode
	if !flags.Changed("mode") {
		step++
		printStepHeader(step, total, "Mode")
		mode, err := chooseMode(rl)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}

	// Save format: only worth asking when recording and only when ffmpeg is
	// there to produce mp3. Otherwise the format is fixed without a prompt.
	if !flags.Changed("format") {
		cfg.SaveFormat = config.FormatWAV
		if cfg.Recording() && ffmpegFound {
			step++
			printStepHeader(step, total, "Save format")
			format, err := chooseFormat(rl)
			if err != nil {
				return cfg, err
			}
			cfg.SaveFormat = format
		}
	}

	return cfg, nil
}

// plannedSteps lists the wizard questions that will get asked, in order, so
// step headers count only them. The save-format question is counted while it
// can still happen: ffmpeg present, format not pinned by flag, and recording
// either already chosen or still up for choice in the mode step.
func plannedSteps(cmd *cobra.Command, cfg config.Settings, ffmpegFound bool) []string {
	flags := cmd.Flags()

	var steps []string
	if !flags.Changed("voice") {
		steps = append(steps, "Voice")
	}
	if !flags.Changed("rate") {
		steps = append(steps, "Speed")
	}
	modeAsked := !flags.Changed("mode")
	if modeAsked {
		steps = append(steps, "Mode")
	}
	if !flags.Changed("format") && ffmpegFound && (modeAsked || cfg.Recording()) {
		steps = append(steps, "Save format")
	}
	return steps
}

func chooseVoice(ctx context.Context, rl *readline.Instance, cfg config.Settings) (string, error) {
	voices, err := voice.NewEspeakEngine(cfg).Voices(ctx)
	if err != nil || len(voices) == 0 {
		fmt.Println("  No voices found. Using default voice.")
		return "", nil
	}

	fmt.Println("\n  Available voices:")
	for _, v := range voices {
		fmt.Printf("    [%d] %s %s(%s)%s\n", v.Index, v.Name, cDim, v.ID, cReset)
	}

	rl.SetPrompt(fmt.Sprintf("\n  %s?%s Choose a voice number (Enter for default): ", cCyan, cReset))
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		idx, perr := config.ParseVoiceChoice(line, len(voices))
		if perr != nil {
			printInvalid(perr.Error())
			continue
		}
		if idx < 0 {
			return "", nil
		}
		return voices[idx].ID, nil
	}
}

func chooseRate(rl *readline.Instance) (int, error) {
	rl.SetPrompt(fmt.Sprintf("  %s?%s Speed/rate in wpm, higher=faster (default %d): ", cCyan, cReset, config.DefaultRate))
	for {
		line, err := rl.Readline()
		if err != nil {
			return 0, err
		}
		rate, perr := config.ParseRate(line)
		if perr != nil {
			printInvalid(perr.Error())
			continue
		}
		return rate, nil
	}
}

func chooseMode(rl *readline.Instance) (config.Mode, error) {
	fmt.Println("  S = Speak only (no saving)")
	fmt.Println("  R = Record only (save audio, no speaking)")
	fmt.Println("  B = Both (speak + save)")

	rl.SetPrompt(fmt.Sprintf("  %s?%s Choose mode [S/R/B] (default S): ", cCyan, cReset))
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		mode, perr := config.ParseMode(line)
		if perr != nil {
			printInvalid(perr.Error())
			continue
		}
		return mode, nil
	}
}

func chooseFormat(rl *readline.Instance) (config.Format, error) {
	fmt.Println("  wav = Universal, but bigger files")
	fmt.Printf("  mp3 = Smaller files %s(ffmpeg detected %s✓%s)%s\n", cDim, cGreen, cDim, cReset)

	rl.SetPrompt(fmt.Sprintf("  %s?%s Choose save format [wav/mp3] (default wav): ", cCyan, cReset))
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		format, perr := config.ParseFormat(line)
		if perr != nil {
			printInvalid(perr.Error())
			continue
		}
		return format, nil
	}
}
