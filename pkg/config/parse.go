package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse helpers for interactive input. Each one maps a raw line to a
// validated value, with blank input meaning "take the default". Errors are
// recoverable: the prompt loop reports them and asks again.

// ParseRate validates a speaking-rate answer. Blank returns DefaultRate.
func ParseRate(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultRate, nil
	}
	r, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("enter a number between %d and %d (or press Enter)", RateMin, RateMax)
	}
	if r < RateMin || r > RateMax {
		return 0, fmt.Errorf("enter a number between %d and %d (or press Enter)", RateMin, RateMax)
	}
	return r, nil
}

// ParseMode validates a mode answer. Accepts single letters or full words,
// case-insensitive. Blank returns ModeSpeak.
func ParseMode(input string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return ModeSpeak, nil
	case "s", "speak":
		return ModeSpeak, nil
	case "r", "record":
		return ModeRecord, nil
	case "b", "both":
		return ModeBoth, nil
	}
	return "", fmt.Errorf("choose S, R, or B")
}

// ParseFormat validates a save-format answer. Blank returns FormatWAV.
func ParseFormat(input string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return FormatWAV, nil
	case "wav":
		return FormatWAV, nil
	case "mp3":
		return FormatMP3, nil
	}
	return "", fmt.Errorf("choose wav or mp3")
}

// ParseVoiceChoice validates a voice-menu answer against the number of
// listed voices. Blank returns -1, meaning the engine default voice.
func ParseVoiceChoice(input string, voiceCount int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return -1, nil
	}
	i, err := strconv.Atoi(input)
	if err != nil || i < 0 || i >= voiceCount {
		return 0, fmt.Errorf("pick a voice number between 0 and %d (or press Enter)", voiceCount-1)
	}
	return i, nil
}
