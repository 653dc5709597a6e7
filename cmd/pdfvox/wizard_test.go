package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfvox/pdfvox/pkg/config"
)

func TestPlannedSteps_AllQuestions(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	steps := plannedSteps(cmd, config.Default(), true)

	assert.Equal(t, []string{"Voice", "Speed", "Mode", "Save format"}, steps)
}

func TestPlannedSteps_SkipsFlagPinnedQuestions(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--voice", "en-gb"}))

	steps := plannedSteps(cmd, config.Default(), true)

	// A pinned voice leaves three questions; the first one asked gets
	// numbered 1, not 2.
	assert.Equal(t, []string{"Speed", "Mode", "Save format"}, steps)
}

func TestPlannedSteps_NoFormatStepWithoutFfmpeg(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--mode", "record"}))

	cfg := config.Default()
	cfg.Mode = config.ModeRecord

	steps := plannedSteps(cmd, cfg, false)

	assert.NotContains(t, steps, "Save format")
	assert.Equal(t, []string{"Voice", "Speed"}, steps)
}

func TestPlannedSteps_NoFormatStepForPinnedSpeakMode(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--mode", "s"}))

	steps := plannedSteps(cmd, config.Default(), true)

	assert.Equal(t, []string{"Voice", "Speed"}, steps)
}

func TestPlannedSteps_FormatStepForPinnedRecordMode(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--mode", "record"}))

	cfg := config.Default()
	cfg.Mode = config.ModeRecord

	steps := plannedSteps(cmd, cfg, true)

	assert.Equal(t, []string{"Voice", "Speed", "Save format"}, steps)
}
