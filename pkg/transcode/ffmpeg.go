// Package transcode converts recorded WAV chunks to MP3 with ffmpeg.
// WAV is the universal format every engine can write; MP3 is offered only
// when ffmpeg is actually on the system.
package transcode

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdfvox/pdfvox/pkg/logger"
)

const ffmpegBinary = "ffmpeg"

// Detect reports whether ffmpeg is on PATH.
func Detect() bool {
	_, err := exec.LookPath(ffmpegBinary)
	return err == nil
}

// WavToMP3 converts one WAV file to MP3 next to it, blocking until ffmpeg
// exits. A non-zero exit is a hard error; the source WAV is left in place
// either way.
func WavToMP3(ctx context.Context, wavPath string) (string, error) {
	mp3Path := replaceExt(wavPath, ".mp3")

	logger.DebugCF("transcode", "converting", map[string]any{
		"in":  wavPath,
		"out": mp3Path,
	})

	cmd := exec.CommandContext(ctx, ffmpegBinary, "-y", "-i", wavPath, mp3Path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg %s: %w\n%s", wavPath, err, out)
	}
	return mp3Path, nil
}

func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i >= 0 && !strings.ContainsAny(path[i:], "/\\") {
		return path[:i] + ext
	}
	return path + ext
}
