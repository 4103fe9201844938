// Package localwhisper runs a whisper.cpp style CLI binary to transcribe
// audio files on the local machine.
package localwhisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Config configures the local whisper CLI backend.
type Config struct {
	BinaryPath string // path to the whisper CLI binary
	ModelPath  string // path to the .bin model file
	Language   string // "" = auto-detect
	Threads    int    // CPU threads, 0 = CLI default
}

// Backend shells out to a whisper CLI binary. The subprocess is bounded by the
// request context, so a cancelled request kills the transcription.
type Backend struct {
	cfg Config
}

// New creates a local whisper backend. It fails when the binary or model file
// is missing so that startup can mark the engine unavailable instead of
// discovering the problem mid-request.
func New(cfg Config) (*Backend, error) {
	if _, err := os.Stat(cfg.BinaryPath); err != nil {
		return nil, fmt.Errorf("localwhisper: binary not found at %q: %w", cfg.BinaryPath, err)
	}
	if cfg.ModelPath != "" {
		if _, err := os.Stat(cfg.ModelPath); err != nil {
			return nil, fmt.Errorf("localwhisper: model not found at %q: %w", cfg.ModelPath, err)
		}
	}
	return &Backend{cfg: cfg}, nil
}

// Name returns the engine identifier.
func (b *Backend) Name() string { return "local_whisper" }

// whisperOutput mirrors the whisper CLI JSON output shape.
type whisperOutput struct {
	Transcription []struct {
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe invokes the whisper CLI on filePath and joins the transcribed
// segments into a single string.
func (b *Backend) Transcribe(ctx context.Context, filePath string) (string, error) {
	args := b.buildArgs(filePath)
	cmd := exec.CommandContext(ctx, b.cfg.BinaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("localwhisper: transcription cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("localwhisper: subprocess failed: %v (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	text, err := parseOutput(stdout.Bytes())
	if err != nil {
		return "", err
	}
	return text, nil
}

// buildArgs assembles the CLI arguments for one transcription run.
func (b *Backend) buildArgs(filePath string) []string {
	args := []string{"-f", filePath, "--output-json", "--no-prints"}
	if b.cfg.ModelPath != "" {
		args = append(args, "-m", b.cfg.ModelPath)
	}
	if b.cfg.Language != "" {
		args = append(args, "-l", b.cfg.Language)
	}
	if b.cfg.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(b.cfg.Threads))
	}
	return args
}

// parseOutput decodes the whisper CLI JSON and concatenates segment text.
func parseOutput(data []byte) (string, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("localwhisper: parsing CLI output: %w", err)
	}

	parts := make([]string, 0, len(out.Transcription))
	for _, seg := range out.Transcription {
		if s := strings.TrimSpace(seg.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}
