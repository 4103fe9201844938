package localwhisper

import (
	"strings"
	"testing"
)

func TestNewMissingBinary(t *testing.T) {
	_, err := New(Config{BinaryPath: "/nonexistent/whisper"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestBuildArgs(t *testing.T) {
	b := &Backend{cfg: Config{
		BinaryPath: "/usr/local/bin/whisper",
		ModelPath:  "/models/ggml-small.bin",
		Language:   "en",
		Threads:    4,
	}}

	args := strings.Join(b.buildArgs("/tmp/audio.m4a"), " ")

	for _, want := range []string{
		"-f /tmp/audio.m4a",
		"-m /models/ggml-small.bin",
		"-l en",
		"-t 4",
		"--output-json",
	} {
		if !strings.Contains(args, want) {
			t.Errorf("args %q missing %q", args, want)
		}
	}
}

func TestBuildArgsOmitsUnsetOptions(t *testing.T) {
	b := &Backend{cfg: Config{BinaryPath: "/usr/local/bin/whisper"}}

	args := strings.Join(b.buildArgs("/tmp/audio.m4a"), " ")

	if strings.Contains(args, "-m ") || strings.Contains(args, "-l ") || strings.Contains(args, "-t ") {
		t.Errorf("args %q contain options that were not configured", args)
	}
}

func TestParseOutput(t *testing.T) {
	data := []byte(`{"transcription":[{"text":" Hello there. "},{"text":"General Kenobi."},{"text":"  "}]}`)

	got, err := parseOutput(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Hello there. General Kenobi."
	if got != want {
		t.Errorf("parseOutput = %q, want %q", got, want)
	}
}

func TestParseOutputInvalidJSON(t *testing.T) {
	if _, err := parseOutput([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseOutputEmptyTranscription(t *testing.T) {
	got, err := parseOutput([]byte(`{"transcription":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("parseOutput = %q, want empty", got)
	}
}
