// Package openaiwhisper transcribes audio through the OpenAI Whisper API.
package openaiwhisper

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// transcriber is the slice of the OpenAI client the backend needs; tests
// substitute a fake.
type transcriber interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// Backend sends audio files to the hosted Whisper model.
type Backend struct {
	client transcriber
}

// New creates a Whisper API backend from a configured OpenAI client.
func New(client *openai.Client) *Backend {
	return &Backend{client: client}
}

// Name returns the engine identifier.
func (b *Backend) Name() string { return "openai_whisper" }

// Transcribe uploads the audio file and returns the transcribed text.
func (b *Backend) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := b.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	})
	if err != nil {
		return "", fmt.Errorf("openaiwhisper: transcription request failed: %w", err)
	}
	return resp.Text, nil
}
