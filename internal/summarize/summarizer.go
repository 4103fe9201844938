// Package summarize wraps a long-context text-generation model behind a
// bounded-length summarization adapter.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable is returned when the summarization model is not configured.
var ErrUnavailable = errors.New("summarize: summarization model not available")

const (
	// DefaultMaxInputWords caps what is sent to the model. Longer transcripts
	// are truncated silently, so summaries of very long videos cover only a
	// prefix of the text. Known limitation, kept deliberately.
	DefaultMaxInputWords = 4096

	// DefaultMaxSummaryTokens bounds the generated summary length.
	DefaultMaxSummaryTokens = 500

	systemPrompt = "You are a summarization engine. Produce a detailed summary of the transcript you are given. Respond with the summary only."
)

// chatCompleter is the slice of the OpenAI client the adapter needs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Summarizer produces bounded-length summaries of cleaned transcripts.
type Summarizer struct {
	client           chatCompleter
	model            string
	maxInputWords    int
	maxSummaryTokens int
}

// New creates a summarizer. A nil client represents a model that failed to
// load: calls report ErrUnavailable instead of crashing.
func New(client *openai.Client, model string) *Summarizer {
	s := &Summarizer{
		model:            model,
		maxInputWords:    DefaultMaxInputWords,
		maxSummaryTokens: DefaultMaxSummaryTokens,
	}
	if client != nil {
		s.client = client
	}
	return s
}

// Summarize generates a summary of text. Input beyond the word cap is dropped
// before the model call; the caller is not told.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}

	truncated := truncateWords(text, s.maxInputWords)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxSummaryTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "summarize: " + truncated},
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarize: generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("summarize: model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// truncateWords keeps the first max whitespace-separated words of s.
func truncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}
