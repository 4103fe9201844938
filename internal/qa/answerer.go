// Package qa wraps an extractive question-answering capability: answers are
// drawn from the supplied transcript, not generated freely.
package qa

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable is returned when the QA model is not configured.
var ErrUnavailable = errors.New("qa: question-answering model not available")

const (
	// maxContextWords bounds the transcript context sent with each question.
	maxContextWords = 4096

	systemPrompt = "You answer questions about a transcript. Answer using only words and facts found in the transcript. Reply with the shortest span of the transcript that answers the question. If the transcript does not contain the answer, reply with 'unknown'."
)

// chatCompleter is the slice of the OpenAI client the adapter needs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Answerer answers questions against a transcript context.
type Answerer struct {
	client chatCompleter
	model  string
}

// New creates an answerer. A nil client represents a model that failed to
// load: calls report ErrUnavailable instead of crashing.
func New(client *openai.Client, model string) *Answerer {
	a := &Answerer{model: model}
	if client != nil {
		a.client = client
	}
	return a
}

// Answer returns an answer span for question given the transcript context.
func (a *Answerer) Answer(ctx context.Context, transcript, question string) (string, error) {
	if a.client == nil {
		return "", ErrUnavailable
	}

	transcript = truncateWords(transcript, maxContextWords)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Transcript:\n%s\n\nQuestion: %s", transcript, question)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("qa: answering failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("qa: model returned no choices")
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
