package handlers

import (
	"context"

	"github.com/sirupsen/logrus"
)

// TranscriptAcquirer produces a raw transcript for a video id, or fails when
// neither captions nor audio transcription yield text.
type TranscriptAcquirer interface {
	Acquire(ctx context.Context, videoID string) (string, error)
}

// Summarizer produces a bounded-length summary of cleaned transcript text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Answerer answers a question against cleaned transcript text.
type Answerer interface {
	Answer(ctx context.Context, transcript, question string) (string, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Acquirer   TranscriptAcquirer
	Summarizer Summarizer
	Answerer   Answerer
	Logger     *logrus.Logger
}

// NewApplicationHandler creates an ApplicationHandler with the given dependencies.
func NewApplicationHandler(acquirer TranscriptAcquirer, summarizer Summarizer, answerer Answerer, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Acquirer:   acquirer,
		Summarizer: summarizer,
		Answerer:   answerer,
		Logger:     logger,
	}
}
