// Package stt defines the speech-to-text engine abstraction used by the
// transcript acquirer's audio fallback path.
package stt

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no usable engine is configured. A missing
// model is a degraded state, not a crash: requests that need it fail with a
// descriptive error instead.
var ErrUnavailable = errors.New("stt: no speech-to-text engine available")

// Engine transcribes a local audio file into plain text.
type Engine interface {
	Name() string
	Transcribe(ctx context.Context, filePath string) (string, error)
}
