// Package transcript orchestrates transcript acquisition: captions first,
// then audio download plus speech-to-text when no usable captions exist.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// ErrNoTranscript is returned when neither acquisition path yields text.
var ErrNoTranscript = errors.New("transcript: no transcript available")

// CaptionFetcher is the fast path: pre-existing caption tracks.
type CaptionFetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// AudioDownloader produces a local audio artifact for a video. The returned
// path is owned by the acquirer for the rest of the request.
type AudioDownloader interface {
	Download(ctx context.Context, videoID string) (string, error)
}

// Transcriber converts an audio artifact into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

// Acquirer runs the ordered fallback chain.
type Acquirer struct {
	captions CaptionFetcher
	audio    AudioDownloader
	stt      Transcriber
	log      *logrus.Logger
}

// NewAcquirer wires the fallback chain from its three collaborators.
func NewAcquirer(captions CaptionFetcher, audio AudioDownloader, stt Transcriber, log *logrus.Logger) *Acquirer {
	return &Acquirer{captions: captions, audio: audio, stt: stt, log: log}
}

// Acquire returns the transcript for videoID, trying captions first and
// falling back to audio transcription. Caption failures of any kind, and
// empty caption results, fall through to the audio path; the empty-result
// fallthrough mirrors the behavior this service replaced. A failure on the
// audio path is an overall failure wrapping ErrNoTranscript.
func (a *Acquirer) Acquire(ctx context.Context, videoID string) (string, error) {
	text, err := a.captions.Fetch(ctx, videoID)
	if err == nil && text != "" {
		a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "captions"}).
			Info("Transcript acquired from caption track")
		return text, nil
	}
	if err != nil {
		a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "captions"}).
			WithError(err).Warn("Caption retrieval failed, falling back to audio transcription")
	} else {
		a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "captions"}).
			Warn("Caption track was empty, falling back to audio transcription")
	}

	audioPath, err := a.audio.Download(ctx, videoID)
	if err != nil {
		a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "audio_download"}).
			WithError(err).Error("Audio download failed")
		return "", fmt.Errorf("%w: audio download failed: %v", ErrNoTranscript, err)
	}
	// The artifact is removed whether or not transcription succeeds.
	defer func() {
		if rmErr := os.Remove(audioPath); rmErr != nil && !os.IsNotExist(rmErr) {
			a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "cleanup"}).
				WithError(rmErr).Warn("Failed to remove audio artifact")
		}
	}()

	text, err = a.stt.Transcribe(ctx, audioPath)
	if err != nil {
		a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "transcription"}).
			WithError(err).Error("Audio transcription failed")
		return "", fmt.Errorf("%w: transcription failed: %v", ErrNoTranscript, err)
	}
	if text == "" {
		a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "transcription"}).
			Error("Audio transcription produced no text")
		return "", ErrNoTranscript
	}

	a.log.WithFields(logrus.Fields{"video_id": videoID, "stage": "transcription"}).
		Info("Transcript generated from audio")
	return text, nil
}
