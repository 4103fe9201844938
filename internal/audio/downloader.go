// Package audio downloads the audio-only stream of a video into a temporary
// file for speech-to-text transcription.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	youtube "github.com/kkdai/youtube/v2"
)

// ErrNoAudioStream is returned when the video has no audio-only format.
var ErrNoAudioStream = errors.New("audio: no audio-only stream available")

// streamClient is the slice of the YouTube client the downloader needs.
type streamClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// Downloader fetches audio-only streams into per-request temp files.
type Downloader struct {
	yt      streamClient
	tempDir string
}

// NewDownloader creates a downloader that writes artifacts under tempDir.
func NewDownloader(client *youtube.Client, tempDir string) *Downloader {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Downloader{yt: client, tempDir: tempDir}
}

// Download fetches the first audio-only stream of videoID to a unique temp
// file and returns its path. The caller owns the file and is responsible for
// removing it. Paths embed a fresh uuid so concurrent requests for the same
// video never race on one file.
func (d *Downloader) Download(ctx context.Context, videoID string) (string, error) {
	video, err := d.yt.GetVideoContext(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("audio: resolving video %s: %w", videoID, err)
	}

	format := selectAudioFormat(video.Formats)
	if format == nil {
		return "", ErrNoAudioStream
	}

	stream, _, err := d.yt.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("audio: opening stream for %s: %w", videoID, err)
	}
	defer stream.Close()

	if err := os.MkdirAll(d.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("audio: creating temp dir: %w", err)
	}

	path := filepath.Join(d.tempDir, artifactName(videoID, format.MimeType))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("audio: creating artifact file: %w", err)
	}

	if _, err := io.Copy(file, stream); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("audio: downloading stream for %s: %w", videoID, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("audio: closing artifact file: %w", err)
	}

	return path, nil
}

// selectAudioFormat picks the first audio-only format, preferring opus in
// webm, then any webm audio, then mp4 audio.
func selectAudioFormat(formats youtube.FormatList) *youtube.Format {
	var chosen *youtube.Format
	for i := range formats {
		mime := formats[i].MimeType
		switch {
		case strings.HasPrefix(mime, "audio/webm; codecs=\"opus\""):
			return &formats[i]
		case strings.HasPrefix(mime, "audio/webm") && chosen == nil:
			chosen = &formats[i]
		case strings.HasPrefix(mime, "audio/mp4") && chosen == nil:
			chosen = &formats[i]
		}
	}
	return chosen
}

// artifactName builds a per-request unique file name for the artifact.
func artifactName(videoID, mimeType string) string {
	ext := ".m4a"
	if strings.HasPrefix(mimeType, "audio/webm") {
		ext = ".webm"
	}
	return fmt.Sprintf("%s-%s%s", videoID, uuid.NewString(), ext)
}
