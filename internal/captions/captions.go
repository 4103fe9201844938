// Package captions fetches pre-existing caption tracks for a video. This is
// the fast path of transcript acquisition; every failure here is recoverable
// because the acquirer falls back to audio transcription.
package captions

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	youtube "github.com/kkdai/youtube/v2"
)

// ErrNoCaptions is returned when the video exposes no caption tracks.
var ErrNoCaptions = errors.New("captions: no caption tracks available")

// videoResolver is the slice of the YouTube client the service needs.
type videoResolver interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
}

// httpDoer issues the caption track download request.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service retrieves and flattens caption tracks.
type Service struct {
	yt       videoResolver
	http     httpDoer
	language string
}

// NewService creates a caption service. language is the preferred track
// language code prefix (e.g. "en"); when no track matches, the first track is
// used.
func NewService(client *youtube.Client, httpClient *http.Client, language string) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{yt: client, http: httpClient, language: language}
}

// Fetch returns the caption text for videoID: every entry of the selected
// track, in service order, joined by single spaces.
func (s *Service) Fetch(ctx context.Context, videoID string) (string, error) {
	video, err := s.yt.GetVideoContext(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("captions: resolving video %s: %w", videoID, err)
	}

	track := selectTrack(video.CaptionTracks, s.language)
	if track == nil {
		return "", ErrNoCaptions
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, track.BaseURL, nil)
	if err != nil {
		return "", fmt.Errorf("captions: building track request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("captions: downloading track for %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("captions: track download for %s returned status %d", videoID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("captions: reading track body: %w", err)
	}

	return parseTimedText(body)
}

// selectTrack prefers a track whose language code starts with lang, falling
// back to the first track. Returns nil when no tracks exist.
func selectTrack(tracks []youtube.CaptionTrack, lang string) *youtube.CaptionTrack {
	if len(tracks) == 0 {
		return nil
	}
	if lang != "" {
		for i := range tracks {
			if strings.HasPrefix(tracks[i].LanguageCode, lang) {
				return &tracks[i]
			}
		}
	}
	return &tracks[0]
}

// timedText mirrors the YouTube timedtext XML document.
type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Content string `xml:",chardata"`
	} `xml:"text"`
}

// parseTimedText flattens a timedtext document into a single line of text.
// Entries arrive HTML-escaped on top of the XML escaping, so each one is
// unescaped once more after decoding.
func parseTimedText(data []byte) (string, error) {
	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("captions: parsing timedtext: %w", err)
	}

	parts := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		content := strings.TrimSpace(html.UnescapeString(t.Content))
		if content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, " "), nil
}
