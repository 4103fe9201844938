package captions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	youtube "github.com/kkdai/youtube/v2"
)

type fakeResolver struct {
	video *youtube.Video
	err   error
}

func (f *fakeResolver) GetVideoContext(ctx context.Context, url string) (*youtube.Video, error) {
	return f.video, f.err
}

func trackWithURL(baseURL, lang string) youtube.CaptionTrack {
	t := youtube.CaptionTrack{}
	t.BaseURL = baseURL
	t.LanguageCode = lang
	return t
}

func TestParseTimedText(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.1">first line</text>
  <text start="2.1" dur="1.8"> second &amp;#39;quoted&amp;#39; line </text>
  <text start="3.9" dur="0.5"></text>
  <text start="4.4" dur="1.2">third</text>
</transcript>`)

	got, err := parseTimedText(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "first line second 'quoted' line third"
	if got != want {
		t.Errorf("parseTimedText = %q, want %q", got, want)
	}
}

func TestParseTimedTextInvalidXML(t *testing.T) {
	if _, err := parseTimedText([]byte("<not-closed")); err == nil {
		t.Fatal("expected error for malformed XML")
	}
}

func TestSelectTrack(t *testing.T) {
	en := trackWithURL("http://example/en", "en")
	enUS := trackWithURL("http://example/en-US", "en-US")
	de := trackWithURL("http://example/de", "de")

	if got := selectTrack(nil, "en"); got != nil {
		t.Errorf("selectTrack(nil) = %v, want nil", got)
	}
	if got := selectTrack([]youtube.CaptionTrack{de, enUS, en}, "en"); got == nil || got.BaseURL != "http://example/en-US" {
		t.Errorf("expected first en-prefixed track, got %v", got)
	}
	if got := selectTrack([]youtube.CaptionTrack{de}, "en"); got == nil || got.BaseURL != "http://example/de" {
		t.Errorf("expected fallback to first track, got %v", got)
	}
}

func TestFetchJoinsEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript><text>hello</text><text>world</text></transcript>`))
	}))
	defer srv.Close()

	video := &youtube.Video{CaptionTracks: []youtube.CaptionTrack{trackWithURL(srv.URL, "en")}}
	s := &Service{yt: &fakeResolver{video: video}, http: srv.Client(), language: "en"}

	got, err := s.Fetch(context.Background(), "AAAAAAAAAAA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("Fetch = %q, want %q", got, "hello world")
	}
}

func TestFetchNoTracks(t *testing.T) {
	s := &Service{yt: &fakeResolver{video: &youtube.Video{}}, http: http.DefaultClient, language: "en"}

	_, err := s.Fetch(context.Background(), "AAAAAAAAAAA")
	if !errors.Is(err, ErrNoCaptions) {
		t.Fatalf("expected ErrNoCaptions, got %v", err)
	}
}

func TestFetchResolverError(t *testing.T) {
	s := &Service{yt: &fakeResolver{err: errors.New("video unavailable")}, http: http.DefaultClient, language: "en"}

	if _, err := s.Fetch(context.Background(), "AAAAAAAAAAA"); err == nil {
		t.Fatal("expected error when video resolution fails")
	}
}

func TestFetchTrackDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	video := &youtube.Video{CaptionTracks: []youtube.CaptionTrack{trackWithURL(srv.URL, "en")}}
	s := &Service{yt: &fakeResolver{video: video}, http: srv.Client(), language: "en"}

	if _, err := s.Fetch(context.Background(), "AAAAAAAAAAA"); err == nil {
		t.Fatal("expected error for non-200 track response")
	}
}
