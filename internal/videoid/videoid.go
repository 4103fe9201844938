// Package videoid extracts the canonical 11-character video identifier from
// the YouTube URL shapes the service accepts.
package videoid

import "regexp"

// idPattern matches standard watch URLs (?v= or &v=), shortened youtu.be
// links, and embed-style /v/, /e/ and /embed/ paths. The capture group is the
// 11-character video id, terminated by a quote, '&', '?', '/' or whitespace.
var idPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/]+/.*/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// Extract returns the video id embedded in url. The second return value is
// false when no recognizable id is present; a malformed URL is the caller's
// client error, not a failure here.
func Extract(url string) (string, bool) {
	m := idPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}
