package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/ytkit/youtube-data-mcp/internal/projection"
)

// watchBaseURL is overridable in tests.
var watchBaseURL = "https://www.youtube.com/watch"

// captionTrack is one entry of the watch page's captionTracks list.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated
}

// GetTranscript retrieves a video's caption track in the requested language.
// Captions are not exposed by the Data API with an API key, so the track list
// is discovered from the watch page and the timed-text XML fetched directly.
func (c *Client) GetTranscript(ctx context.Context, videoID, lang string) ([]projection.TranscriptSegment, error) {
	if videoID == "" {
		return nil, fmt.Errorf("videoId cannot be empty")
	}
	if lang == "" {
		lang = "en"
	}

	page, err := c.fetchURL(ctx, watchBaseURL+"?v="+videoID)
	if err != nil {
		return nil, upstreamErr("fetch watch page", err)
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return nil, upstreamErr("parse caption tracks", err)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no captions available for video %s", videoID)
	}

	track := pickTrack(tracks, lang)
	body, err := c.fetchURL(ctx, track.BaseURL)
	if err != nil {
		return nil, upstreamErr("fetch timed text", err)
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return nil, upstreamErr("parse timed text", err)
	}
	return segments, nil
}

func (c *Client) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parseCaptionTracks extracts the captionTracks JSON array embedded in the
// watch page's player response. Returns an empty slice when the page carries
// no captions section.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	const marker = `"captionTracks":`
	idx := strings.Index(string(page), marker)
	if idx < 0 {
		return nil, nil
	}

	rest := page[idx+len(marker):]
	end := balancedArrayEnd(rest)
	if end < 0 {
		return nil, fmt.Errorf("unterminated captionTracks array")
	}

	var tracks []captionTrack
	if err := json.Unmarshal(rest[:end], &tracks); err != nil {
		return nil, fmt.Errorf("malformed captionTracks: %w", err)
	}
	return tracks, nil
}

// balancedArrayEnd returns the index one past the JSON array starting at b[0],
// or -1 if the array never closes. Brackets inside strings are skipped.
func balancedArrayEnd(b []byte) int {
	if len(b) == 0 || b[0] != '[' {
		return -1
	}
	depth := 0
	inString := false
	for i := 0; i < len(b); i++ {
		if inString {
			switch b[i] {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch b[i] {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// pickTrack prefers an exact language match, then a manually created track
// over auto-generated, then falls back to the first track.
func pickTrack(tracks []captionTrack, lang string) captionTrack {
	var fallback *captionTrack
	for i := range tracks {
		t := &tracks[i]
		if t.LanguageCode != lang {
			continue
		}
		if t.Kind != "asr" {
			return *t
		}
		if fallback == nil {
			fallback = t
		}
	}
	if fallback != nil {
		return *fallback
	}
	return tracks[0]
}

// timedText mirrors the timed-text XML document shape.
type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

// parseTimedText decodes a timed-text XML document into ordered segments.
// Text bodies are HTML-entity escaped inside the XML, so unescape once more
// after decoding.
func parseTimedText(body []byte) ([]projection.TranscriptSegment, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("malformed timed text: %w", err)
	}

	segments := make([]projection.TranscriptSegment, len(doc.Texts))
	for i, line := range doc.Texts {
		segments[i] = projection.TranscriptSegment{
			Start:    line.Start,
			Duration: line.Dur,
			Text:     html.UnescapeString(line.Body),
		}
	}
	return segments, nil
}
