// Package projection reduces raw YouTube API records to the minimal shapes
// returned to MCP callers. Projection is pure, order-preserving, and total:
// a malformed upstream record degrades to zero-valued fields instead of
// failing the batch.
package projection

import "google.golang.org/api/youtube/v3"

// PageInfo is pagination metadata passed through unmodified from upstream.
type PageInfo struct {
	TotalResults   int64  `json:"totalResults"`
	ResultsPerPage int64  `json:"resultsPerPage"`
	NextPageToken  string `json:"nextPageToken,omitempty"`
}

// Envelope is the normalized result shape for list operations.
type Envelope struct {
	Data     any       `json:"data"`
	PageInfo *PageInfo `json:"pageInfo,omitempty"`
}

// Comment is the minimal comment shape: the thread it belongs to and its text.
type Comment struct {
	ParentID string `json:"parentId"`
	Text     string `json:"text"`
}

// Video is the minimal video shape.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Description  string `json:"description"`
	Duration     string `json:"duration,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
	ViewCount    uint64 `json:"viewCount,omitempty"`
	LikeCount    uint64 `json:"likeCount,omitempty"`
}

// Channel is the minimal channel shape.
type Channel struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	SubscriberCount uint64 `json:"subscriberCount,omitempty"`
	VideoCount      uint64 `json:"videoCount,omitempty"`
	ViewCount       uint64 `json:"viewCount,omitempty"`
}

// Playlist is the minimal playlist shape.
type Playlist struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	ItemCount    int64  `json:"itemCount"`
}

// PlaylistItem is the minimal playlist entry shape. ViewCount is populated
// only when the caller asked for per-item statistics.
type PlaylistItem struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Position     int64  `json:"position"`
	ViewCount    uint64 `json:"viewCount,omitempty"`
}

// TranscriptSegment is one timed caption line.
type TranscriptSegment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// PageInfoFrom copies upstream pagination metadata. Returns nil when the
// response carried none.
func PageInfoFrom(pi *youtube.PageInfo, nextPageToken string) *PageInfo {
	if pi == nil && nextPageToken == "" {
		return nil
	}
	out := &PageInfo{NextPageToken: nextPageToken}
	if pi != nil {
		out.TotalResults = pi.TotalResults
		out.ResultsPerPage = pi.ResultsPerPage
	}
	return out
}
