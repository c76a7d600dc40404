package registry

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/ytkit/youtube-data-mcp/internal/projection"
	"github.com/ytkit/youtube-data-mcp/internal/youtube"
)

// defaultMaxResults applies when a list operation is called without one.
const defaultMaxResults = 20

// Options are process-wide operation defaults.
type Options struct {
	// TranscriptLang is the caption language used when the caller gives none.
	TranscriptLang string
}

// commentsOutput is the comments_getVideoComments result shape.
type commentsOutput struct {
	Comments []projection.Comment `json:"comments"`
	PageInfo *projection.PageInfo `json:"pageInfo,omitempty"`
}

// New builds the tool table over the given client. The table never changes
// after this returns.
func New(client *youtube.Client, opts Options) *Registry {
	if opts.TranscriptLang == "" {
		opts.TranscriptLang = "en"
	}

	return NewStatic([]*Definition{
		{
			Name:        "videos_getVideo",
			Description: "Look up a YouTube video by ID. Returns title, channel, description, duration, publish date, and view/like counts.",
			InputSchema: objectSchema(
				[]string{"videoId"},
				map[string]*jsonschema.Schema{
					"videoId": stringProp("YouTube video ID to look up"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				videoID, _ := args.String("videoId")
				video, err := client.GetVideo(ctx, videoID)
				if err != nil {
					return nil, err
				}
				if video == nil {
					return nil, fmt.Errorf("video %s not found", videoID)
				}
				return video, nil
			},
		},
		{
			Name:        "videos_searchVideos",
			Description: "Search YouTube for videos matching a query. Returns one page of results. Each search costs 100 API quota units.",
			InputSchema: objectSchema(
				[]string{"query"},
				map[string]*jsonschema.Schema{
					"query":      stringProp("Search query"),
					"maxResults": intProp("Maximum results to return (default 20, max 50)"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				query, _ := args.String("query")
				videos, pageInfo, err := client.SearchVideos(ctx, query, args.Int64Or("maxResults", defaultMaxResults))
				if err != nil {
					return nil, err
				}
				return projection.Envelope{Data: videos, PageInfo: pageInfo}, nil
			},
		},
		{
			Name:        "videos_getTrendingVideos",
			Description: "Get the current most-popular videos for a region (default US).",
			InputSchema: objectSchema(
				nil,
				map[string]*jsonschema.Schema{
					"regionCode": stringProp("ISO 3166-1 alpha-2 region code (default US)"),
					"maxResults": intProp("Maximum results to return (default 20, max 50)"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				videos, pageInfo, err := client.GetTrendingVideos(ctx,
					args.StringOr("regionCode", ""),
					args.Int64Or("maxResults", defaultMaxResults))
				if err != nil {
					return nil, err
				}
				return projection.Envelope{Data: videos, PageInfo: pageInfo}, nil
			},
		},
		{
			Name:        "channels_getChannel",
			Description: "Look up a YouTube channel by ID. Returns title, description, and subscriber/video/view counts.",
			InputSchema: objectSchema(
				[]string{"channelId"},
				map[string]*jsonschema.Schema{
					"channelId": stringProp("YouTube channel ID to look up"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				channelID, _ := args.String("channelId")
				channel, err := client.GetChannel(ctx, channelID)
				if err != nil {
					return nil, err
				}
				if channel == nil {
					return nil, fmt.Errorf("channel %s not found", channelID)
				}
				return channel, nil
			},
		},
		{
			Name:        "channels_getChannelVideos",
			Description: "List a channel's most recent uploads.",
			InputSchema: objectSchema(
				[]string{"channelId"},
				map[string]*jsonschema.Schema{
					"channelId":  stringProp("YouTube channel ID"),
					"maxResults": intProp("Maximum results to return (default 20, max 50)"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				channelID, _ := args.String("channelId")
				items, pageInfo, err := client.GetChannelVideos(ctx, channelID, args.Int64Or("maxResults", defaultMaxResults))
				if err != nil {
					return nil, err
				}
				return projection.Envelope{Data: items, PageInfo: pageInfo}, nil
			},
		},
		{
			Name:        "playlists_getPlaylist",
			Description: "Look up a YouTube playlist by ID. Returns title, description, owner channel, and item count.",
			InputSchema: objectSchema(
				[]string{"playlistId"},
				map[string]*jsonschema.Schema{
					"playlistId": stringProp("YouTube playlist ID to look up"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				playlistID, _ := args.String("playlistId")
				playlist, err := client.GetPlaylist(ctx, playlistID)
				if err != nil {
					return nil, err
				}
				if playlist == nil {
					return nil, fmt.Errorf("playlist %s not found", playlistID)
				}
				return playlist, nil
			},
		},
		{
			Name:        "playlists_getPlaylistItems",
			Description: "List one page of a playlist's videos in playlist order. Optionally includes per-video view counts.",
			InputSchema: objectSchema(
				[]string{"playlistId"},
				map[string]*jsonschema.Schema{
					"playlistId":   stringProp("YouTube playlist ID"),
					"maxResults":   intProp("Maximum results to return (default 20, max 50)"),
					"includeStats": boolProp("Also fetch each video's view count (extra quota)"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				playlistID, _ := args.String("playlistId")
				items, pageInfo, err := client.GetPlaylistItems(ctx, playlistID,
					args.Int64Or("maxResults", defaultMaxResults),
					args.BoolOr("includeStats", false))
				if err != nil {
					return nil, err
				}
				return projection.Envelope{Data: items, PageInfo: pageInfo}, nil
			},
		},
		{
			Name:        "transcripts_getTranscript",
			Description: "Fetch a video's caption track as timed text segments.",
			InputSchema: objectSchema(
				[]string{"videoId"},
				map[string]*jsonschema.Schema{
					"videoId": stringProp("YouTube video ID"),
					"lang":    stringProp("Caption language code (default from server config)"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				videoID, _ := args.String("videoId")
				segments, err := client.GetTranscript(ctx, videoID, args.StringOr("lang", opts.TranscriptLang))
				if err != nil {
					return nil, err
				}
				return projection.Envelope{Data: segments}, nil
			},
		},
		{
			Name:        "comments_getVideoComments",
			Description: "Fetch one page of a video's top-level comments ordered by relevance, reduced to {parentId, text}.",
			InputSchema: objectSchema(
				[]string{"videoId"},
				map[string]*jsonschema.Schema{
					"videoId":    stringProp("YouTube video ID"),
					"maxResults": intProp("Maximum comment threads to return (default 20, max 100)"),
					"textFormat": enumProp("Comment text rendering", "plainText", "html"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				videoID, _ := args.String("videoId")
				comments, pageInfo, err := client.GetVideoComments(ctx, videoID,
					args.Int64Or("maxResults", defaultMaxResults),
					args.StringOr("textFormat", "plainText"))
				if err != nil {
					return nil, err
				}
				return commentsOutput{Comments: comments, PageInfo: pageInfo}, nil
			},
		},
		{
			Name:        "comments_getCommentReplies",
			Description: "Fetch replies to one comment thread as plain text strings.",
			InputSchema: objectSchema(
				[]string{"parentId"},
				map[string]*jsonschema.Schema{
					"parentId":   stringProp("Comment thread ID whose replies to fetch"),
					"maxResults": intProp("Maximum replies to return (default 20, max 100)"),
					"textFormat": enumProp("Reply text rendering", "plainText", "html"),
				},
			),
			Handler: func(ctx context.Context, args Args) (any, error) {
				parentID, _ := args.String("parentId")
				replies, _, err := client.GetCommentReplies(ctx, parentID,
					args.Int64Or("maxResults", defaultMaxResults),
					args.StringOr("textFormat", "plainText"))
				if err != nil {
					return nil, err
				}
				return replies, nil
			},
		},
	})
}

func objectSchema(required []string, props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func stringProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func intProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: desc}
}

func boolProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: desc}
}

func enumProp(desc string, values ...any) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc, Enum: values}
}
