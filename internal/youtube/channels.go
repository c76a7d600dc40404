package youtube

import (
	"context"
	"fmt"

	"github.com/ytkit/youtube-data-mcp/internal/projection"
)

// GetChannel retrieves a channel's snippet and statistics by ID.
// Returns nil, nil if the channel is not found (not an error).
func (c *Client) GetChannel(ctx context.Context, channelID string) (*projection.Channel, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channelId cannot be empty")
	}

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := service.Channels.
		List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamErr("get channel", err)
	}

	if len(resp.Items) == 0 {
		return nil, nil
	}

	channel := projection.ProjectChannel(resp.Items[0])
	return &channel, nil
}

// GetChannelVideos retrieves one page of a channel's uploads, newest first.
// Resolves the channel's uploads playlist first (1 unit), then lists it (1 unit).
func (c *Client) GetChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]projection.PlaylistItem, *projection.PageInfo, error) {
	if channelID == "" {
		return nil, nil, fmt.Errorf("channelId cannot be empty")
	}
	maxResults = clampMaxResults(maxResults, 50)

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, nil, err
	}

	channelsResp, err := service.Channels.
		List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, upstreamErr("get uploads playlist", err)
	}
	if len(channelsResp.Items) == 0 {
		return nil, nil, fmt.Errorf("channel %s not found", channelID)
	}

	cd := channelsResp.Items[0].ContentDetails
	if cd == nil || cd.RelatedPlaylists == nil || cd.RelatedPlaylists.Uploads == "" {
		return nil, nil, fmt.Errorf("channel %s has no uploads playlist", channelID)
	}

	resp, err := service.PlaylistItems.
		List([]string{"snippet"}).
		PlaylistId(cd.RelatedPlaylists.Uploads).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, upstreamErr("get channel videos", err)
	}

	return projection.ProjectPlaylistItems(resp.Items),
		projection.PageInfoFrom(resp.PageInfo, resp.NextPageToken), nil
}
