package youtube

import (
	"context"
	"fmt"

	"github.com/ytkit/youtube-data-mcp/internal/projection"
)

// GetVideo retrieves detailed information about a specific video by ID.
// Returns nil, nil if the video is not found (not an error).
// Costs only 1 quota unit.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*projection.Video, error) {
	if videoID == "" {
		return nil, fmt.Errorf("videoId cannot be empty")
	}

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := service.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamErr("get video", err)
	}

	// Video not found - not an error
	if len(resp.Items) == 0 {
		return nil, nil
	}

	video := projection.ProjectVideo(resp.Items[0])
	return &video, nil
}

// SearchVideos searches YouTube for videos matching the query.
// Returns only the first page of results to conserve quota (100 units per page).
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int64) ([]projection.Video, *projection.PageInfo, error) {
	if query == "" {
		return nil, nil, fmt.Errorf("query cannot be empty")
	}
	maxResults = clampMaxResults(maxResults, 50)

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, nil, err
	}

	resp, err := service.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, upstreamErr("search", err)
	}

	return projection.ProjectSearchResults(resp.Items),
		projection.PageInfoFrom(resp.PageInfo, resp.NextPageToken), nil
}

// GetTrendingVideos retrieves one page of the mostPopular chart for a region.
// regionCode defaults to "US" when empty.
func (c *Client) GetTrendingVideos(ctx context.Context, regionCode string, maxResults int64) ([]projection.Video, *projection.PageInfo, error) {
	if regionCode == "" {
		regionCode = "US"
	}
	maxResults = clampMaxResults(maxResults, 50)

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, nil, err
	}

	resp, err := service.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Chart("mostPopular").
		RegionCode(regionCode).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, upstreamErr("get trending videos", err)
	}

	return projection.ProjectVideos(resp.Items),
		projection.PageInfoFrom(resp.PageInfo, resp.NextPageToken), nil
}
