package youtube

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ytkit/youtube-data-mcp/internal/projection"
)

// GetPlaylist retrieves a playlist's snippet and item count by ID.
// Returns nil, nil if the playlist is not found (not an error).
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*projection.Playlist, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("playlistId cannot be empty")
	}

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := service.Playlists.
		List([]string{"snippet", "contentDetails"}).
		Id(playlistID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamErr("get playlist", err)
	}

	if len(resp.Items) == 0 {
		return nil, nil
	}

	playlist := projection.ProjectPlaylist(resp.Items[0])
	return &playlist, nil
}

// GetPlaylistItems retrieves one page of a playlist's entries in playlist
// order. When includeStats is set, per-video view counts are fetched
// concurrently in batches of 50 and joined before projecting; any failed
// batch fails the whole operation.
func (c *Client) GetPlaylistItems(ctx context.Context, playlistID string, maxResults int64, includeStats bool) ([]projection.PlaylistItem, *projection.PageInfo, error) {
	if playlistID == "" {
		return nil, nil, fmt.Errorf("playlistId cannot be empty")
	}
	maxResults = clampMaxResults(maxResults, 50)

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, nil, err
	}

	resp, err := service.PlaylistItems.
		List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, upstreamErr("get playlist items", err)
	}

	items := projection.ProjectPlaylistItems(resp.Items)
	pageInfo := projection.PageInfoFrom(resp.PageInfo, resp.NextPageToken)

	if !includeStats || len(items) == 0 {
		return items, pageInfo, nil
	}

	viewCounts, err := c.fetchViewCounts(ctx, items)
	if err != nil {
		return nil, nil, err
	}
	for i := range items {
		items[i].ViewCount = viewCounts[items[i].VideoID]
	}

	return items, pageInfo, nil
}

// fetchViewCounts fetches view counts for the given items' videos.
// Batches of 50 are fetched concurrently; the first failure cancels the rest.
func (c *Client) fetchViewCounts(ctx context.Context, items []projection.PlaylistItem) (map[string]uint64, error) {
	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.VideoID != "" {
			ids = append(ids, item.VideoID)
		}
	}

	const batchSize = 50
	batches := make([][]string, 0, (len(ids)+batchSize-1)/batchSize)
	for i := 0; i < len(ids); i += batchSize {
		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[i:end])
	}

	results := make([]map[string]uint64, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			resp, err := service.Videos.
				List([]string{"statistics"}).
				Id(batch...).
				Fields("items(id,statistics/viewCount)").
				Context(gctx).
				Do()
			if err != nil {
				return upstreamErr("get video statistics", err)
			}
			counts := make(map[string]uint64, len(resp.Items))
			for _, v := range resp.Items {
				if v.Statistics != nil {
					counts[v.Id] = v.Statistics.ViewCount
				}
			}
			results[i] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]uint64, len(ids))
	for _, counts := range results {
		for id, n := range counts {
			merged[id] = n
		}
	}
	return merged, nil
}
