package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playlistItemsResponse(n int) map[string]any {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"id": fmt.Sprintf("pli-%d", i),
			"snippet": map[string]any{
				"title":                  fmt.Sprintf("video %d", i),
				"position":               i,
				"videoOwnerChannelTitle": "uploader",
				"resourceId":             map[string]any{"videoId": fmt.Sprintf("vid-%d", i)},
			},
		}
	}
	return map[string]any{
		"kind":          "youtube#playlistItemListResponse",
		"pageInfo":      map[string]any{"totalResults": n, "resultsPerPage": 50},
		"nextPageToken": "next-tok",
		"items":         items,
	}
}

func TestGetPlaylistItems(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/playlistItems"))
		assert.Equal(t, "pl-1", r.URL.Query().Get("playlistId"))
		_ = json.NewEncoder(w).Encode(playlistItemsResponse(3))
	})

	items, pageInfo, err := client.GetPlaylistItems(context.Background(), "pl-1", 20, false)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "vid-0", items[0].VideoID)
	assert.Equal(t, int64(2), items[2].Position)
	assert.Zero(t, items[0].ViewCount)

	require.NotNil(t, pageInfo)
	assert.Equal(t, "next-tok", pageInfo.NextPageToken)
}

func TestGetPlaylistItemsWithStats(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/playlistItems"):
			_ = json.NewEncoder(w).Encode(playlistItemsResponse(2))
		case strings.HasSuffix(r.URL.Path, "/videos"):
			assert.Equal(t, "vid-0,vid-1", r.URL.Query().Get("id"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"id": "vid-0", "statistics": map[string]any{"viewCount": "111"}},
					{"id": "vid-1", "statistics": map[string]any{"viewCount": "222"}},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	items, _, err := client.GetPlaylistItems(context.Background(), "pl-1", 20, true)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint64(111), items[0].ViewCount)
	assert.Equal(t, uint64(222), items[1].ViewCount)
}

func TestGetPlaylistItemsStatsFailureFailsOperation(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/playlistItems") {
			_ = json.NewEncoder(w).Encode(playlistItemsResponse(2))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backendError"}}`))
	})

	// No partial aggregation: a failed stats fan-out fails the whole call.
	_, _, err := client.GetPlaylistItems(context.Background(), "pl-1", 20, true)
	require.Error(t, err)
	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)
}

func TestGetPlaylistNotFound(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	})

	playlist, err := client.GetPlaylist(context.Background(), "gone")
	require.NoError(t, err)
	assert.Nil(t, playlist)
}
