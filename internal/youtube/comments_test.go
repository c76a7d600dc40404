package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// newFakeAPI builds a client pointed at an httptest server that serves the
// given handler for every Data API call.
func newFakeAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", option.WithEndpoint(srv.URL+"/"))
}

func commentThreadsResponse(n int) map[string]any {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"id": fmt.Sprintf("thread-%d", i),
			"snippet": map[string]any{
				"topLevelComment": map[string]any{
					"snippet": map[string]any{
						"textDisplay": fmt.Sprintf("comment %d", i),
					},
				},
			},
		}
	}
	return map[string]any{
		"kind":     "youtube#commentThreadListResponse",
		"pageInfo": map[string]any{"totalResults": 57, "resultsPerPage": n},
		"items":    items,
	}
}

func TestGetVideoComments(t *testing.T) {
	var gotQuery map[string]string
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/commentThreads"), "unexpected path %s", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"videoId":    q.Get("videoId"),
			"order":      q.Get("order"),
			"textFormat": q.Get("textFormat"),
			"maxResults": q.Get("maxResults"),
		}
		_ = json.NewEncoder(w).Encode(commentThreadsResponse(10))
	})

	comments, pageInfo, err := client.GetVideoComments(context.Background(), "dQw4w9WgXcQ", 10, "")
	require.NoError(t, err)

	require.Len(t, comments, 10)
	for i, c := range comments {
		assert.Equal(t, fmt.Sprintf("thread-%d", i), c.ParentID)
		assert.Equal(t, fmt.Sprintf("comment %d", i), c.Text)
	}

	// pageInfo passes through unchanged from upstream.
	require.NotNil(t, pageInfo)
	assert.Equal(t, int64(57), pageInfo.TotalResults)

	assert.Equal(t, "dQw4w9WgXcQ", gotQuery["videoId"])
	assert.Equal(t, "relevance", gotQuery["order"])
	assert.Equal(t, "plainText", gotQuery["textFormat"])
	assert.Equal(t, "10", gotQuery["maxResults"])
}

func TestGetVideoCommentsDefaults(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("maxResults"))
		_ = json.NewEncoder(w).Encode(commentThreadsResponse(0))
	})

	_, _, err := client.GetVideoComments(context.Background(), "abc", 0, "")
	require.NoError(t, err)
}

func TestGetVideoCommentsUpstreamError(t *testing.T) {
	calls := 0
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(commentThreadsResponse(1))
	})

	_, _, err := client.GetVideoComments(context.Background(), "abc", 5, "")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "get video comments", upstream.Op)

	// The failure is local to the one call: the next call on the same client
	// succeeds.
	comments, _, err := client.GetVideoComments(context.Background(), "abc", 5, "")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestGetVideoCommentsEmptyID(t *testing.T) {
	client := NewClient("test-key")
	_, _, err := client.GetVideoComments(context.Background(), "", 5, "")
	assert.Error(t, err)
}

func TestGetCommentReplies(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/comments"), "unexpected path %s", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("parentId"))

		items := make([]map[string]any, 5)
		for i := range items {
			items[i] = map[string]any{
				"id":      fmt.Sprintf("reply-%d", i),
				"snippet": map[string]any{"textDisplay": fmt.Sprintf("reply %d", i)},
			}
		}
		// One reply without a snippet projects to "".
		items[3] = map[string]any{"id": "reply-3"}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"kind":  "youtube#commentListResponse",
			"items": items,
		})
	})

	replies, _, err := client.GetCommentReplies(context.Background(), "abc", 5, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"reply 0", "reply 1", "reply 2", "", "reply 4"}, replies)
}
