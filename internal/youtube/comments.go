package youtube

import (
	"context"
	"fmt"

	"github.com/ytkit/youtube-data-mcp/internal/projection"
)

// Comment thread pages are capped at 100 by the API.
const maxCommentResults = 100

// GetVideoComments retrieves one page of a video's top-level comment threads
// ordered by relevance, projected to {parentId, text}. Pagination metadata
// passes through from upstream unmodified.
func (c *Client) GetVideoComments(ctx context.Context, videoID string, maxResults int64, textFormat string) ([]projection.Comment, *projection.PageInfo, error) {
	if videoID == "" {
		return nil, nil, fmt.Errorf("videoId cannot be empty")
	}
	maxResults = clampMaxResults(maxResults, maxCommentResults)
	if textFormat == "" {
		textFormat = "plainText"
	}

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, nil, err
	}

	resp, err := service.CommentThreads.
		List([]string{"snippet"}).
		VideoId(videoID).
		Order("relevance").
		TextFormat(textFormat).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, upstreamErr("get video comments", err)
	}

	srcs := make([]projection.CommentSource, len(resp.Items))
	for i, thread := range resp.Items {
		srcs[i] = projection.RawComment(thread)
	}

	return projection.ProjectComments(srcs),
		projection.PageInfoFrom(resp.PageInfo, resp.NextPageToken), nil
}

// GetCommentReplies retrieves replies to one comment thread as bare text
// strings. The parent is already known to the caller, so no linkage is kept.
func (c *Client) GetCommentReplies(ctx context.Context, parentID string, maxResults int64, textFormat string) ([]string, *projection.PageInfo, error) {
	if parentID == "" {
		return nil, nil, fmt.Errorf("parentId cannot be empty")
	}
	maxResults = clampMaxResults(maxResults, maxCommentResults)
	if textFormat == "" {
		textFormat = "plainText"
	}

	service, err := c.ensureService(ctx)
	if err != nil {
		return nil, nil, err
	}

	resp, err := service.Comments.
		List([]string{"snippet"}).
		ParentId(parentID).
		TextFormat(textFormat).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, upstreamErr("get comment replies", err)
	}

	return projection.ReplyTexts(resp.Items),
		projection.PageInfoFrom(resp.PageInfo, resp.NextPageToken), nil
}
