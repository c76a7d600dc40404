package projection

import "google.golang.org/api/youtube/v3"

// CommentSource is a two-armed union over the inputs comment projection
// accepts: a raw API comment thread, or a comment that has already been
// projected. Exactly one arm is set.
type CommentSource struct {
	raw       *youtube.CommentThread
	projected *Comment
}

// RawComment wraps a raw API comment thread.
func RawComment(t *youtube.CommentThread) CommentSource {
	return CommentSource{raw: t}
}

// ProjectedComment wraps an already-projected comment. Projecting it again
// returns it unchanged.
func ProjectedComment(c Comment) CommentSource {
	return CommentSource{projected: &c}
}

// ProjectComment reduces a comment source to its minimal shape.
// An already-projected source passes through unchanged, which makes
// projection idempotent. A raw thread missing its snippet yields the
// best-effort thread ID and empty text rather than an error.
func ProjectComment(src CommentSource) Comment {
	if src.projected != nil {
		return *src.projected
	}

	var out Comment
	t := src.raw
	if t == nil {
		return out
	}

	out.ParentID = t.Id
	if t.Snippet == nil {
		return out
	}
	if t.Snippet.TopLevelComment != nil && t.Snippet.TopLevelComment.Snippet != nil {
		out.Text = t.Snippet.TopLevelComment.Snippet.TextDisplay
	}
	return out
}

// ProjectComments maps ProjectComment over a batch, preserving length and
// order. A malformed element never aborts the rest of the batch.
func ProjectComments(srcs []CommentSource) []Comment {
	out := make([]Comment, len(srcs))
	for i, src := range srcs {
		out[i] = ProjectComment(src)
	}
	return out
}

// ReplyText extracts the display text of a single reply. The parent is
// already known to the caller, so no linkage is kept.
func ReplyText(c *youtube.Comment) string {
	if c == nil || c.Snippet == nil {
		return ""
	}
	return c.Snippet.TextDisplay
}

// ReplyTexts maps ReplyText over a batch of replies, preserving order.
func ReplyTexts(comments []*youtube.Comment) []string {
	out := make([]string, len(comments))
	for i, c := range comments {
		out[i] = ReplyText(c)
	}
	return out
}
