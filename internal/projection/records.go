package projection

import "google.golang.org/api/youtube/v3"

// ProjectVideo reduces a raw video record to its minimal shape.
// Missing snippet, contentDetails, or statistics default to zero values.
func ProjectVideo(v *youtube.Video) Video {
	var out Video
	if v == nil {
		return out
	}
	out.ID = v.Id
	if v.Snippet != nil {
		out.Title = v.Snippet.Title
		out.ChannelTitle = v.Snippet.ChannelTitle
		out.Description = v.Snippet.Description
		out.PublishedAt = v.Snippet.PublishedAt
	}
	if v.ContentDetails != nil {
		out.Duration = v.ContentDetails.Duration
	}
	if v.Statistics != nil {
		out.ViewCount = v.Statistics.ViewCount
		out.LikeCount = v.Statistics.LikeCount
	}
	return out
}

// ProjectVideos maps ProjectVideo over a batch, preserving length and order.
func ProjectVideos(vs []*youtube.Video) []Video {
	out := make([]Video, len(vs))
	for i, v := range vs {
		out[i] = ProjectVideo(v)
	}
	return out
}

// ProjectSearchResult reduces a raw search result to the minimal video shape.
// Search results carry no duration or statistics.
func ProjectSearchResult(r *youtube.SearchResult) Video {
	var out Video
	if r == nil {
		return out
	}
	if r.Id != nil {
		out.ID = r.Id.VideoId
	}
	if r.Snippet != nil {
		out.Title = r.Snippet.Title
		out.ChannelTitle = r.Snippet.ChannelTitle
		out.Description = r.Snippet.Description
		out.PublishedAt = r.Snippet.PublishedAt
	}
	return out
}

// ProjectSearchResults maps ProjectSearchResult over a batch in order.
func ProjectSearchResults(rs []*youtube.SearchResult) []Video {
	out := make([]Video, len(rs))
	for i, r := range rs {
		out[i] = ProjectSearchResult(r)
	}
	return out
}

// ProjectChannel reduces a raw channel record to its minimal shape.
func ProjectChannel(ch *youtube.Channel) Channel {
	var out Channel
	if ch == nil {
		return out
	}
	out.ID = ch.Id
	if ch.Snippet != nil {
		out.Title = ch.Snippet.Title
		out.Description = ch.Snippet.Description
	}
	if ch.Statistics != nil {
		out.SubscriberCount = ch.Statistics.SubscriberCount
		out.VideoCount = ch.Statistics.VideoCount
		out.ViewCount = ch.Statistics.ViewCount
	}
	return out
}

// ProjectPlaylist reduces a raw playlist record to its minimal shape.
func ProjectPlaylist(p *youtube.Playlist) Playlist {
	var out Playlist
	if p == nil {
		return out
	}
	out.ID = p.Id
	if p.Snippet != nil {
		out.Title = p.Snippet.Title
		out.Description = p.Snippet.Description
		out.ChannelTitle = p.Snippet.ChannelTitle
	}
	if p.ContentDetails != nil {
		out.ItemCount = p.ContentDetails.ItemCount
	}
	return out
}

// ProjectPlaylistItem reduces a raw playlist entry to its minimal shape.
func ProjectPlaylistItem(item *youtube.PlaylistItem) PlaylistItem {
	var out PlaylistItem
	if item == nil || item.Snippet == nil {
		return out
	}
	if item.Snippet.ResourceId != nil {
		out.VideoID = item.Snippet.ResourceId.VideoId
	}
	out.Title = item.Snippet.Title
	out.ChannelTitle = item.Snippet.VideoOwnerChannelTitle
	out.Position = item.Snippet.Position
	return out
}

// ProjectPlaylistItems maps ProjectPlaylistItem over a batch in order.
func ProjectPlaylistItems(items []*youtube.PlaylistItem) []PlaylistItem {
	out := make([]PlaylistItem, len(items))
	for i, item := range items {
		out[i] = ProjectPlaylistItem(item)
	}
	return out
}
