package playlist

import "context"

// Lister defines the interface for playlist listing operations
type Lister interface {
	// ListVideos returns every video of the playlist, sorted by position
	ListVideos(ctx context.Context, playlistID string) ([]Video, error)
}

// Video represents one entry of a YouTube playlist
type Video struct {
	ID       string
	Title    string
	Position int64 // 1-based ordinal within the playlist
}
