package playlist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gnzdotmx/ytscribe/internal/config"
	"github.com/gnzdotmx/ytscribe/internal/utils"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// maxPageSize is the YouTube Data API limit for playlistItems.list
const maxPageSize = 50

// pager is the slice of the playlistItems API the service needs,
// narrowed so tests can substitute canned pages.
type pager interface {
	page(ctx context.Context, playlistID, pageToken string) (*youtube.PlaylistItemListResponse, error)
}

// apiPager implements pager against the real YouTube Data API
type apiPager struct {
	svc *youtube.Service
}

func (p *apiPager) page(ctx context.Context, playlistID, pageToken string) (*youtube.PlaylistItemListResponse, error) {
	call := p.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(maxPageSize)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	return call.Context(ctx).Do()
}

// Service implements the Lister interface
type Service struct {
	pager pager
}

// New creates a playlist service. Public playlists authenticate with the
// API key; when a credentials path is configured the OAuth flow is used
// instead so private playlists become readable.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		ts, err := tokenSource(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to set up OAuth: %w", err)
		}
		opts = append(opts, option.WithTokenSource(ts))
	} else {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Service{pager: &apiPager{svc: svc}}, nil
}

// NormalizePlaylistID truncates a pasted playlist ID at the first query
// separator, so full watch URLs with trailing parameters still work.
func NormalizePlaylistID(playlistID string) string {
	if i := strings.Index(playlistID, "&"); i >= 0 {
		return playlistID[:i]
	}
	return playlistID
}

// ListVideos retrieves all videos of the playlist, 50 per page, and returns
// them sorted ascending by their 1-based position. Any API error is fatal
// to the caller; there is no partial-result fallback.
func (s *Service) ListVideos(ctx context.Context, playlistID string) ([]Video, error) {
	playlistID = NormalizePlaylistID(playlistID)
	utils.LogVerbose("Using cleaned playlist ID: %s", playlistID)

	var videos []Video
	pageToken := ""

	for {
		resp, err := s.pager.page(ctx, playlistID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("failed to list playlist items: %w", err)
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.ResourceId == nil {
				continue
			}
			videos = append(videos, Video{
				ID:       item.Snippet.ResourceId.VideoId,
				Title:    item.Snippet.Title,
				Position: item.Snippet.Position + 1, // 1-indexed for readability
			})
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	// Pages are expected to arrive in order; re-sort defensively anyway
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].Position < videos[j].Position
	})

	return videos, nil
}
