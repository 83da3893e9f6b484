package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gnzdotmx/ytscribe/internal/config"
	"github.com/gnzdotmx/ytscribe/internal/services/playlist"
	"github.com/gnzdotmx/ytscribe/internal/services/transcript"
	"github.com/gnzdotmx/ytscribe/internal/store"
	"github.com/gnzdotmx/ytscribe/internal/utils"
)

// Summary accumulates per-video outcomes for the final report
type Summary struct {
	Successful int
	Failed     int
}

// Runner drives the end-to-end job: one playlist listing, then a
// sequential fetch-clean-save pass over every video.
type Runner struct {
	cfg     *config.Config
	lister  playlist.Lister
	fetcher transcript.Fetcher
	store   *store.Store
	sleep   func(time.Duration)
}

// New creates a runner
func New(cfg *config.Config, lister playlist.Lister, fetcher transcript.Fetcher, st *store.Store) *Runner {
	return &Runner{
		cfg:     cfg,
		lister:  lister,
		fetcher: fetcher,
		store:   st,
		sleep:   time.Sleep,
	}
}

// Run executes the whole job. A listing failure is fatal; everything after
// that is counted per video and never aborts the run, so the returned
// error is nil even when some videos failed.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	utils.LogInfo("Fetching videos from playlist: %s", r.cfg.PlaylistID)
	videos, err := r.lister.ListVideos(ctx, r.cfg.PlaylistID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list playlist videos: %w", err)
	}
	utils.LogInfo("Found %d videos in the playlist", len(videos))

	var summary Summary
	for i, video := range videos {
		utils.LogInfo("Processing %d/%d: %s (ID: %s)", i+1, len(videos), video.Title, video.ID)

		if err := r.processVideo(ctx, video); err != nil {
			summary.Failed++
			utils.LogError("✗ %v", err)
		} else {
			summary.Successful++
			utils.LogSuccess("✓ Saved transcript")
		}

		// Fixed pacing to stay under the external API rate limits,
		// applied after every video regardless of outcome
		r.sleep(r.cfg.Delay)
	}

	r.report(summary)
	return summary, nil
}

// processVideo handles a single video. Every failure comes back as a
// value, so one broken video never takes down the run.
func (r *Runner) processVideo(ctx context.Context, video playlist.Video) error {
	result := r.fetcher.Fetch(ctx, video.ID)
	if !result.Found {
		return fmt.Errorf("no transcript available")
	}

	saved, err := r.store.Save(video, result.Entries)
	if err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	if !saved {
		return fmt.Errorf("empty transcript, nothing to save")
	}

	return nil
}

// report prints the final tally and the resolved output locations
func (r *Runner) report(summary Summary) {
	utils.LogInfo("\nSummary:")
	utils.LogInfo("- Successfully saved transcripts: %d", summary.Successful)
	utils.LogInfo("- Failed to save transcripts: %d", summary.Failed)
	utils.LogInfo("- Total videos processed: %d", summary.Successful+summary.Failed)

	utils.LogInfo("\nTranscripts saved to:")
	utils.LogInfo("- Raw transcripts: %s", absPath(r.store.RawDir()))
	utils.LogInfo("- Clean transcripts: %s", absPath(r.store.CleanDir()))
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
