package transcript

import (
	"context"
	"errors"

	"github.com/gnzdotmx/ytscribe/internal/utils"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

// captionClient is the slice of the transcript API client the service
// needs, narrowed so tests can fake individual fallback attempts.
type captionClient interface {
	GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error)
}

// Service implements the Fetcher interface
type Service struct {
	client    captionClient
	languages []string
}

// New creates a transcript service with the given language preference
// order. An unrestricted attempt is always appended, since many videos
// only carry an auto-generated or alternate-locale transcript.
func New(languages []string) *Service {
	return &Service{
		client:    yt_transcript.NewClient(),
		languages: languages,
	}
}

// attempts returns the ordered language filters of the fallback chain:
// each preferred language on its own, then any available language.
func (s *Service) attempts() [][]string {
	chain := make([][]string, 0, len(s.languages)+1)
	for _, lang := range s.languages {
		chain = append(chain, []string{lang})
	}
	chain = append(chain, nil)
	return chain
}

// Fetch tries the fallback chain in order and stops at the first attempt
// that yields transcript lines. Each attempt's failure is swallowed; only
// exhaustion of the whole chain produces the not-found result, which is
// logged together with the terminal error.
func (s *Service) Fetch(ctx context.Context, videoID string) Result {
	var lastErr error

	for _, languages := range s.attempts() {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		transcripts, err := s.client.GetTranscripts(videoID, languages)
		if err != nil {
			lastErr = err
			continue
		}

		entries, language := flatten(transcripts)
		if len(entries) == 0 {
			lastErr = errors.New("no transcript lines returned")
			continue
		}

		utils.LogVerbose("Got transcript for video %s (language: %s)", videoID, language)
		return Result{Entries: entries, Found: true}
	}

	utils.LogWarning("Could not get transcript for video %s: %v", videoID, lastErr)
	return Result{}
}

// flatten converts the first non-empty transcript of an API response into
// entries, preserving spoken order.
func flatten(transcripts []yt_transcript_models.Transcript) ([]Entry, string) {
	for _, t := range transcripts {
		if len(t.Lines) == 0 {
			continue
		}
		entries := make([]Entry, 0, len(t.Lines))
		for _, line := range t.Lines {
			entries = append(entries, Entry{
				Text:     line.Text,
				Start:    line.Start,
				Duration: line.Duration,
			})
		}
		return entries, t.LanguageCode
	}
	return nil, ""
}
