package transcript

import (
	"context"
	"errors"
	"testing"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCaptionClient scripts one response per fallback attempt and records
// the language filters it was called with
type fakeCaptionClient struct {
	responses []fakeResponse
	calls     [][]string
}

type fakeResponse struct {
	transcripts []yt_transcript_models.Transcript
	err         error
}

func (f *fakeCaptionClient) GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error) {
	call := len(f.calls)
	f.calls = append(f.calls, languages)
	if call >= len(f.responses) {
		return nil, errors.New("unexpected extra attempt")
	}
	resp := f.responses[call]
	return resp.transcripts, resp.err
}

func withLines(languageCode string, texts ...string) []yt_transcript_models.Transcript {
	lines := make([]yt_transcript_models.TranscriptLine, 0, len(texts))
	for i, text := range texts {
		lines = append(lines, yt_transcript_models.TranscriptLine{
			Text:     text,
			Start:    float64(i),
			Duration: 1,
		})
	}
	return []yt_transcript_models.Transcript{{LanguageCode: languageCode, Lines: lines}}
}

func newTestService(client captionClient) *Service {
	return &Service{client: client, languages: []string{"hi", "hi-IN"}}
}

func TestFetch_PrimaryLanguageSucceeds(t *testing.T) {
	client := &fakeCaptionClient{responses: []fakeResponse{
		{transcripts: withLines("hi", "नमस्ते", "दुनिया")},
	}}

	result := newTestService(client).Fetch(context.Background(), "vid01")

	require.True(t, result.Found)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "नमस्ते", result.Entries[0].Text)
	assert.Equal(t, "दुनिया", result.Entries[1].Text)

	// Success short-circuits the remaining attempts
	require.Len(t, client.calls, 1)
	assert.Equal(t, []string{"hi"}, client.calls[0])
}

func TestFetch_FallbackOrder(t *testing.T) {
	client := &fakeCaptionClient{responses: []fakeResponse{
		{err: errors.New("no hi transcript")},
		{err: errors.New("no hi-IN transcript")},
		{transcripts: withLines("en", "hello")},
	}}

	result := newTestService(client).Fetch(context.Background(), "vid02")

	require.True(t, result.Found)
	assert.Equal(t, "hello", result.Entries[0].Text)

	// Primary, then variant locale, then unrestricted
	require.Len(t, client.calls, 3)
	assert.Equal(t, []string{"hi"}, client.calls[0])
	assert.Equal(t, []string{"hi-IN"}, client.calls[1])
	assert.Nil(t, client.calls[2])
}

func TestFetch_Exhaustion(t *testing.T) {
	client := &fakeCaptionClient{responses: []fakeResponse{
		{err: errors.New("nope")},
		{err: errors.New("nope")},
		{err: errors.New("transcripts disabled")},
	}}

	result := newTestService(client).Fetch(context.Background(), "vid03")

	assert.False(t, result.Found)
	assert.Empty(t, result.Entries)
	assert.Len(t, client.calls, 3)
}

func TestFetch_EmptyLinesTreatedAsMiss(t *testing.T) {
	client := &fakeCaptionClient{responses: []fakeResponse{
		{transcripts: []yt_transcript_models.Transcript{{LanguageCode: "hi"}}},
		{transcripts: withLines("hi-IN", "मिल गया")},
	}}

	result := newTestService(client).Fetch(context.Background(), "vid04")

	require.True(t, result.Found)
	assert.Equal(t, "मिल गया", result.Entries[0].Text)
	assert.Len(t, client.calls, 2)
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeCaptionClient{}
	result := newTestService(client).Fetch(ctx, "vid05")

	assert.False(t, result.Found)
	assert.Empty(t, client.calls)
}
