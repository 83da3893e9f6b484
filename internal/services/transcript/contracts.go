package transcript

import "context"

// Fetcher defines the interface for transcript retrieval operations
type Fetcher interface {
	// Fetch returns the transcript of a video, or an explicit not-found
	// result once every fallback language has been tried. It never errors;
	// a missing transcript is an expected outcome, not an exceptional one.
	Fetch(ctx context.Context, videoID string) Result
}

// Entry is a single timed fragment of spoken text. Start and duration are
// passed through to the raw artifact unmodified.
type Entry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Result is the outcome of one fetch
type Result struct {
	Entries []Entry
	Found   bool
}
