package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gnzdotmx/ytscribe/internal/cleaner"
	"github.com/gnzdotmx/ytscribe/internal/services/playlist"
	"github.com/gnzdotmx/ytscribe/internal/services/transcript"
	"github.com/gnzdotmx/ytscribe/internal/utils"
)

// Store writes raw and clean transcript artifacts under a common root
type Store struct {
	rawDir   string
	cleanDir string
}

// New creates the raw/ and clean/ directories under root
func New(root string) (*Store, error) {
	expanded, err := utils.ExpandHomeDir(root)
	if err != nil {
		return nil, err
	}

	s := &Store{
		rawDir:   filepath.Join(expanded, "raw"),
		cleanDir: filepath.Join(expanded, "clean"),
	}

	for _, dir := range []string{s.rawDir, s.cleanDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return s, nil
}

// RawDir returns the raw artifacts directory
func (s *Store) RawDir() string { return s.rawDir }

// CleanDir returns the clean artifacts directory
func (s *Store) CleanDir() string { return s.cleanDir }

// unsafeChars matches everything outside letters, digits, underscore,
// whitespace and hyphen. Unicode letters and combining marks stay, so
// non-Latin titles keep their text.
var unsafeChars = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s-]`)

// SafeTitle reduces a video title to a filesystem-safe form
func SafeTitle(title string) string {
	cleaned := strings.TrimSpace(unsafeChars.ReplaceAllString(title, ""))
	return strings.ReplaceAll(cleaned, " ", "_")
}

// BaseFilename derives the shared base name of a video's artifacts:
// zero-padded position, sanitized title and raw video ID.
func BaseFilename(video playlist.Video) string {
	return fmt.Sprintf("%03d_%s_%s", video.Position, SafeTitle(video.Title), video.ID)
}

// Save writes the raw JSON and clean text artifacts for one video. It
// reports false without touching the filesystem when the transcript is
// empty; on success exactly two files sharing a base name exist.
func (s *Store) Save(video playlist.Video, entries []transcript.Entry) (bool, error) {
	if len(entries) == 0 {
		return false, nil
	}

	base := BaseFilename(video)

	rawPath := filepath.Join(s.rawDir, base+".json")
	if err := writeRawJSON(rawPath, entries); err != nil {
		return false, fmt.Errorf("failed to write raw transcript: %w", err)
	}

	cleanPath := filepath.Join(s.cleanDir, base+".txt")
	if err := utils.WriteTextFile(cleanPath, cleaner.Clean(entries)); err != nil {
		return false, fmt.Errorf("failed to write clean transcript: %w", err)
	}

	return true, nil
}

// writeRawJSON serializes the untouched transcript as indented JSON with
// non-ASCII characters preserved as-is.
func writeRawJSON(path string, entries []transcript.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			utils.LogWarning("Failed to close file: %v", err)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	return nil
}
