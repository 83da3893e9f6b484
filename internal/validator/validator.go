package validator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnzdotmx/ytscribe/internal/utils"
)

// requiredEnvVars lists environment variables that must always be set
var requiredEnvVars = []string{
	"PLAYLIST_ID",
}

// credentialEnvVars lists the alternatives for authenticating against the
// YouTube Data API; at least one must be set
var credentialEnvVars = []string{
	"YOUTUBE_API_KEY",
	"YOUTUBE_CREDENTIALS",
}

// ValidateEnvVars checks if all required environment variables are set
func ValidateEnvVars() error {
	for _, envVar := range requiredEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			return fmt.Errorf("environment variable %s not set", envVar)
		}

		// Don't print the actual value for security
		utils.LogVerbose("✓ %s is set", envVar)
	}

	for _, envVar := range credentialEnvVars {
		if os.Getenv(envVar) != "" {
			utils.LogVerbose("✓ %s is set", envVar)
			return nil
		}
	}

	return fmt.Errorf("no credentials found: set one of %v", credentialEnvVars)
}

// ValidateOutputDir checks that the transcripts root exists (creating it if
// needed) and is writable
func ValidateOutputDir(root string) error {
	expanded, err := utils.ExpandHomeDir(root)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(expanded, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	probe := filepath.Join(expanded, ".write_probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("output directory is not writable: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		utils.LogWarning("Failed to remove probe file: %v", err)
	}

	return nil
}
