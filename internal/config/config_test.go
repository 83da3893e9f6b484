package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"YOUTUBE_API_KEY", "PLAYLIST_ID", "TRANSCRIPTS_DIR", "YOUTUBE_CREDENTIALS", "TRANSCRIPT_LANGUAGES"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "key123")
	t.Setenv("PLAYLIST_ID", "PLabc")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "key123", cfg.APIKey)
	assert.Equal(t, "PLabc", cfg.PlaylistID)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultDelay, cfg.Delay)
	assert.Equal(t, []string{"hi", "hi-IN"}, cfg.Languages)
	require.NoError(t, cfg.Validate())
}

func TestLoad_LanguagesFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSCRIPT_LANGUAGES", "es, es-MX ,")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"es", "es-MX"}, cfg.Languages)
}

func TestLoad_FileOverlay(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "key123")
	t.Setenv("PLAYLIST_ID", "from-env")

	configPath := filepath.Join(t.TempDir(), "ytscribe.yaml")
	content := `playlistId: from-file
outputDir: /tmp/archive
languages:
  - ja
delay: 250ms
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.PlaylistID)
	assert.Equal(t, "/tmp/archive", cfg.OutputDir)
	assert.Equal(t, []string{"ja"}, cfg.Languages)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
}

func TestLoad_InvalidDelay(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "ytscribe.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("delay: soon\n"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid delay")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	credentialsPath := filepath.Join(t.TempDir(), "client_secret.json")
	require.NoError(t, os.WriteFile(credentialsPath, []byte("{}"), 0600))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid with API key",
			cfg:  Config{APIKey: "k", PlaylistID: "p", OutputDir: "out", Delay: time.Second},
		},
		{
			name: "valid with credentials",
			cfg:  Config{CredentialsPath: credentialsPath, PlaylistID: "p", OutputDir: "out"},
		},
		{
			name:    "missing playlist ID",
			cfg:     Config{APIKey: "k", OutputDir: "out"},
			wantErr: "playlist ID is required",
		},
		{
			name:    "missing credentials",
			cfg:     Config{PlaylistID: "p", OutputDir: "out"},
			wantErr: "credentials are required",
		},
		{
			name:    "nonexistent credentials file",
			cfg:     Config{CredentialsPath: "/nonexistent/creds.json", PlaylistID: "p", OutputDir: "out"},
			wantErr: "credentials file does not exist",
		},
		{
			name:    "missing output dir",
			cfg:     Config{APIKey: "k", PlaylistID: "p"},
			wantErr: "output directory is required",
		},
		{
			name:    "negative delay",
			cfg:     Config{APIKey: "k", PlaylistID: "p", OutputDir: "out", Delay: -time.Second},
			wantErr: "delay must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
