package cmd

import (
	"fmt"
	"time"

	"github.com/gnzdotmx/ytscribe/internal/config"
	"github.com/gnzdotmx/ytscribe/internal/runner"
	"github.com/gnzdotmx/ytscribe/internal/services/playlist"
	"github.com/gnzdotmx/ytscribe/internal/services/transcript"
	"github.com/gnzdotmx/ytscribe/internal/store"

	"github.com/spf13/cobra"
)

var (
	configFilePath   string
	playlistOverride string
	outputDirPath    string
	credentialsPath  string
	delayOverride    time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download transcripts for every video in a playlist",
	Long: `Fetch the playlist, then download each video's transcript with a
language fallback chain and write raw and clean artifacts to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFilePath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// CLI flags win over config file and environment
		if playlistOverride != "" {
			cfg.PlaylistID = playlistOverride
		}
		if outputDirPath != "" {
			cfg.OutputDir = outputDirPath
		}
		if credentialsPath != "" {
			cfg.CredentialsPath = credentialsPath
		}
		if delayOverride > 0 {
			cfg.Delay = delayOverride
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		ctx := cmd.Context()

		lister, err := playlist.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}

		st, err := store.New(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to prepare output directories: %w", err)
		}

		fetcher := transcript.New(cfg.Languages)

		_, err = runner.New(cfg, lister, fetcher, st).Run(ctx)
		if err != nil {
			return fmt.Errorf("run failed: %w", err)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&configFilePath, "config", "c", "", "Path to optional YAML config file")
	fetchCmd.Flags().StringVarP(&playlistOverride, "playlist", "p", "", "Playlist ID (overrides PLAYLIST_ID)")
	fetchCmd.Flags().StringVarP(&outputDirPath, "output", "o", "", "Transcripts output directory (overrides TRANSCRIPTS_DIR)")
	fetchCmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth client credentials JSON for private playlists")
	fetchCmd.Flags().DurationVar(&delayOverride, "delay", 0, "Pacing delay between videos (default 1s)")
	rootCmd.AddCommand(fetchCmd)
}
