package playlist

import (
	"context"
	"fmt"
	"os"

	"github.com/gnzdotmx/ytscribe/internal/utils"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Reading playlist items is the only operation we perform
var requiredScopes = []string{
	"https://www.googleapis.com/auth/youtube.readonly",
}

// tokenSource builds an OAuth token source from a client credentials file,
// reusing a cached token when a valid one exists and otherwise walking the
// user through the browser consent flow on a localhost callback.
func tokenSource(ctx context.Context, credentialsPath string) (oauth2.TokenSource, error) {
	credentials, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(credentials, requiredScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OAuth config: %w", err)
	}

	tokenStorage, err := utils.NewTokenStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token storage: %w", err)
	}

	token, err := tokenStorage.LoadToken("youtube")
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	// If no token exists or it's expired, get a new one
	if token == nil || !token.Valid() {
		callbackServer := utils.NewOAuthCallbackServer()
		if err := callbackServer.Start(8080); err != nil {
			return nil, fmt.Errorf("failed to start callback server: %w", err)
		}
		defer func() {
			if err := callbackServer.Stop(); err != nil {
				utils.LogWarning("Failed to stop callback server: %v", err)
			}
		}()

		oauthConfig.RedirectURL = "http://localhost:8080"

		authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
		if err := callbackServer.OpenURL(authURL); err != nil {
			return nil, fmt.Errorf("failed to open auth URL: %w", err)
		}

		code := callbackServer.WaitForCode()

		token, err = oauthConfig.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
		}

		if err := tokenStorage.SaveToken("youtube", token); err != nil {
			utils.LogWarning("Failed to save token: %v", err)
		}
	} else {
		utils.LogInfo("Using existing authorization token")
	}

	return oauthConfig.TokenSource(ctx, token), nil
}
