// scripts/ticktick-auth/main.go
//
// Run this ONCE locally to walk the TickTick OAuth flow by hand and get
// an access token, useful for curl-testing the skill before account
// linking is configured in the Yandex Dialogs console.
//
// Usage:
//   TICKTICK_CLIENT_ID=... TICKTICK_CLIENT_SECRET=... go run scripts/ticktick-auth/main.go
//
// It prints an authorization URL; open it, approve access, and paste
// the code from the redirect back here. The token is saved to
// ticktick-token.json.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
)

const redirectURL = "http://localhost:8080/oauth/callback"

func main() {
	clientID := os.Getenv("TICKTICK_CLIENT_ID")
	clientSecret := os.Getenv("TICKTICK_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("TICKTICK_CLIENT_ID and TICKTICK_CLIENT_SECRET must be set")
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"tasks:read", "tasks:write"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://ticktick.com/oauth/authorize",
			TokenURL: "https://ticktick.com/oauth/token",
		},
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("Step 1: open this URL in a browser and approve access:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("Step 2: paste the ?code= value from the redirect URL here: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	tokenPath := "ticktick-token.json"
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
	fmt.Println("Use its access_token as the user token when curl-testing the webhook.")
}
