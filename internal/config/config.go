package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	BotToken   string
	APIKey     string
	APIBaseURL string
	Location   *time.Location
}

func Load() (*Settings, error) {
	_ = godotenv.Load()

	set := &Settings{}
	set.BotToken = strings.TrimSpace(os.Getenv("BOT_TOKEN"))
	if set.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	set.APIKey = strings.TrimSpace(os.Getenv("NBA_API_KEY"))
	if set.APIKey == "" {
		return nil, fmt.Errorf("NBA_API_KEY is required")
	}

	// Empty means the provider default; the override exists for tests and
	// proxies.
	set.APIBaseURL = strings.TrimSpace(os.Getenv("NBA_API_URL"))

	tz := strings.TrimSpace(os.Getenv("BOT_TZ"))
	if tz == "" {
		set.Location = time.UTC
		return set, nil
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load BOT_TZ: %w", err)
	}
	set.Location = location
	return set, nil
}
