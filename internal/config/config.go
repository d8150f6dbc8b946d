package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	ListenAddr   string
	CatalogURL   string
	JWTSecret    string

	// RecipeCacheSize bounds the LRU cache in front of the recipe catalog.
	RecipeCacheSize int

	// Telegram Config
	TelegramBotToken    string
	TelegramWebhookURL  string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable not set")
	}

	catalogURL := os.Getenv("CATALOG_API_URL")
	if catalogURL == "" {
		return nil, fmt.Errorf("CATALOG_API_URL environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	cacheSize := 256
	if s := os.Getenv("RECIPE_CACHE_SIZE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("RECIPE_CACHE_SIZE must be a positive integer, got %q", s)
		}
		cacheSize = n
	}

	// Telegram Config (Optional for the API server, required for the Bot)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramWebhookURL := os.Getenv("TELEGRAM_WEBHOOK_URL")
	telegramAllowUserIDStr := os.Getenv("TELEGRAM_ALLOW_USER_ID")
	var telegramAllowUserID int64
	if telegramAllowUserIDStr != "" {
		fmt.Sscanf(telegramAllowUserIDStr, "%d", &telegramAllowUserID)
	}

	return &Config{
		DatabasePath:        dbPath,
		ListenAddr:          listenAddr,
		CatalogURL:          catalogURL,
		JWTSecret:           jwtSecret,
		RecipeCacheSize:     cacheSize,
		TelegramBotToken:    telegramBotToken,
		TelegramWebhookURL:  telegramWebhookURL,
		TelegramAllowUserID: telegramAllowUserID,
	}, nil
}
