package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipehub/internal/app"
	"recipehub/internal/auth"
	"recipehub/internal/catalog"
	"recipehub/internal/config"
	"recipehub/internal/database"
	"recipehub/internal/mealplan"
	"recipehub/internal/shopping"
	"recipehub/internal/telegram"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	// 2. Initialize the SQLite database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 3. Initialize repositories and services
	planRepo := mealplan.NewRepository(db.SQL)
	shoppingRepo := shopping.NewRepository(db.SQL)

	catalogClient, err := catalog.NewCachedClient(catalog.NewClient(cfg.CatalogURL), cfg.RecipeCacheSize)
	if err != nil {
		log.Fatalf("Failed to initialize recipe cache: %v", err)
	}

	application := app.NewApp(catalogClient, planRepo, shoppingRepo)
	verifier := auth.NewVerifier([]byte(cfg.JWTSecret))

	// 4. Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg, application, planRepo, verifier)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	// 5. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	bot.RegisterHandlers()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: nil,
	}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
