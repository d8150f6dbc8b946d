package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"recipehub/internal/api"
	"recipehub/internal/app"
	"recipehub/internal/auth"
	"recipehub/internal/catalog"
	"recipehub/internal/config"
	"recipehub/internal/database"
	"recipehub/internal/mealplan"
	"recipehub/internal/shopping"

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

	// 2. Initialize the SQLite database
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 3. Initialize repositories
	planRepo := mealplan.NewRepository(db.SQL)
	shoppingRepo := shopping.NewRepository(db.SQL)

	// 4. Recipe catalog client with an LRU cache in front
	catalogClient, err := catalog.NewCachedClient(catalog.NewClient(cfg.CatalogURL), cfg.RecipeCacheSize)
	if err != nil {
		log.Fatalf("Failed to initialize recipe cache: %v", err)
	}

	// 5. Initialize Services
	application := app.NewApp(catalogClient, planRepo, shoppingRepo)
	verifier := auth.NewVerifier([]byte(cfg.JWTSecret))
	server := api.NewServer(application, planRepo, verifier, cfg.DatabasePath)

	// 6. Start Server with Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("API Server listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	log.Println("Server exiting")
}
