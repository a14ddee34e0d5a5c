package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fuelprice-validation/internal/api/handlers"
	"fuelprice-validation/internal/api/middleware"
	"fuelprice-validation/internal/config"
	"fuelprice-validation/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if p := os.Getenv("DATASET_CONFIG"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", p, err)
		}
		cfg = loaded
	}
	log.Printf("Datasets root: %s, default dataset: %s", cfg.DatasetsRoot, cfg.Dataset.Dir)

	ttl := time.Hour
	if v := os.Getenv("REPORT_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		} else {
			log.Printf("Warning: invalid REPORT_TTL %q, using %v", v, ttl)
		}
	}
	store := report.NewStore(ttl)
	store.StartCleanup(5 * time.Minute)
	defer store.Close()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	validationHandler := handlers.NewValidationHandler(cfg, store, nil)
	handlers.RegisterRoutes(router.Group("/api/v1"), validationHandler)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
