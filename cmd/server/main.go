package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shofit/backend/config"
	httpDelivery "github.com/shofit/backend/internal/delivery/http"
	"github.com/shofit/backend/internal/infrastructure/catalog"
	"github.com/shofit/backend/internal/infrastructure/fetch"
	"github.com/shofit/backend/internal/infrastructure/llm"
	"github.com/shofit/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShoFit API v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	fetcher := fetch.NewClient(fetch.Config{
		Timeout:      time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		UserAgent:    cfg.Fetch.UserAgent,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
	})

	modelClient := llm.NewClient(llm.Config{
		APIKey:            cfg.LLM.APIKey,
		BaseURL:           cfg.LLM.BaseURL,
		Model:             cfg.LLM.Model,
		Timeout:           time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	})

	aiConfigured := cfg.LLM.APIKey != ""
	if aiConfigured {
		log.Printf("Model API configured: %s (%s)", cfg.LLM.BaseURL, cfg.LLM.Model)
	} else {
		log.Printf("WARNING: model API key not set - AI extraction fallback and recommendations disabled")
	}

	store := catalog.NewMemoryStore()
	log.Printf("Catalog loaded: %d products", store.Size())

	// Initialize usecase layer
	extractionService := usecase.NewExtractionService(fetcher, modelClient)
	recommendationService := usecase.NewRecommendationService(modelClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(extractionService, recommendationService, store, aiConfigured)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
