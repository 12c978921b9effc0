package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ManideepMuddagowni/veronica/config"
	httpDelivery "github.com/ManideepMuddagowni/veronica/internal/delivery/http"
	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/ManideepMuddagowni/veronica/internal/infrastructure/llm"
	"github.com/ManideepMuddagowni/veronica/internal/infrastructure/serper"
	"github.com/ManideepMuddagowni/veronica/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Veronica Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	searchClient := serper.NewClient(
		cfg.Serper.APIKey,
		cfg.Serper.BaseURL,
		cfg.Serper.Country,
		cfg.Serper.RequestsPerSecond,
		cfg.Serper.Burst,
	)
	searchClient.SetTimeout(cfg.Serper.Timeout)
	chatClient := llm.NewClientWithTimeout(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		searchClient.SetDebug(true)
		chatClient.SetDebug(true)
		log.Printf("Client debug mode enabled")
	}

	log.Printf("Serper API configured: %s (country: %s, rate: %.1f req/s)",
		cfg.Serper.BaseURL, cfg.Serper.Country, cfg.Serper.RequestsPerSecond)
	log.Printf("LLM configured: %s (model: %s)", cfg.LLM.BaseURL, cfg.LLM.Model)

	// Initialize usecase layer
	classifier := usecase.NewIntentClassifier(chatClient, float32(cfg.LLM.IntentTemperature))

	agents := map[domain.Capability]domain.Agent{
		domain.CapabilityShopping: usecase.NewShoppingAgent(
			searchClient, chatClient, cfg.Serper.Country, float32(cfg.LLM.SEOTemperature)),
		domain.CapabilityWebShopping: usecase.NewWebShoppingAgent(searchClient, cfg.Serper.Country),
	}

	trace := domain.NewMemoryTrace()
	router := usecase.NewRouter(classifier, agents, trace)

	batch := usecase.NewBatchRunner(router, usecase.BatchConfig{
		SkipUnusableRows: cfg.Batch.SkipUnusableRows,
		MaxRows:          cfg.Batch.MaxRows,
	})

	log.Printf("Batch: skip_unusable_rows=%v, max_rows=%d",
		cfg.Batch.SkipUnusableRows, cfg.Batch.MaxRows)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(router, batch)

	// Setup router
	engine := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
