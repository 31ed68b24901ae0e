package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ReadySetJoe/branch-out/docs"
	"github.com/ReadySetJoe/branch-out/internal/catalog/spotify"
	"github.com/ReadySetJoe/branch-out/internal/catalog/ticketmaster"
	"github.com/ReadySetJoe/branch-out/internal/config"
	"github.com/ReadySetJoe/branch-out/internal/discovery"
	"github.com/ReadySetJoe/branch-out/internal/geocode"
	"github.com/ReadySetJoe/branch-out/internal/handler"
	"github.com/ReadySetJoe/branch-out/internal/logger"
	"github.com/ReadySetJoe/branch-out/internal/service"
)

// @title Branch Out API
// @version 1.0
// @description API for discovering nearby concerts by the listener's artists
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Initialize catalog clients
	spotifyClient := spotify.NewClient(ctx, cfg.Spotify, log)
	ticketmasterClient := ticketmaster.NewClient(cfg.Ticketmaster, log)

	geocodeClient, err := geocode.NewClient(cfg.Geocode, log)
	if err != nil {
		log.Fatal("Failed to create geocode client", zap.Error(err))
	}

	// Initialize the retrieval orchestrator and discovery service
	orchestrator := discovery.NewOrchestrator(ticketmasterClient, cfg.Discovery.MatchThreshold, log)

	discoveryService, err := service.NewDiscoveryService(spotifyClient, spotifyClient, orchestrator, cfg.Discovery, log)
	if err != nil {
		log.Fatal("Failed to create discovery service", zap.Error(err))
	}

	// Initialize handler
	h := handler.NewHandler(discoveryService, geocodeClient, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
