package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pizza-hunt-service/internal/config"
	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/pizza-hunt-service/internal/infrastructure/nominatim"
	"github.com/pizza-hunt-service/internal/infrastructure/overpass"
	"github.com/pizza-hunt-service/internal/infrastructure/placesapi"
	"github.com/pizza-hunt-service/internal/pkg/logger"
	"github.com/pizza-hunt-service/internal/repository/cache"
	redisRepo "github.com/pizza-hunt-service/internal/repository/redis"
	"github.com/pizza-hunt-service/internal/usecase"
	"github.com/pizza-hunt-service/internal/worker"
	"github.com/pizza-hunt-service/internal/worker/warmup"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cache Warmup Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("places_provider", cfg.Places.Provider))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize upstream clients - тот же выбор провайдера, что и в API
	var placeSource repository.PlaceSource
	var geocoder repository.Geocoder
	switch cfg.Places.Provider {
	case config.ProviderAPI:
		apiClient := placesapi.NewClient(&cfg.PlacesAPI, log)
		placeSource = apiClient
		geocoder = apiClient
	default:
		placeSource = overpass.NewOverpassClient(&cfg.Overpass, log)
		geocoder = nominatim.NewNominatimClient(&cfg.Nominatim, log)
	}

	// 5. Initialize repositories and use cases
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	center := domain.NewSearchCenter(domain.Point{
		Lat: cfg.Places.DefaultLat,
		Lng: cfg.Places.DefaultLng,
	})

	geocodeUC := usecase.NewGeocodeUseCase(geocoder, cacheRepo, log, cfg.Cache.GeocodeTTL)

	// streamRepo = nil: воркер сам не публикует события поиска
	placeUC := usecase.NewPlaceUseCase(
		placeSource,
		cacheRepo,
		nil,
		geocodeUC,
		center,
		log,
		cfg.Cache.PlacesTTL,
		cfg.Places.DefaultRadius,
	)

	// 6. Initialize workers
	warmupWorker := warmup.NewWorker(
		streamRepo,
		placeUC,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(warmupWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
