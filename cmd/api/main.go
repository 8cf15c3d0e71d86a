package main

// @title Pizza Hunt Service API
// @version 1.0.0
// @description Сервис поиска пиццерий вокруг точки. Источником данных служит либо Overpass API (OpenStreetMap) с геокодированием через Nominatim, либо совместимый структурный places API - провайдер выбирается конфигурацией при старте.
// @description
// @description Основные возможности:
// @description - Поиск пиццерий в прямоугольнике center ± radius с нормализацией OSM-тегов
// @description - Геокодирование названия города и перенос центра поиска
// @description - Кеширование результатов поиска и геокодирования в Redis

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/pizza-hunt-service/docs"
	"github.com/pizza-hunt-service/internal/config"
	httpDelivery "github.com/pizza-hunt-service/internal/delivery/http"
	"github.com/pizza-hunt-service/internal/delivery/http/handler"
	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/pizza-hunt-service/internal/infrastructure/nominatim"
	"github.com/pizza-hunt-service/internal/infrastructure/overpass"
	"github.com/pizza-hunt-service/internal/infrastructure/placesapi"
	"github.com/pizza-hunt-service/internal/pkg/logger"
	"github.com/pizza-hunt-service/internal/repository/cache"
	redisRepo "github.com/pizza-hunt-service/internal/repository/redis"
	"github.com/pizza-hunt-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Pizza Hunt Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("places_provider", cfg.Places.Provider),
	)

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

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	// 5. Initialize upstream clients - провайдер выбирается один раз
	// при старте, никакого ветвления per-request
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

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Shared search center with configured fallback
	center := domain.NewSearchCenter(domain.Point{
		Lat: cfg.Places.DefaultLat,
		Lng: cfg.Places.DefaultLng,
	})

	// 8. Initialize use cases
	geocodeUC := usecase.NewGeocodeUseCase(
		geocoder,
		cacheRepo,
		log,
		cfg.Cache.GeocodeTTL,
	)

	placeUC := usecase.NewPlaceUseCase(
		placeSource,
		cacheRepo,
		streamRepo,
		geocodeUC,
		center,
		log,
		cfg.Cache.PlacesTTL,
		cfg.Places.DefaultRadius,
	)

	// 9. Initialize HTTP handlers and server
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	server := httpDelivery.NewServer(cfg, log, placeHandler)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
