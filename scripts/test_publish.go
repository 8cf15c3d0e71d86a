// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type SearchEvent struct {
	ID     uuid.UUID `json:"id"`
	Lat    float64   `json:"lat"`
	Lng    float64   `json:"lng"`
	Radius float64   `json:"radius"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	lat := flag.Float64("lat", 40.7589, "Search center latitude")
	lng := flag.Float64("lng", -73.9851, "Search center longitude")
	radius := flag.Float64("radius", 0.05, "Search radius in degrees")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие поиска - warmup-воркер должен прогреть
	// четыре соседние области вокруг этой точки
	event := SearchEvent{
		ID:     uuid.New(),
		Lat:    *lat,
		Lng:    *lng,
		Radius: *radius,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:places:searched",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:places:searched\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.ID)
	fmt.Printf("   Center: %.6f, %.6f\n", event.Lat, event.Lng)
	fmt.Printf("   Radius: %.3f°\n", event.Radius)
	fmt.Printf("\nCheck warmup worker logs and cache keys places:*\n")
}
