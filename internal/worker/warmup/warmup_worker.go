package warmup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/pizza-hunt-service/internal/usecase"
	"github.com/pizza-hunt-service/internal/worker"
)

// Worker - воркер прогрева кеша: слушает события успешных поисков и
// заранее загружает в кеш четыре соседние области, чтобы сдвиг карты
// попадал в тёплый кеш
type Worker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	placeUC    *usecase.PlaceUseCase
}

// NewWorker создает новый warmup-воркер
func NewWorker(
	streamRepo repository.StreamRepository,
	placeUC *usecase.PlaceUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		BaseWorker: worker.NewBaseWorker("cache-warmup", consumerGroup, logger),
		streamRepo: streamRepo,
		placeUC:    placeUC,
	}
}

// Start запускает обработку событий поиска
func (w *Worker) Start(ctx context.Context) error {
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlacesSearched, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	hostname, _ := os.Hostname()
	consumer := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamPlacesSearched, w.ConsumerGroup(), consumer)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	w.Logger().Info("Warmup worker started",
		zap.String("stream", domain.StreamPlacesSearched),
		zap.String("consumer", consumer))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.StopChan():
			return nil
		case msg, ok := <-msgChan:
			if !ok {
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage прогревает соседние области; сообщение подтверждается
// в любом случае - повторы не нужны, поиск и так сходит к upstream
func (w *Worker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	var event domain.SearchEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		w.Logger().Warn("Failed to unmarshal search event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	warmed := 0
	for _, center := range neighborCenters(domain.Point{Lat: event.Lat, Lng: event.Lng}, event.Radius) {
		if err := w.placeUC.Prefetch(ctx, center, event.Radius); err != nil {
			w.Logger().Warn("Failed to prefetch area",
				zap.Float64("lat", center.Lat),
				zap.Float64("lng", center.Lng),
				zap.Error(err))
			continue
		}
		warmed++
	}

	w.Logger().Debug("Search event processed",
		zap.String("event_id", event.ID.String()),
		zap.Int("warmed", warmed))

	w.ack(ctx, msg.ID)
}

func (w *Worker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamPlacesSearched, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message", zap.String("message_id", messageID), zap.Error(err))
	}
}

// neighborCenters - центры четырёх областей вокруг исходной, со сдвигом
// на один радиус: соседние bbox перекрываются с исходным наполовину
func neighborCenters(center domain.Point, radiusDeg float64) []domain.Point {
	return []domain.Point{
		{Lat: center.Lat + radiusDeg, Lng: center.Lng},
		{Lat: center.Lat - radiusDeg, Lng: center.Lng},
		{Lat: center.Lat, Lng: center.Lng + radiusDeg},
		{Lat: center.Lat, Lng: center.Lng - radiusDeg},
	}
}
