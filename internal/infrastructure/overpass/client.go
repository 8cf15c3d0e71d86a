package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pizza-hunt-service/internal/config"
	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/pizza-hunt-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	queryTimeout int
	logger       *zap.Logger
}

// NewOverpassClient создает новый клиент для Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.PlaceSource {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.URL,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// FetchPlaces запрашивает пиццерии внутри bbox вокруг центра
// и нормализует элементы Overpass в domain.Place
func (c *client) FetchPlaces(ctx context.Context, center domain.Point, radiusDeg float64) ([]domain.Place, error) {
	bbox := domain.NewBoundingBox(center, radiusDeg)
	query := c.buildQuery(bbox)

	c.logger.Debug("Calling Overpass API",
		zap.Float64("lat", center.Lat),
		zap.Float64("lng", center.Lng),
		zap.Float64("radius", radiusDeg))

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"status_code": resp.StatusCode,
		})
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"cause": "invalid JSON: " + err.Error(),
		})
	}

	places := make([]domain.Place, 0, len(overpassResp.Elements))
	for _, el := range overpassResp.Elements {
		place, ok := normalizeElement(el)
		if !ok {
			// элемент без координат и без центра отбрасывается целиком
			continue
		}
		places = append(places, place)
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(overpassResp.Elements)),
		zap.Int("places", len(places)))

	return places, nil
}

// buildQuery строит декларативный Overpass-запрос: node/way с тегом
// пиццы среди ресторанов, фастфуда и продуктовых магазинов; out center
// добавляет центральную точку для площадных объектов
func (c *client) buildQuery(bbox domain.BoundingBox) string {
	box := fmt.Sprintf("(%f,%f,%f,%f)", bbox.South, bbox.West, bbox.North, bbox.East)
	return fmt.Sprintf(`[out:json][timeout:%d];
(
  node["amenity"="restaurant"]["cuisine"~"pizza"]%s;
  way["amenity"="restaurant"]["cuisine"~"pizza"]%s;
  node["amenity"="fast_food"]["cuisine"~"pizza"]%s;
  node["shop"="food"]["cuisine"~"pizza"]%s;
);
out center;`, c.queryTimeout, box, box, box, box)
}
