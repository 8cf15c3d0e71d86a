package placesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pizza-hunt-service/internal/config"
	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// Client - клиент структурного places API (совместимый бекенд с
// конвертом {success, ..., error?}). Реализует и PlaceSource, и Geocoder.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает новый клиент для структурного places API
func NewClient(cfg *config.PlacesAPIConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.URL,
		logger:  logger,
	}
}

type placesEnvelope struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Places  []domain.Place `json:"places"`
	Error   string         `json:"error"`
}

type cityEnvelope struct {
	Success bool    `json:"success"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Error   string  `json:"error"`
}

// FetchPlaces запрашивает уже нормализованный список пиццерий
func (c *Client) FetchPlaces(ctx context.Context, center domain.Point, radiusDeg float64) ([]domain.Place, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(center.Lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(center.Lng, 'f', -1, 64))
	params.Set("radius", strconv.FormatFloat(radiusDeg, 'f', -1, 64))

	var envelope placesEnvelope
	if _, err := c.getJSON(ctx, "/api/pizza-places", params, &envelope); err != nil {
		return nil, err
	}

	if !envelope.Success {
		c.logger.Error("Places API reported failure", zap.String("error", envelope.Error))
		if envelope.Error != "" {
			return nil, errors.ErrUpstreamFormat.WithMessage(envelope.Error)
		}
		return nil, errors.ErrUpstreamFormat
	}

	if envelope.Places == nil {
		return []domain.Place{}, nil
	}
	return envelope.Places, nil
}

// Resolve геокодирует название города через тот же бекенд
func (c *Client) Resolve(ctx context.Context, query string) (*domain.Location, error) {
	params := url.Values{}
	params.Set("city", query)

	var envelope cityEnvelope
	status, err := c.getJSON(ctx, "/api/search-city", params, &envelope)
	if err != nil {
		return nil, err
	}

	if !envelope.Success {
		c.logger.Info("Places API city search failed",
			zap.Int("status_code", status),
			zap.String("error", envelope.Error))
		if status == http.StatusNotFound {
			return nil, errors.ErrCityNotFound
		}
		if envelope.Error != "" {
			return nil, errors.ErrUpstreamFormat.WithMessage(envelope.Error)
		}
		return nil, errors.ErrUpstreamFormat
	}

	return &domain.Location{
		Lat:   envelope.Lat,
		Lng:   envelope.Lng,
		Label: envelope.City,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) (int, error) {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	c.logger.Debug("Calling places API", zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return 0, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	defer resp.Body.Close()

	// бекенд кладёт текст ошибки в тот же конверт и на 4xx/5xx,
	// поэтому тело декодируется при любом статусе
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("Failed to decode response",
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err))
		return resp.StatusCode, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"cause":       "invalid JSON: " + err.Error(),
			"status_code": resp.StatusCode,
		})
	}

	return resp.StatusCode, nil
}
