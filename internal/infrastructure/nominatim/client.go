package nominatim

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
	"github.com/pizza-hunt-service/internal/domain/repository"
	"github.com/pizza-hunt-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewNominatimClient создает новый клиент для Nominatim API
func NewNominatimClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.URL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve геокодирует текстовый запрос, запрашивая у Nominatim
// не более одного совпадения
func (c *client) Resolve(ctx context.Context, query string) (*domain.Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Nominatim API", zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim требует идентифицирующий клиента User-Agent
	req.Header.Set("User-Agent", c.userAgent)

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
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"status_code": resp.StatusCode,
		})
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrUpstreamNetwork.WithDetails(map[string]interface{}{
			"cause": "invalid JSON: " + err.Error(),
		})
	}

	if len(results) == 0 {
		c.logger.Info("Nominatim returned no matches", zap.String("query", query))
		return nil, errors.ErrCityNotFound
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, errors.ErrUpstreamFormat.WithDetails(map[string]interface{}{
			"cause": "invalid latitude: " + first.Lat,
		})
	}
	lng, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, errors.ErrUpstreamFormat.WithDetails(map[string]interface{}{
			"cause": "invalid longitude: " + first.Lon,
		})
	}

	c.logger.Debug("Nominatim API call successful",
		zap.String("query", query),
		zap.String("display_name", first.DisplayName))

	return &domain.Location{
		Lat:   lat,
		Lng:   lng,
		Label: first.DisplayName,
	}, nil
}
