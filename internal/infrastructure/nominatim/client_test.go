package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pizza-hunt-service/internal/config"
	"github.com/pizza-hunt-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *client {
	logger, _ := zap.NewDevelopment()
	cfg := &config.NominatimConfig{
		URL:            baseURL,
		UserAgent:      "PizzaHuntService/1.0 (test)",
		RequestTimeout: 5 * time.Second,
	}
	return NewNominatimClient(cfg, logger).(*client)
}

func TestClient_Resolve(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "PizzaHuntService/1.0 (test)", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"lat": "52.5170365", "lon": "13.3888599", "display_name": "Berlin, Deutschland"}]`))
		}))
		defer server.Close()

		loc, err := newTestClient(server.URL).Resolve(context.Background(), "Berlin")
		require.NoError(t, err)
		assert.Equal(t, 52.5170365, loc.Lat)
		assert.Equal(t, 13.3888599, loc.Lng)
		assert.Equal(t, "Berlin, Deutschland", loc.Label)
	})

	t.Run("zero matches", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		loc, err := newTestClient(server.URL).Resolve(context.Background(), "Nowheresville-xyz")
		assert.Nil(t, loc)
		assert.ErrorIs(t, err, errors.ErrCityNotFound)
	})

	t.Run("invalid latitude text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"lat": "not-a-number", "lon": "13.38", "display_name": "Berlin"}]`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Resolve(context.Background(), "Berlin")
		assert.ErrorIs(t, err, errors.ErrUpstreamFormat)
	})

	t.Run("non-json response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Too Many Requests"))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Resolve(context.Background(), "Berlin")
		assert.ErrorIs(t, err, errors.ErrUpstreamNetwork)
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).Resolve(context.Background(), "Berlin")
		assert.ErrorIs(t, err, errors.ErrUpstreamNetwork)
	})
}
