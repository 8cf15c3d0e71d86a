package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pizza-hunt-service/internal/config"
	"github.com/pizza-hunt-service/internal/domain"
	"github.com/pizza-hunt-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *client {
	logger, _ := zap.NewDevelopment()
	cfg := &config.OverpassConfig{
		URL:            baseURL,
		QueryTimeout:   25,
		RequestTimeout: 5 * time.Second,
	}
	return NewOverpassClient(cfg, logger).(*client)
}

func TestClient_FetchPlaces(t *testing.T) {
	center := domain.Point{Lat: 40.7589, Lng: -73.9851}

	t.Run("successful request", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotQuery = r.PostFormValue("data")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"elements": [
					{"id": 1, "type": "node", "lat": 40.75, "lon": -73.98, "tags": {"name": "Slice"}},
					{"id": 2, "type": "way", "center": {"lat": 40.76, "lon": -73.99}, "tags": {"name": "Crust"}},
					{"id": 3, "type": "way", "tags": {"name": "No Coords"}}
				]
			}`))
		}))
		defer server.Close()

		places, err := newTestClient(server.URL).FetchPlaces(context.Background(), center, 0.05)
		require.NoError(t, err)

		// из трёх элементов один без координат отбрасывается
		require.Len(t, places, 2)
		assert.Equal(t, "Slice", places[0].Name)
		assert.Equal(t, "Crust", places[1].Name)
		assert.Equal(t, 40.76, places[1].Lat)

		assert.Contains(t, gotQuery, "[out:json][timeout:25]")
		assert.Contains(t, gotQuery, `"cuisine"~"pizza"`)
		assert.Contains(t, gotQuery, "out center")
		// bbox: south,west,north,east = center ± radius
		assert.Contains(t, gotQuery, "(40.708900,-74.035100,40.808900,-73.935100)")
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"elements": []}`))
		}))
		defer server.Close()

		places, err := newTestClient(server.URL).FetchPlaces(context.Background(), center, 0.05)
		require.NoError(t, err)
		assert.Empty(t, places)
		assert.NotNil(t, places)
	})

	t.Run("non-json response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>rate limited</html>"))
		}))
		defer server.Close()

		places, err := newTestClient(server.URL).FetchPlaces(context.Background(), center, 0.05)
		assert.Nil(t, places)
		assert.ErrorIs(t, err, errors.ErrUpstreamNetwork)
	})

	t.Run("upstream http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGatewayTimeout)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FetchPlaces(context.Background(), center, 0.05)
		assert.ErrorIs(t, err, errors.ErrUpstreamNetwork)
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // закрыт до запроса

		_, err := newTestClient(server.URL).FetchPlaces(context.Background(), center, 0.05)
		assert.ErrorIs(t, err, errors.ErrUpstreamNetwork)
	})
}
