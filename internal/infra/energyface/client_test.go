//go:build unit

package energyface_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"famboard/internal/infra/energyface"
	"famboard/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *energyface.Client {
	return energyface.NewClient(config.SensorConfig{
		BaseURL:  baseURL,
		SiteID:   "pool-1",
		DeviceID: 2,
		Timeout:  5 * time.Second,
	})
}

func TestFetchLatestReading(t *testing.T) {
	day := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)

	t.Run("returns the newest sample of the day", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"x":0.5,"y":41.2},{"x":8.5,"y":38.7}]`))
		}))
		defer server.Close()

		reading, err := newClient(server.URL).FetchLatestReading(context.Background(), day)
		require.NoError(t, err)
		require.NotNil(t, reading)

		assert.Equal(t, "/Data/pool-1/GrafData/2026/02/14_2.json", gotPath)
		assert.Equal(t, 38.7, reading.Value)
		assert.Equal(t, time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC), reading.Timestamp)
	})

	t.Run("missing day file means no data, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		reading, err := newClient(server.URL).FetchLatestReading(context.Background(), day)
		require.NoError(t, err)
		assert.Nil(t, reading)
	})

	t.Run("empty day file means no data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		reading, err := newClient(server.URL).FetchLatestReading(context.Background(), day)
		require.NoError(t, err)
		assert.Nil(t, reading)
	})

	t.Run("server errors surface to the caller", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newClient(server.URL).FetchLatestReading(context.Background(), day)
		assert.Error(t, err)
	})

	t.Run("malformed body surfaces to the caller", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"not":"an array"}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).FetchLatestReading(context.Background(), day)
		assert.Error(t, err)
	})
}
