package openweathermap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guuullchin11/baku-air-guardian/internal/airquality/openweathermap"
	"github.com/guuullchin11/baku-air-guardian/internal/upstream"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*openweathermap.Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)

	cfg := upstream.DefaultClientConfig("test")
	cfg.MaxRetries = 0

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: upstream.NewClient(cfg),
	})
	return client, server.Close
}

func TestClient_GetReading(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("lat"), "40.39")
		assert.Contains(t, r.URL.Query().Get("lon"), "49.88")
		assert.Equal(t, "****", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"list": [{
				"main": {"aqi": 3},
				"components": {"co": 256.789, "no2": 12.345, "o3": 48.1, "pm2_5": 35.456, "pm10": 42.9999}
			}]
		}`))
	})
	defer closeServer()

	reading, err := client.GetReading(context.Background(), 40.3947, 49.8822)
	require.NoError(t, err)
	require.NotNil(t, reading)

	assert.Equal(t, 125, reading.AQI, "category 3 normalizes to 125")
	assert.Equal(t, 35.46, reading.PM25)
	assert.Equal(t, 43.0, reading.PM10)
	assert.Equal(t, 256.79, reading.CO)
	assert.Equal(t, 12.35, reading.NO2)
	assert.Equal(t, 48.1, reading.O3)
}

func TestClient_GetReading_UnknownIndexDefaults(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"list":[{"main":{"aqi":9},"components":{}}]}`))
	})
	defer closeServer()

	reading, err := client.GetReading(context.Background(), 40.0, 49.0)
	require.NoError(t, err)
	assert.Equal(t, 100, reading.AQI)
}

func TestClient_GetReading_ServerError(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer closeServer()

	_, err := client.GetReading(context.Background(), 40.0, 49.0)
	require.Error(t, err)
}

func TestClient_GetReading_MalformedBody(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"list": not-json`))
	})
	defer closeServer()

	_, err := client.GetReading(context.Background(), 40.0, 49.0)
	require.Error(t, err)
}

func TestClient_GetReading_EmptyList(t *testing.T) {
	client, closeServer := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"list":[]}`))
	})
	defer closeServer()

	_, err := client.GetReading(context.Background(), 40.0, 49.0)
	require.Error(t, err)
}

func TestClient_Name(t *testing.T) {
	client := openweathermap.NewClient(openweathermap.ClientConfig{APIKey: "****"})
	assert.Equal(t, "openweathermap", client.Name())
}
