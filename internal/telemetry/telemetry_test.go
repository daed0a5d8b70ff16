package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guuullchin11/baku-air-guardian/internal/telemetry"
)

func TestInit_DisabledReturnsInertProvider(t *testing.T) {
	provider, err := telemetry.Init(context.Background(), telemetry.Config{
		ServiceName:    "baku-air-guardian-api",
		ServiceVersion: "test",
		Environment:    "test",
		OTLPEndpoint:   "localhost:4317",
		Enabled:        false,
	})

	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.False(t, provider.Active())
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_ZeroValueShutdown(t *testing.T) {
	var provider telemetry.Provider

	assert.False(t, provider.Active())
	assert.NoError(t, provider.Shutdown(context.Background()))
}
