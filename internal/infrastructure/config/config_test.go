package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setCredentials sets the three required credentials for the duration of t.
func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("SQUARE_ACCESS_TOKEN", "sq-token")
	t.Setenv("SQUARE_LOCATION_ID", "LOC123")
	t.Setenv("VAPI_API_KEY", "vapi-key")
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range bareEnv {
		t.Setenv(name, "")
	}
	for _, name := range []string{
		"VOICEWAITER_APP_NAME",
		"VOICEWAITER_APP_ENV",
		"VOICEWAITER_APP_PORT",
		"VOICEWAITER_SQUARE_ACCESS_TOKEN",
		"VOICEWAITER_SQUARE_LOCATION_ID",
		"VOICEWAITER_SQUARE_ENVIRONMENT",
		"VOICEWAITER_SQUARE_TIMEOUT",
		"VOICEWAITER_VAPI_API_KEY",
		"VOICEWAITER_LOG_LEVEL",
		"VOICEWAITER_HTTP_MAX_BODY_SIZE",
		"VOICEWAITER_TELEMETRY_ENABLED",
		"VOICEWAITER_TELEMETRY_SAMPLING_RATIO",
		"VOICEWAITER_SWAGGER_ENABLED",
		"VOICEWAITER_SWAGGER_ALLOWED_IPS",
		"VOICEWAITER_TELEMETRY_PROFILING_ENABLED",
		"VOICEWAITER_TELEMETRY_PROFILING_SERVER_ADDRESS",
		"VOICEWAITER_TELEMETRY_PROFILING_TYPES",
		"VOICEWAITER_TELEMETRY_SPAN_PROFILES_ENABLED",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when only credentials are set", func(t *testing.T) {
		clearEnv(t)
		setCredentials(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "voicewaiter", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8000", cfg.App.Port)
		assert.Equal(t, "sq-token", cfg.Square.AccessToken)
		assert.Equal(t, "LOC123", cfg.Square.LocationID)
		assert.Equal(t, "sandbox", cfg.Square.Environment)
		assert.Equal(t, 30*time.Second, cfg.Square.Timeout)
		assert.Equal(t, "vapi-key", cfg.Vapi.APIKey)
		assert.Empty(t, cfg.Vapi.WebhookSecret)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, "voicewaiter", cfg.Telemetry.ServiceName)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.False(t, cfg.IsProduction())
		assert.True(t, cfg.Swagger.Enabled)
		assert.Empty(t, cfg.Swagger.AllowedIPs)
		assert.False(t, cfg.Telemetry.ProfilingEnabled)
		assert.Equal(t, "http://localhost:4040", cfg.Telemetry.ProfilingServerAddress)
		assert.Equal(t, []string{"cpu", "alloc_space", "inuse_space", "goroutines"}, cfg.Telemetry.ProfilingTypes)
	})

	t.Run("reads swagger and profiling settings", func(t *testing.T) {
		clearEnv(t)
		setCredentials(t)
		t.Setenv("VOICEWAITER_SWAGGER_ALLOWED_IPS", "10.0.0.0/8 127.0.0.1")
		t.Setenv("VOICEWAITER_TELEMETRY_PROFILING_ENABLED", "true")
		t.Setenv("VOICEWAITER_TELEMETRY_PROFILING_SERVER_ADDRESS", "http://pyroscope:4040")
		t.Setenv("VOICEWAITER_TELEMETRY_PROFILING_TYPES", "cpu goroutines")
		t.Setenv("VOICEWAITER_TELEMETRY_SPAN_PROFILES_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Swagger.AllowedIPs)
		assert.True(t, cfg.Telemetry.ProfilingEnabled)
		assert.Equal(t, "http://pyroscope:4040", cfg.Telemetry.ProfilingServerAddress)
		assert.Equal(t, []string{"cpu", "goroutines"}, cfg.Telemetry.ProfilingTypes)
		assert.True(t, cfg.Telemetry.SpanProfilesEnabled)
	})

	t.Run("production requires swagger to be disabled or restricted", func(t *testing.T) {
		clearEnv(t)
		setCredentials(t)
		t.Setenv("VOICEWAITER_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger")

		t.Setenv("VOICEWAITER_SWAGGER_ENABLED", "false")
		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Swagger.Enabled)

		t.Setenv("VOICEWAITER_SWAGGER_ENABLED", "true")
		t.Setenv("VOICEWAITER_SWAGGER_ALLOWED_IPS", "10.0.0.0/8")
		_, err = Load()
		require.NoError(t, err)
	})

	t.Run("prefixed variables win over bare names", func(t *testing.T) {
		clearEnv(t)
		setCredentials(t)
		t.Setenv("VOICEWAITER_SQUARE_ACCESS_TOKEN", "prefixed-token")
		t.Setenv("VOICEWAITER_APP_PORT", "9000")
		t.Setenv("VOICEWAITER_SQUARE_TIMEOUT", "5s")
		t.Setenv("VOICEWAITER_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "prefixed-token", cfg.Square.AccessToken)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, 5*time.Second, cfg.Square.Timeout)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("reads optional platform settings", func(t *testing.T) {
		clearEnv(t)
		setCredentials(t)
		t.Setenv("SQUARE_ENVIRONMENT", "production")
		t.Setenv("SQUARE_BASE_URL", "http://localhost:9999")
		t.Setenv("SQUARE_API_VERSION", "2024-06-04")
		t.Setenv("VAPI_WEBHOOK_SECRET", "shh")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.Square.Environment)
		assert.Equal(t, "http://localhost:9999", cfg.Square.BaseURL)
		assert.Equal(t, "2024-06-04", cfg.Square.APIVersion)
		assert.Equal(t, "shh", cfg.Vapi.WebhookSecret)
	})

	t.Run("fails when a credential is missing", func(t *testing.T) {
		for _, missing := range []string{"SQUARE_ACCESS_TOKEN", "SQUARE_LOCATION_ID", "VAPI_API_KEY"} {
			t.Run(missing, func(t *testing.T) {
				clearEnv(t)
				setCredentials(t)
				t.Setenv(missing, "")

				cfg, err := Load()
				assert.Nil(t, cfg)
				require.ErrorIs(t, err, ErrMissingCredential)
				assert.Contains(t, err.Error(), missing)
			})
		}
	})

	t.Run("rejects unknown square environment", func(t *testing.T) {
		clearEnv(t)
		setCredentials(t)
		t.Setenv("SQUARE_ENVIRONMENT", "staging")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "square.environment")
	})

	t.Run("rejects sampling ratio out of range", func(t *testing.T) {
		clearEnv(t)
		setCredentials(t)
		t.Setenv("VOICEWAITER_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{App: AppConfig{Name: "custom"}}
	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.Telemetry.ServiceName)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 60*time.Second, cfg.Telemetry.MetricsInterval)
	assert.Equal(t, "stdout", cfg.Log.Output)
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}}
	assert.True(t, cfg.IsProduction())
}
