package main

import (
	"net/http"
	"os"
	"path/filepath"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vilaca/profile-detective/internal/config"
)

func TestBuildServer_Routes(t *testing.T) {
	tests := []struct {
		name        string
		metrics     bool
		wantMetrics int
	}{
		{name: "metrics enabled", metrics: true, wantMetrics: http.StatusOK},
		{name: "metrics disabled", metrics: false, wantMetrics: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.MetricsEnabled = tt.metrics

			handler, err := buildServer(cfg, zap.NewNop().Sugar())
			require.NoError(t, err)

			health := httptest.NewRecorder()
			handler.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			assert.Equal(t, http.StatusOK, health.Code)

			metrics := httptest.NewRecorder()
			handler.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			assert.Equal(t, tt.wantMetrics, metrics.Code)
		})
	}
}

func TestBuildServer_RejectsBadTimezone(t *testing.T) {
	cfg := config.Defaults()
	cfg.Timezone = "Nowhere/Special"

	_, err := buildServer(cfg, zap.NewNop().Sugar())

	assert.Error(t, err)
}

func TestNewTUILogger(t *testing.T) {
	t.Run("no file discards", func(t *testing.T) {
		cfg := config.Defaults()

		logger, err := newTUILogger(cfg)

		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
	})

	t.Run("file honors configured level", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.LogLevel = "error"
		cfg.TUILogFile = filepath.Join(t.TempDir(), "tui.log")

		logger, err := newTUILogger(cfg)
		require.NoError(t, err)
		logger.Warn("lookup slow")
		logger.Error("lookup failed", zap.String("username", "octocat"))
		_ = logger.Sync()

		data, err := os.ReadFile(cfg.TUILogFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "lookup failed")
		assert.NotContains(t, string(data), "lookup slow")
	})

	t.Run("unwritable file fails", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.TUILogFile = filepath.Join(t.TempDir(), "missing", "tui.log")

		_, err := newTUILogger(cfg)

		assert.Error(t, err)
	})
}
