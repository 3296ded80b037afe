package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Load default config when no config file is present", func(t *testing.T) {
		cfg, err := LoadConfig(".")
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
		assert.True(t, cfg.Server.RateLimit.Enabled)

		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Encoding)

		assert.Equal(t, 9090, cfg.Metrics.Port)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)

		assert.Equal(t, "microloan-ledger", cfg.RabbitMQ.ExchangeName)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 30*time.Second, cfg.Redis.ReportTTL)

		assert.Equal(t, "0 2 * * *", cfg.Batch.LoanRecomputeSchedule)
		assert.Equal(t, 30*time.Minute, cfg.Batch.LoanRecomputeTimeout)
	})
}
