package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("stats polling interval set", func(t *testing.T) {
		cfg := &PollerConfig{
			StatsPollingInterval: 3 * time.Minute,
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Minute, cfg.StatsPollingInterval)
	})

	t.Run("stats polling interval not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{
			StatsPollingInterval: 0, // not set
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultStatsPollingInterval, cfg.StatsPollingInterval)
		assert.Equal(t, 5*time.Minute, cfg.StatsPollingInterval)
	})

	t.Run("stats polling interval negative - should use default", func(t *testing.T) {
		cfg := &PollerConfig{
			StatsPollingInterval: -1 * time.Minute, // negative
		}
		err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, defaultStatsPollingInterval, cfg.StatsPollingInterval)
	})
}
