package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		require.Equal(t, DEFAULT_PORT, cfg.Port)
		require.Equal(t, "tcp", cfg.Transport)
		require.Equal(t, "localhost:5108", cfg.Addr())
		require.Equal(t, "Ada", cfg.Name1)
		require.Equal(t, "Charles", cfg.Name2)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TCHU_PORT", "6000")
		t.Setenv("TCHU_TRANSPORT", "ws")
		t.Setenv("TCHU_SEED", "42")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		require.Equal(t, 6000, cfg.Port)
		require.Equal(t, "ws", cfg.Transport)
		require.Equal(t, int64(42), cfg.Seed)
	})

	t.Run("rejects unknown transport", func(t *testing.T) {
		t.Setenv("TCHU_TRANSPORT", "carrier-pigeon")

		_, err := LoadConfig()

		require.Error(t, err)
	})
}

func TestRouteClaimPoints(t *testing.T) {
	require.Equal(t, []int{1, 2, 4, 7, 10, 15}, ROUTE_CLAIM_POINTS[MIN_ROUTE_LENGTH:])
}
