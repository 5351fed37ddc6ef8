package adapters

import (
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
)

func newTestLogger() outbound.LoggerPort {
	return NewZerologWrapperFrom(zerolog.Nop())
}

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(10)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return pool
}
