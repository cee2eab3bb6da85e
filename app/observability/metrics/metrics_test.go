package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppMetrics_Idempotent(t *testing.T) {
	InitAppMetrics()
	first := Get()
	InitAppMetrics()
	second := Get()

	require.NotNil(t, first)
	assert.Same(t, first, second)

	// noop provider in tests; recording must not panic
	first.EventFetchRequestsTotal.Add(context.Background(), 1)
	first.EventFetchDurationSeconds.Record(context.Background(), 0.25)
	first.ActiveSessions.Add(context.Background(), -1)
}
