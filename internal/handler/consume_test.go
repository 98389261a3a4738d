package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The group session restarts after every rebalance or transient broker
// error, so sarama invokes Setup once per session on the same Consumer.
func TestConsumer_SetupSurvivesResubscribe(t *testing.T) {
	t.Parallel()
	consumer := NewConsumer(func(ctx context.Context, now time.Time) (int, error) {
		return 0, nil
	}, zap.NewNop())

	require.NoError(t, consumer.Setup(nil))
	require.NoError(t, consumer.Setup(nil))
	require.NoError(t, consumer.Cleanup(nil))
	require.NoError(t, consumer.Setup(nil))
}
