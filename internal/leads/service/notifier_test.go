package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextNotifierForwardsToRecorder(t *testing.T) {
	rec := &Recorder{}
	ctx := WithRecorder(context.Background(), rec)

	n := ContextNotifier{Logger: zap.NewNop()}
	n.Notify(ctx, Notification{Level: LevelSuccess, Message: "done"})
	n.Notify(context.Background(), Notification{Level: LevelError, Message: "lost"})

	items := rec.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "done", items[0].Message)
}

func TestMetricsAverageCreateLatency(t *testing.T) {
	ResetMetrics()
	assert.Zero(t, GetMetrics().AverageCreateLatency())

	recordCreate(2e6)
	recordCreate(4e6)
	assert.InDelta(t, 3.0, GetMetrics().AverageCreateLatency(), 0.001)
}
