package nutrition

import (
	"context"
	"testing"
	"time"

	"chucklechow/internal/infrastructure/config"
	"chucklechow/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(timeout time.Duration) *Pool {
	return NewPool(config.NutritionConfig{
		Workers:      2,
		MaxQueueSize: 10,
		Timeout:      timeout,
	}, nil)
}

func TestPoolEstimate(t *testing.T) {
	p := newTestPool(time.Second)
	defer p.Close()

	items := []common.Ingredient{{Name: "chicken", Quantity: "1 lb"}}

	n, err := p.Estimate(context.Background(), items)
	require.NoError(t, err)
	assert.InDelta(t, Estimate(items).Calories, n.Calories, 0.001)
}

func TestPoolEstimateTimeout(t *testing.T) {
	p := newTestPool(time.Nanosecond)
	defer p.Close()

	_, err := p.Estimate(context.Background(), []common.Ingredient{{Name: "chicken", Quantity: "1 lb"}})
	assert.Error(t, err)
}

func TestPoolProcessedCounter(t *testing.T) {
	p := newTestPool(time.Second)
	defer p.Close()

	items := []common.Ingredient{{Name: "rice", Quantity: "1 cup"}}
	for i := 0; i < 3; i++ {
		_, err := p.Estimate(context.Background(), items)
		require.NoError(t, err)
	}
	assert.Eventually(t, func() bool {
		return p.Processed() == 3
	}, time.Second, 10*time.Millisecond)
}

func TestPoolClosed(t *testing.T) {
	p := newTestPool(time.Second)
	p.Close()

	// Give workers a moment to observe the close.
	time.Sleep(10 * time.Millisecond)

	_, err := p.Estimate(context.Background(), []common.Ingredient{{Name: "rice", Quantity: "1 cup"}})
	assert.Error(t, err)
}
