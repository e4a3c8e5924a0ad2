package nutrition

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"chucklechow/internal/infrastructure/config"
	"chucklechow/internal/pkg/common"

	"go.uber.org/zap"
)

// task is a single estimation request.
type task struct {
	ctx    context.Context
	items  []common.Ingredient
	result chan result
}

type result struct {
	nutrition common.Nutrition
	err       error
}

// Pool runs nutrition estimation on a bounded set of workers with a hard
// per-request timeout. Callers are expected to substitute a placeholder when
// Estimate returns an error; nutrition never fails a request.
type Pool struct {
	cfg       config.NutritionConfig
	client    *Client
	queue     chan *task
	done      chan struct{}
	processed int64
}

// NewPool creates and starts the worker pool. client may be nil, in which
// case only the local tables are used.
func NewPool(cfg config.NutritionConfig, client *Client) *Pool {
	p := &Pool{
		cfg:    cfg,
		client: client,
		queue:  make(chan *task, cfg.MaxQueueSize),
		done:   make(chan struct{}),
	}

	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}

	common.LogInfo("nutrition pool started",
		zap.Int("workers", cfg.Workers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("remote_lookup", client != nil),
	)

	return p
}

// Estimate dispatches an estimation to the pool and waits for the result,
// bounded by the configured timeout.
func (p *Pool) Estimate(ctx context.Context, items []common.Ingredient) (common.Nutrition, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	t := &task{
		ctx:    ctx,
		items:  items,
		result: make(chan result, 1),
	}

	select {
	case p.queue <- t:
	case <-ctx.Done():
		return common.Nutrition{}, common.ErrNutritionTimeout
	case <-p.done:
		return common.Nutrition{}, fmt.Errorf("nutrition pool is closed")
	}

	select {
	case res := <-t.result:
		return res.nutrition, res.err
	case <-ctx.Done():
		common.LogWarn("nutrition estimation timed out",
			zap.Int("items", len(items)),
			zap.Duration("timeout", p.cfg.Timeout),
		)
		return common.Nutrition{}, common.ErrNutritionTimeout
	}
}

// Processed returns the number of completed estimations.
func (p *Pool) Processed() int64 {
	return atomic.LoadInt64(&p.processed)
}

// QueueLength returns the number of queued estimations.
func (p *Pool) QueueLength() int {
	return len(p.queue)
}

// Close stops the pool. In-flight tasks finish; queued tasks are dropped.
func (p *Pool) Close() {
	close(p.done)
}

func (p *Pool) worker() {
	for {
		select {
		case t := <-p.queue:
			t.result <- p.process(t)
			atomic.AddInt64(&p.processed, 1)
		case <-p.done:
			return
		}
	}
}

func (p *Pool) process(t *task) result {
	if t.ctx.Err() != nil {
		return result{err: t.ctx.Err()}
	}

	if p.client != nil {
		start := time.Now()
		n, err := p.client.Lookup(t.ctx, t.items)
		if err == nil {
			common.LogDebug("remote nutrition lookup succeeded",
				zap.Duration("latency", time.Since(start)),
				zap.Int("items", len(t.items)),
			)
			return result{nutrition: n}
		}
		common.LogWarn("remote nutrition lookup failed, using local tables",
			zap.Error(err),
			zap.Duration("latency", time.Since(start)),
		)
	}

	return result{nutrition: Estimate(t.items)}
}
