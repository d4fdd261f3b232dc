package model

import (
	"context"
	"sync"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	GameOverMessage = "Game over"

	DefaultInterval = time.Second
)

// Driver advances a Board on a fixed interval and renders every generation.
// Ticks run one at a time on a single goroutine.
type Driver struct {
	board    *Board
	renderer Renderer
	interval time.Duration
	stats    *utils.Stats

	generation int
	lastTick   time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewDriver creates a driver. A non-positive interval falls back to DefaultInterval.
func NewDriver(board *Board, renderer Renderer, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Driver{
		board:    board,
		renderer: renderer,
		interval: interval,
		stats:    utils.NewStats(),
	}
}

// Stats returns the statistics gathered so far. Only read it once the driver has stopped.
func (d *Driver) Stats() *utils.Stats {
	return d.stats
}

// Tick performs one step: it emits the completion message and returns false
// when the board is finished, otherwise it advances and renders one generation.
func (d *Driver) Tick() bool {
	if d.board.Finished() {
		d.renderer.Finish(GameOverMessage)
		return false
	}

	d.board.Step()
	d.renderer.Render(d.board.Render())

	now := time.Now()
	var elapsed time.Duration
	if !d.lastTick.IsZero() {
		elapsed = now.Sub(d.lastTick)
	}
	d.lastTick = now
	d.generation++
	d.stats.Update(d.generation, d.board.Grid().CountLivingCells(), elapsed)

	return true
}

// Run ticks once immediately and then once per interval until the board is
// finished (nil) or ctx is done (ctx.Err()).
func (d *Driver) Run(ctx context.Context) error {
	if !d.Tick() {
		return nil
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !d.Tick() {
				return nil
			}
		}
	}
}

// Start runs the driver in the background. Calling it again is a no-op.
func (d *Driver) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done != nil {
		return
	}

	ctx, d.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	d.done = done

	go func() {
		defer close(done)
		d.err = d.Run(ctx)
	}()
}

// Stop cancels the repeating tick. The tick in flight, if any, completes.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until a started driver returns and reports its result
func (d *Driver) Wait() error {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done
	return d.err
}
