package telegram

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Runner owns the lifetime of the selected transport
type Runner struct {
	transport Transport
	logger    zerolog.Logger

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewRunner creates a runner for transport
func NewRunner(transport Transport, logger zerolog.Logger) *Runner {
	return &Runner{transport: transport, logger: logger}
}

// Start prepares the transport and runs it in a goroutine
func (r *Runner) Start(ctx context.Context) error {
	if err := r.transport.Prepare(ctx); err != nil {
		return err
	}

	// The transport outlives the start context
	runCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.running.Store(true)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.running.Store(false)
		r.transport.Run(runCtx)
	}()

	r.logger.Info().Str("transport", r.transport.Name()).Msg("Telegram transport started")
	return nil
}

// Stop cancels the transport and waits for it to return or for ctx to expire
func (r *Runner) Stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.logger.Info().Str("transport", r.transport.Name()).Msg("Stopping Telegram transport...")
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Healthy reports whether the transport is dispatching updates
func (r *Runner) Healthy() bool {
	return r.running.Load()
}

// TransportName returns the selected transport
func (r *Runner) TransportName() string {
	return r.transport.Name()
}
