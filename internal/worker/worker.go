package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/usecase/commands"
)

// Worker polls the reservation queue and drives queued requests through
// fulfillment. It runs decoupled from conversation turns; the queue's
// visibility timeout is the only coordination between concurrent instances.
type Worker struct {
	fulfillment commands.FulfillmentCommands
	interval    time.Duration
}

func New(fulfillment commands.FulfillmentCommands, cfg config.WorkerConfig) *Worker {
	return &Worker{
		fulfillment: fulfillment,
		interval:    cfg.PollInterval,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	// kick immediately
	w.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			w.drain(ctx)
		}
	}
}

// drain processes messages until the queue reports empty or a cycle fails.
// Failed cycles are not retried here: the message stays pending and the
// queue's redelivery policy owns the retry.
func (w *Worker) drain(ctx context.Context) {
	for {
		processed, err := w.fulfillment.ProcessNext(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Error("fulfillment cycle failed", "error", err)
			return
		}
		if !processed {
			return
		}
	}
}
