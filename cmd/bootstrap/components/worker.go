package components

import (
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/usecase/commands"
	"dining-concierge/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewWorker,
	),
)

func NewWorker(fulfillment commands.FulfillmentCommands, cfg config.Config) *worker.Worker {
	return worker.New(fulfillment, cfg.Worker)
}
