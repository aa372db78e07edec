package components

import (
	"dining-concierge/internal/infra/kvstore"
	"dining-concierge/internal/infra/notify"
	"dining-concierge/internal/infra/queue"
	"dining-concierge/internal/infra/searchstore"
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewReservationQueue,
		fx.Annotate(
			searchstore.NewRestaurantSearchStore,
			fx.As(new(commands.RestaurantSearch)),
		),
		fx.Annotate(
			kvstore.NewRestaurantStore,
			fx.As(new(commands.RestaurantStore)),
		),
		NewNotifier,
	),
)

func NewReservationQueue(rdb *redis.Client, cfg config.Config) commands.ReservationQueue {
	return queue.NewRedisQueue(rdb, cfg.Queue)
}

func NewNotifier(cfg config.Config) commands.Notifier {
	return notify.NewSMSClient(cfg.SMS)
}
