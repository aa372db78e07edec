package components

import (
	"dining-concierge/internal/domain/dialog"
	"dining-concierge/internal/pkg/clock"
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewDialogRules,
		commands.NewRecommendationSelector,
		commands.NewDialogCommands,
		commands.NewFulfillmentCommands,
	),
)

func NewDialogRules(cfg config.Config) dialog.Rules {
	return dialog.Rules{
		Cuisines:       cfg.Dialog.Cuisines,
		PopularCuisine: cfg.Dialog.PopularCuisine,
		Location:       cfg.Dialog.Location,
		OpenHour:       cfg.Dialog.OpenHour,
		CloseHour:      cfg.Dialog.CloseHour,
	}
}
