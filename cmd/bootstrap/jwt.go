package bootstrap

import (
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Auth.Secret, cfg.Auth.Duration)
}
