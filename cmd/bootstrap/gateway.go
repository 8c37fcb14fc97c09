package bootstrap

import (
	"majestic-manor/internal/infra/gateway/razorpay"
	"majestic-manor/internal/pkg/config"
	"majestic-manor/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewGatewayClient(cfg config.Config) (*razorpay.Client, error) {
	return razorpay.New(cfg.Gateway)
}
