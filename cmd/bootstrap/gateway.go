package bootstrap

import (
	"log/slog"

	"studio-agenda/internal/infra/gateway"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGatewayMetrics,
		fx.Annotate(
			NewBackendClient,
			fx.As(new(shared.BookingGateway)),
		),
	),
)

// NewGatewayMetrics registers on the default registry served by /metrics.
func NewGatewayMetrics() *gateway.Metrics {
	return gateway.NewMetrics(prometheus.DefaultRegisterer)
}

func NewBackendClient(cfg config.Config, logger *slog.Logger, metrics *gateway.Metrics) *gateway.Client {
	return gateway.NewClient(cfg.Backend, logger, metrics)
}
