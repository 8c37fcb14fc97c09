package bootstrap

import (
	"majestic-manor/internal/observability"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Invoke(registerMetrics),
)

// registerMetrics wires the collectors into the default registry, which is
// what the /metrics promhttp handler serves.
func registerMetrics() {
	observability.MustRegister(prometheus.DefaultRegisterer)
}
