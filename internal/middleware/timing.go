package middleware

import (
	"context"
	"net/http"

	servertiming "github.com/mitchellh/go-server-timing"
)

// ServerTiming adds a Server-Timing response header built from the metrics
// handlers record with StartTiming. Disabled, it passes requests through.
func ServerTiming(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return servertiming.Middleware(next, nil)
	}
}

// TimingMetric is a running Server-Timing metric. The zero value is a no-op.
type TimingMetric struct {
	metric *servertiming.Metric
}

// StartTiming starts a metric on the request's timing header. It must be
// stopped before the response header is written.
func StartTiming(ctx context.Context, name, desc string) *TimingMetric {
	timing := servertiming.FromContext(ctx)
	if timing == nil {
		return &TimingMetric{}
	}
	return &TimingMetric{metric: timing.NewMetric(name).WithDesc(desc).Start()}
}

func (m *TimingMetric) Stop() {
	if m != nil && m.metric != nil {
		m.metric.Stop()
	}
}
