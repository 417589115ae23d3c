// README: Latency-recording decorator for text generators.
package ai

import (
	"context"
	"time"

	"wayfarer/internal/metrics"
)

type instrumentedGenerator struct {
	next    TextGenerator
	adapter string
	metrics *metrics.Metrics
}

// WithMetrics wraps a generator so every call is timed under the given
// adapter label. A nil Metrics returns the generator unwrapped.
func WithMetrics(next TextGenerator, adapter string, m *metrics.Metrics) TextGenerator {
	if m == nil {
		return next
	}
	return &instrumentedGenerator{next: next, adapter: adapter, metrics: m}
}

func (g *instrumentedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := g.next.Generate(ctx, prompt)
	g.metrics.GenerationDuration.WithLabelValues(g.adapter).Observe(time.Since(start).Seconds())
	return out, err
}
