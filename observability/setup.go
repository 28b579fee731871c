package observability

import (
	"context"
	stderrors "errors"

	"github.com/kbukum/numkit/logger"
)

// ShutdownFunc flushes and stops the installed providers.
type ShutdownFunc func(ctx context.Context) error

// Setup installs tracer and meter providers according to cfg. When cfg is
// disabled it installs nothing and returns a no-op shutdown.
func Setup(ctx context.Context, cfg Config, info ServiceInfo) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := newResource(info)
	if err != nil {
		return nil, err
	}

	tp, err := InitTracer(ctx, cfg, res)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, cfg, res)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	logger.WithComponent("observability").Info("telemetry initialized", logger.Fields(
		"service", info.Name,
		"endpoint", cfg.Endpoint,
		"sample_rate", cfg.SampleRate,
		"interval", cfg.Interval.String(),
	))

	return func(ctx context.Context) error {
		return stderrors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
