package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/numkit/accumulate"
	"github.com/kbukum/numkit/config"
	"github.com/kbukum/numkit/errors"
	"github.com/kbukum/numkit/logger"
	"github.com/kbukum/numkit/observability"
	"github.com/kbukum/numkit/solver"
	"github.com/kbukum/numkit/validation"
	"github.com/kbukum/numkit/version"
)

var (
	cfgFile  string
	strategy string
	logLevel string
	epsilon  float64
	runID    string
	timeout  time.Duration
)

// annotationNoSetup marks commands that run without config, logging or telemetry.
const annotationNoSetup = "numkit/no-setup"

var rootCmd = &cobra.Command{
	Use:   "numkit",
	Short: "Numerical methods over pluggable reduction strategies",
	Long: `numkit evaluates series, products, roots and fixed points.

Every series is folded by one of the accumulation strategies:
  recursive       - direct recursion
  tail-recursive  - recursion driven by a trampoline
  imperative      - a plain loop
  parallel        - chunked fold over a worker pool`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./cmd/numkit/config.yml, ./config/config.yml or ./config.yml)")
	flags.StringVarP(&strategy, "strategy", "s", "", "accumulation strategy: recursive, tail-recursive, imperative, parallel")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.Float64Var(&epsilon, "epsilon", 0, "solver tolerance (overrides config)")
	flags.StringVar(&runID, "run-id", "", "run identifier (UUID, generated when empty)")
	flags.DurationVar(&timeout, "timeout", 0, "abort the evaluation after this long (0 = no limit)")
}

// session carries everything a command needs for one run.
type session struct {
	cfg      *config.Config
	log      *logger.Logger
	runID    uuid.UUID
	strategy accumulate.Strategy
	solver   *solver.Solver
	metrics  *observability.Metrics
	span     trace.Span
	cancel   context.CancelFunc
	shutdown observability.ShutdownFunc
	started  time.Time
}

var current *session

func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationNoSetup] != "" {
		return nil
	}

	var opts []config.LoaderOption
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	if strategy != "" {
		s, err := accumulate.Lookup(strategy)
		if err != nil {
			return err
		}
		cfg.Accumulate.Strategy = s.Name()
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Solver.Epsilon = epsilon
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	id, err := validation.RunID(runID)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, cmd.ErrOrStderr()).
		WithFields(logger.Fields(logger.FieldRunID, id.String()))
	logger.SetGlobalLogger(log)

	ctx := cmd.Context()
	shutdown, err := observability.Setup(ctx, cfg.Observability, observability.ServiceInfo{
		Name:        cfg.Name,
		Version:     version.Get().Short(),
		Environment: cfg.Environment,
	})
	if err != nil {
		return errors.Internal(err)
	}
	metrics, err := observability.NewMetrics(observability.Meter(observability.InstrumentationName))
	if err != nil {
		_ = shutdown(ctx)
		return errors.Internal(err)
	}

	base, err := cfg.Accumulate.Resolve()
	if err != nil {
		_ = shutdown(ctx)
		return err
	}

	s := &session{
		cfg:      cfg,
		log:      log,
		runID:    id,
		strategy: observability.InstrumentStrategy(base, metrics),
		solver:   solver.New(cfg.Solver, solver.WithLogger(log)),
		metrics:  metrics,
		shutdown: shutdown,
		started:  time.Now(),
	}

	ctx, s.span = observability.StartSpan(ctx, "numkit "+cmd.Name())
	observability.SetSpanAttribute(ctx, observability.AttrRunID, id.String())
	observability.SetSpanAttribute(ctx, observability.AttrStrategy, base.Name())
	if timeout > 0 {
		ctx, s.cancel = context.WithTimeout(ctx, timeout)
	}
	cmd.SetContext(ctx)
	current = s

	log.Debug("run started", logger.Fields(
		logger.FieldOperation, cmd.Name(),
		logger.FieldStrategy, base.Name(),
		"epsilon", cfg.Solver.Epsilon,
	))
	return nil
}

// close ends the run span, flushes telemetry and logs the outcome.
func (s *session) close(ctx context.Context, err error) {
	if s.cancel != nil {
		s.cancel()
	}
	if err != nil {
		s.log.WithError(err).Debug("run failed", logger.DurationFields("run", time.Since(s.started)))
		s.span.RecordError(err)
	} else {
		s.log.Debug("run finished", logger.DurationFields("run", time.Since(s.started)))
	}
	s.span.End()
	if shutdownErr := s.shutdown(ctx); shutdownErr != nil {
		s.log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", shutdownErr))
	}
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if current != nil {
		current.close(context.WithoutCancel(ctx), err)
		current = nil
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return err
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if appErr, ok := errors.AsAppError(err); ok {
		return errors.ExitCode(appErr.Code)
	}
	return 1
}
