package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"link/config"
	"link/di"
	"link/shared/logger"
	"link/shared/timezone"
)

var (
	once     bool
	interval int64
)

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Drop scoped views left behind by crashed requests",
	Long: `Drop every per-request view whose ledger entry is older than the view TTL.

Examples:
  sweep --once             # Sweep a single time and exit
  sweep --interval 60      # Sweep every 60 seconds until interrupted`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&once, "once", false, "Sweep once and exit")
	rootCmd.Flags().Int64Var(&interval, "interval", 0, "Seconds between sweeps, overrides SCOPE_SWEEP_INTERVAL_SECONDS")
}

func run(ctx context.Context) error {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	if interval > 0 {
		cfg.Scope.SweepIntervalSeconds = interval
	}

	sweeper := di.InitializeSweeper()

	if once {
		swept, err := sweeper.SweepOnce(ctx)
		if err != nil {
			return err
		}

		log.Info().Int("views", swept).Msg("Sweep completed")

		return nil
	}

	err := sweeper.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
