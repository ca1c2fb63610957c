// Package cli implements the rosterctl commands.
package cli

import (
	"context"
	"driver-training-service/internal/adapters/idgen"
	"driver-training-service/internal/bootstrap"
	"driver-training-service/internal/config"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/services"
	"driver-training-service/internal/store"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	logLevel string
}

// RootCmd returns the rosterctl root command with all subcommands attached.
func RootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "rosterctl",
		Short: "Manage trainee drivers, roster entries and training reports",
		Long: `rosterctl works directly against the configured state backend
(STORE_BACKEND, DB_PATH, DATABASE_URL, REDIS_ADDR, STATE_PATH).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := obs.NewLogger(a.logLevel)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(a.schemaCmd())
	cmd.AddCommand(a.seedCmd())
	cmd.AddCommand(a.driversCmd())
	cmd.AddCommand(a.progressCmd())
	cmd.AddCommand(a.reportCmd())
	cmd.AddCommand(a.mailtoCmd())

	return cmd
}

// withStore opens the configured backend, loads the store and runs fn.
func (a *app) withStore(ctx context.Context, fn func(*store.Store) error) error {
	backend, closeBackend, err := bootstrap.OpenBackend(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer closeBackend()

	st, err := store.New(ctx, backend, idgen.NewUUIDGenerator(), a.logger)
	if err != nil {
		return err
	}
	return fn(st)
}

func (a *app) percentage() func(domain.TrainingProgress, domain.TrainingPhase) float64 {
	if a.cfg != nil && a.cfg.CappedProgress {
		return services.CappedProgressPercentage
	}
	return services.ProgressPercentage
}

func lookupDriver(st *store.Store, id string) (domain.Driver, error) {
	d, ok := st.Driver(id)
	if !ok {
		return domain.Driver{}, fmt.Errorf("driver %q: %w", id, domain.ErrNotFound)
	}
	return d, nil
}
