package commands

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"keybroker/config"
	"keybroker/internal/metrics"
	"keybroker/internal/prekey"
	"keybroker/internal/prekey/repository"
	"keybroker/internal/prekey/usecase"
	"keybroker/pkg/database"
	"keybroker/pkg/logger"
)

// Commands annotated with offline never touch the database.
const offline = "offline"

type app struct {
	db      *bun.DB
	logger  *logger.Logger
	prekeys prekey.PrekeyUsecase
}

var (
	configPath string
	appCtx     *app
)

func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:          "keybroker",
		Short:        "X3DH prekey broker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[offline] == "true" {
				return nil
			}
			var err error
			appCtx, err = newApp(cmd.Context(), configPath)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.db.Close()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "path to the config file")

	root.AddCommand(
		migrateCmd(),
		keygenCmd(),
		publishCmd(),
		bundleCmd(),
		consumeCmd(),
		markUsedCmd(),
		statusCmd(),
		cleanupCmd(),
	)
	return root.ExecuteContext(ctx)
}

func newApp(ctx context.Context, path string) (*app, error) {
	v, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		return nil, err
	}
	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.NewBunDB(ctx, cfg.Bun)
	if err != nil {
		return nil, err
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	repo := repository.NewPrekeyRepository(db, *log, m)
	return &app{
		db:      db,
		logger:  log,
		prekeys: usecase.NewPrekeyUsecase(repo, *log, *cfg, m),
	}, nil
}
