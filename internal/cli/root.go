package cli

import (
	"context"
	"fmt"

	"github.com/shenikar/field_sync/internal/app"
	"github.com/shenikar/field_sync/internal/config"
	"github.com/shenikar/field_sync/internal/storage"
	"github.com/shenikar/field_sync/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Допустимые форматы вывода
var validFormats = []string{"text", "json"}

// RootOptions - глобальные флаги и общее состояние команд
type RootOptions struct {
	Format       string
	AssumeOnline bool

	cfg    *config.Config
	logger *logrus.Logger
}

// NewRootCommand создает корневую команду field_sync
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "field_sync",
		Short:         "Offline action queue and sync engine for field occurrences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.cfg = cfg
			opts.logger = logger.New(cfg.LogLevel, logger.FileOptions{
				Path:       cfg.LogFile,
				MaxSizeMB:  cfg.LogMaxSizeMB,
				MaxBackups: cfg.LogMaxBackups,
			})
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.AssumeOnline, "assume-online", false, "skip the network probe and treat the remote API as reachable")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewDrainCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewQueueCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))

	return cmd
}

// openApp применяет миграции и собирает приложение
func (o *RootOptions) openApp(ctx context.Context) (*app.App, error) {
	if err := storage.Migrate(o.cfg, o.logger); err != nil {
		return nil, err
	}
	return app.New(ctx, o.cfg, o.logger, app.Options{AssumeOnline: o.AssumeOnline})
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
