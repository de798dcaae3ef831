package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// rootOptions flags globales de todos los comandos.
type rootOptions struct {
	LogLevel string
	DBDriver string
	DBPath   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "estoque-api",
		Short:         "API de controle de estoque, vendas e métricas para lojas de roupa",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "nivel de log (trace|debug|info|warn|error); sobrescribe LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&opts.DBDriver, "db-driver", "", "driver de base (sqlite3|postgres); sobrescribe DB_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db-path", "", "archivo SQLite; sobrescribe DB_PATH")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newInitDBCommand(opts))

	return cmd
}

// bootstrap carga la configuración y arma el logger común a todos los comandos.
func bootstrap(opts *rootOptions) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.DBDriver != "" {
		driver := strings.ToLower(opts.DBDriver)
		if driver != config.DriverSQLite && driver != config.DriverPostgres {
			return nil, nil, fmt.Errorf("--db-driver inválido %q (sqlite3|postgres)", opts.DBDriver)
		}
		cfg.DB.Driver = driver
	}
	if opts.DBPath != "" {
		cfg.DB.Path = opts.DBPath
	}
	level := cfg.App.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: level,
	})
	return cfg, log, nil
}
