package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estoque-api/internal/infrastructure/store"
)

func newInitDBCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Crea las tablas si no existen y termina",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitDB(cmd.Context(), opts)
		},
	}
}

func runInitDB(ctx context.Context, opts *rootOptions) error {
	cfg, log, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	// Open ya aplica el schema.
	db, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("inicializar base de datos: %w", err)
	}
	defer db.Close()

	log.Info().
		Str("driver", cfg.DB.Driver).
		Msg("schema aplicado")
	return nil
}
