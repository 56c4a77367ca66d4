package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"pet-breed-identifier/internal/adapters/storage"
	"pet-breed-identifier/internal/config"
	"pet-breed-identifier/internal/domain/breeds"

	"github.com/spf13/cobra"
)

// NewRootCmd arma el comando raíz con todos los subcomandos.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breedctl",
		Short: "Manage the breed information catalog",
		Long: `breedctl prepares and inspects the breed catalog used by the API.

The backend follows the same rules as the server: --db-dsn (Postgres) wins
over --sqlite, which wins over the JSON file at --path. Unset flags fall back
to DB_DSN, SQLITE_PATH and BREED_INFO_PATH (environment or .env).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("path", "", "catalog JSON file (default: BREED_INFO_PATH or data/breed_info.json)")
	cmd.PersistentFlags().String("db-dsn", "", "Postgres DSN (default: DB_DSN)")
	cmd.PersistentFlags().String("sqlite", "", "SQLite database file (default: SQLITE_PATH)")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewClassesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute corre el comando raíz; cualquier error sale con código 1.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openService resuelve el backend a partir de flags + config y devuelve el service.
// El io.Closer siempre es no-nil.
func openService(ctx context.Context, cmd *cobra.Command) (*breeds.Service, io.Closer, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, err
	}

	opts := storage.Options{
		DBDSN:         cfg.DBDSN,
		SQLitePath:    cfg.SQLitePath,
		BreedInfoPath: cfg.BreedInfoPath,
	}
	if v, _ := cmd.Flags().GetString("db-dsn"); v != "" {
		opts.DBDSN = v
	}
	if v, _ := cmd.Flags().GetString("sqlite"); v != "" {
		opts.SQLitePath = v
	}
	if v, _ := cmd.Flags().GetString("path"); v != "" {
		opts.BreedInfoPath = v
		// --path explícito: el archivo manda sobre lo que venga del entorno
		if !cmd.Flags().Changed("db-dsn") {
			opts.DBDSN = ""
		}
		if !cmd.Flags().Changed("sqlite") {
			opts.SQLitePath = ""
		}
	}

	repo, closer, _, err := storage.OpenCatalog(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	return breeds.NewService(repo), closer, nil
}
