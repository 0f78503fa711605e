// Package cli is the books_backend command line: the HTTP server, schema
// migrations and the operational VAT and invoice commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	"github.com/SscSPs/uk_books_app/internal/platform/config"
	"github.com/SscSPs/uk_books_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/uk_books_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/SscSPs/uk_books_app/internal/cli.version=...".
var (
	version = "dev"
	commit  = "none"
)

// runtime is what PersistentPreRunE prepares for every subcommand.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree. Output of the report commands goes to cmd.OutOrStdout().
func NewRootCommand() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "books_backend",
		Short: "UK bookkeeping backend: invoice lifecycle and VAT reporting",
		Long: `books_backend serves the invoice and VAT API and carries the operational
commands around it: schema migrations, VAT period lookups and reports, and the
overdue invoice sweep meant to be run by an external scheduler.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			rt.cfg = cfg
			rt.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			slog.SetDefault(rt.logger)
			return nil
		},
	}

	root.AddCommand(
		newServeCommand(rt),
		newMigrateCommand(rt),
		newVatCommand(rt),
		newInvoicesCommand(rt),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("Command execution failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// stores holds the two database handles the repositories run on.
type stores struct {
	pool *pgxpool.Pool
	db   *sql.DB
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	db, err := database.OpenSQL(ctx, cfg.DatabaseURL)
	if err != nil {
		database.ClosePgxPool(pool)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &stores{pool: pool, db: db}, nil
}

func (s *stores) repositories() portsrepo.RepositoryProvider {
	return pgsql.NewRepositoryProvider(s.pool, s.db)
}

func (s *stores) Close() {
	if err := s.db.Close(); err != nil {
		slog.Warn("Error closing database handle", slog.String("error", err.Error()))
	}
	database.ClosePgxPool(s.pool)
}
