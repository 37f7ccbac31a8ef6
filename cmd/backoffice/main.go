package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/topaz-jewels/backoffice_app/internal/core/services"
	"github.com/topaz-jewels/backoffice_app/internal/platform/config"
	"github.com/topaz-jewels/backoffice_app/internal/platform/logging"
	"github.com/topaz-jewels/backoffice_app/internal/repositories/database/pgsql"
	"github.com/topaz-jewels/backoffice_app/pkg/database"
)

func main() {
	period := flag.String("period", "", "payroll period formatted YYYY-MM (default: the current month)")
	flag.Parse()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := logging.WithLogger(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		if err := runMigrations(logger, cfg); err != nil {
			os.Exit(1)
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	svcs := services.NewServicesProvider(&repos)

	date, err := resolvePeriod(*period)
	if err != nil {
		logger.Error("Invalid -period value, expected YYYY-MM", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := svcs.PayrollSvc.CalculateMonthlySalaries(ctx, date); err != nil {
		logger.Error("Payroll run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// resolvePeriod parses the -period flag; with no flag the run covers the
// current calendar month.
func resolvePeriod(period string) (time.Time, error) {
	if period == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01", period)
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver, so the schema driver
// matches the application pool.
func runMigrations(logger *slog.Logger, cfg *config.Config) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
