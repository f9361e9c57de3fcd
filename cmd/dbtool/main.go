package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"transport-dataset/internal/adapters/csvfile"
	"transport-dataset/internal/adapters/repositories"
	"transport-dataset/internal/config"
	"transport-dataset/internal/platform/db"
	"transport-dataset/internal/platform/obs"
	"transport-dataset/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// dbtool loads a generated dataset into Postgres (DATABASE_URL) or SQLite (DB_PATH).
func main() {
	log := obs.NewLogger(logrus.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	cfg, err := config.LoadLoader()
	if err != nil {
		log.Fatal(err)
	}

	ctx, runID := obs.WithRunID(context.Background())
	entry := log.WithField("run_id", runID)

	conn, repo, err := openRepository(ctx, cfg)
	if err != nil {
		entry.Fatal(err)
	}
	defer conn.Close()

	entry.WithField("path", cfg.DatasetPath).Info("Reading dataset...")
	shipments, err := csvfile.ReadFile(cfg.DatasetPath)
	if err != nil {
		entry.Fatalf("read failed: %v", err)
	}

	entry.WithField("rows", len(shipments)).Info("Loading shipments...")
	if err := repo.SaveShipments(ctx, shipments); err != nil {
		entry.Fatalf("load failed: %v", err)
	}

	n, err := repo.CountShipments(ctx)
	if err != nil {
		entry.Fatalf("count failed: %v", err)
	}
	entry.WithField("rows", n).Info("Load complete.")
}

func openRepository(ctx context.Context, cfg config.Loader) (*sql.DB, ports.ShipmentRepository, error) {
	if cfg.UsePostgres() {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return conn, repositories.NewSQLShipmentRepository(conn), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("open repository: create %q: %w", filepath.Dir(cfg.DBPath), err)
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, repositories.NewSqliteShipmentRepository(conn), nil
}
