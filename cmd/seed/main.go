package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/emsys-dev/employee-manager/backend/internal/config"
	"github.com/emsys-dev/employee-manager/backend/internal/repository"
	"github.com/emsys-dev/employee-manager/backend/internal/utils"
	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var n int
	flag.IntVar(&n, "n", 0, "number of random employees to insert (0 uses SEED_EMPLOYEE_COUNT)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if n <= 0 {
		n = cfg.Seed.EmployeeCount
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Migrate(); err != nil {
		logger.Error("unable to create tables", "error", err)
		return
	}

	cnt := n
	for i := 0; i < n; i++ {
		employee := utils.GenerateRandomEmployee()
		if err := repo.CreateEmployee(employee); err != nil {
			logger.Error("unable to insert employee", slog.String("error", err.Error()))
			continue
		}

		cnt--
	}

	logger.Info("employees inserted", slog.Int("count", n-cnt))
}
