package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/tylerleech/twnkil-schedule/internal/config"
	"github.com/tylerleech/twnkil-schedule/internal/repository"
	"github.com/tylerleech/twnkil-schedule/internal/scheduler"
	"github.com/tylerleech/twnkil-schedule/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var weeksBack int
	var weeksAhead int
	var randomSeed int64

	flag.IntVar(&op, "op", 0, "operation to run (1: insert roster users, 2: insert week assignments)")
	flag.IntVar(&weeksBack, "back", 4, "number of past weeks to fill")
	flag.IntVar(&weeksAhead, "ahead", 2, "number of future weeks to fill")
	flag.Int64Var(&randomSeed, "seed", 0, "seed for reproducible assignment generation (0: random)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create database pool
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only constructs the pool, it does not connect, so ping
	// explicitly to fail fast on a bad DSN.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	// Create repository
	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		seed.SeedUsers(repo, cfg)
	case 2:
		if weeksBack < 0 || weeksAhead < 0 {
			slog.Error("back and ahead must not be negative")
			return
		}

		var src scheduler.Source
		if randomSeed != 0 {
			src = scheduler.NewSinSource(randomSeed)
		} else {
			src = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		seed.SeedAssignments(repo, scheduler.NewGenerator(src), weeksBack, weeksAhead)
	default:
		slog.Error("no operation specified")
	}
}
