package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/f1ction1/GeneratorGrafika/internal/config"
	"github.com/f1ction1/GeneratorGrafika/internal/repository"
	"github.com/f1ction1/GeneratorGrafika/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var n int
	var emailDomain string

	flag.IntVar(&n, "n", 5, "number of demo companies to insert")
	flag.StringVar(&emailDomain, "email-domain", "example.com", "domain for generated owner emails")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	// sql.Open does not connect, ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	seed.InsertRandomCompanies(repo, n, cfg.Seed.User.Password, emailDomain)
}
