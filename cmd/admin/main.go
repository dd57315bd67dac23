package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacksonrr3/tutor-booking/internal/repository"
	"github.com/jacksonrr3/tutor-booking/internal/seed"
	"github.com/jacksonrr3/tutor-booking/pkg/cache"
	"github.com/jacksonrr3/tutor-booking/pkg/config"
	"github.com/jacksonrr3/tutor-booking/pkg/database"
	"github.com/jacksonrr3/tutor-booking/pkg/logger"
)

// cachePrefix must match the web server's key namespace.
const cachePrefix = "tutors:"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database unavailable", "error", err)
	}
	defer db.Close()

	cli := commandLine{
		db:       db.DB,
		seeder:   seed.NewSeeder(repository.NewGoalRepository(db), repository.NewTeacherRepository(db), logr),
		bookings: repository.NewBookingRepository(db),
		out:      os.Stdout,
	}
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, cache will not be flushed", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(client, cachePrefix, logr)
			defer cacheRepo.Close()
			cli.cache = cacheRepo
		}
	}

	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			logr.Sugar().Errorw("command failed", "error", err)
		}
		stop()
		os.Exit(1)
	}
}
