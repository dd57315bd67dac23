package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrr3/tutor-booking/internal/handler"
	"github.com/jacksonrr3/tutor-booking/internal/repository"
	"github.com/jacksonrr3/tutor-booking/internal/router"
	"github.com/jacksonrr3/tutor-booking/internal/service"
	"github.com/jacksonrr3/tutor-booking/pkg/cache"
	"github.com/jacksonrr3/tutor-booking/pkg/config"
	"github.com/jacksonrr3/tutor-booking/pkg/database"
	"github.com/jacksonrr3/tutor-booking/pkg/logger"
	"github.com/jacksonrr3/tutor-booking/web"
)

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database unavailable", "error", err)
	}
	defer db.Close()

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, serving without cache", "error", err)
		} else {
			repo := repository.NewCacheRepository(client, cachePrefix, logr)
			defer repo.Close()
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cacheRepo != nil)

	validator := service.NewFormValidator()
	teacherRepo := repository.NewTeacherRepository(db)
	goals := service.NewGoalService(repository.NewGoalRepository(db), cacheSvc)
	teachers := service.NewTeacherService(teacherRepo, goals, cacheSvc, logr)
	bookings := service.NewBookingService(repository.NewBookingRepository(db), teacherRepo, validator, cacheSvc, metrics, logr)
	requests := service.NewRequestService(repository.NewRequestRepository(db), validator, metrics, logr)

	templates, err := web.Templates()
	if err != nil {
		logr.Sugar().Fatalw("failed to parse templates", "error", err)
	}

	engine := router.New(router.Handlers{
		Catalog: handler.NewCatalogHandler(teachers, goals, cfg.Site.LandingSampleSize),
		Booking: handler.NewBookingHandler(bookings),
		Request: handler.NewRequestHandler(requests, goals),
		Metrics: handler.NewMetricsHandler(metrics, db),
	}, templates, metrics, logr)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
