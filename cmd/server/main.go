package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/config"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository/memory"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository/mongodb"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/scheduler"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/server/handlers"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/server/router"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/export"
	farmsvc "github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/farm"
	productionsvc "github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/production"
	schedulesvc "github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/schedule"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/pkg/clients/webhook"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(os.Getenv("LOG_LEVEL")))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var repos *repository.Repositories
	switch cfg.Farm.StorageDriver {
	case config.DriverMemory:
		baseLogger.Warn("using in-memory storage, data will not survive restarts")
		repos = memory.NewRepositories()
	default:
		mongoClient, err := mongodb.New(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		repos = mongoClient.Repositories()
	}

	scheduleSvc := schedulesvc.NewService(repos, cfg.Alerts.PreserveAcks, baseLogger.Named("svc.schedule"))
	farmSvc := farmsvc.NewService(repos, scheduleSvc, baseLogger.Named("svc.farm"))
	productionSvc := productionsvc.NewService(repos, baseLogger.Named("svc.production"))

	var notifier webhook.Notifier
	if cfg.Alerts.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Alerts.WebhookURL)
		baseLogger.Info("alert webhook notifier enabled")
	} else {
		baseLogger.Warn("alert webhook url missing, outbound notifications disabled")
	}

	var reportSink export.ReportSink
	if cfg.SheetsEnabled() {
		reportSink, err = export.NewSheetsExporter(context.Background(), cfg.Sheets, baseLogger.Named("export.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("sheets report exporter enabled")
	}

	farmHandler := handlers.NewFarmHandler(farmSvc, repos, baseLogger.Named("handlers.farm"))
	calendarHandler := handlers.NewCalendarHandler(scheduleSvc, repos, baseLogger.Named("handlers.calendar"))
	productionHandler := handlers.NewProductionHandler(productionSvc, repos, baseLogger.Named("handlers.production"))
	engine := router.New(farmHandler, calendarHandler, productionHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, repos, scheduleSvc, productionSvc, notifier, reportSink, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
