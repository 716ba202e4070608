package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/config"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/domain/models"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/repository"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/export"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/production"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/internal/service/schedule"
	"github.com/richardfranklincarvalho-sketch/eggs-sub000/pkg/clients/webhook"
)

// Scheduler manages the recurring maintenance jobs: the alert refresh pass
// over active batches and the daily production report.
type Scheduler struct {
	cron          *cron.Cron
	cfg           config.Config
	repos         *repository.Repositories
	scheduleSvc   *schedule.Service
	productionSvc *production.Service
	notifier      webhook.Notifier
	reportSink    export.ReportSink
	logger        *zap.Logger
}

// NewScheduler creates a scheduler instance. notifier and reportSink may be
// nil when the corresponding integration is not configured.
func NewScheduler(cfg config.Config, repos *repository.Repositories, scheduleSvc *schedule.Service, productionSvc *production.Service, notifier webhook.Notifier, reportSink export.ReportSink, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:          cron.New(cron.WithLocation(location)),
		cfg:           cfg,
		repos:         repos,
		scheduleSvc:   scheduleSvc,
		productionSvc: productionSvc,
		notifier:      notifier,
		reportSink:    reportSink,
		logger:        logger,
	}
}

// Start registers the cron entries and starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.Alerts.RefreshCron, s.refreshAlerts); err != nil {
		s.logger.Error("failed to schedule alert refresh", zap.Error(err))
	}
	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.sendDailyReport); err != nil {
		s.logger.Error("failed to schedule daily report", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	batches, err := s.repos.Batches.ListActive(ctx)
	if err != nil {
		s.logger.Error("alert refresh: failed to list batches", zap.Error(err))
		return
	}

	var urgent []models.Alert
	for _, batch := range batches {
		alerts, err := s.scheduleSvc.RefreshAlerts(ctx, batch.ID, now)
		if err != nil {
			// A batch with broken reference data must not block the others.
			s.logger.Error("alert refresh failed for batch",
				zap.String("batch_id", batch.ID), zap.Error(err))
			continue
		}
		for _, alert := range alerts {
			if alert.Acknowledged {
				continue
			}
			if alert.Priority == models.PriorityHigh || alert.Priority == models.PriorityCritical {
				urgent = append(urgent, alert)
			}
		}
	}

	s.logger.Info("alert refresh pass completed",
		zap.Int("batches", len(batches)),
		zap.Int("urgent_alerts", len(urgent)))

	if s.notifier == nil || len(urgent) == 0 {
		return
	}
	if err := s.notifier.SendAlerts(ctx, s.cfg.Farm.Name, urgent); err != nil {
		s.logger.Error("failed to push alert notification", zap.Error(err))
	}
}

func (s *Scheduler) sendDailyReport() {
	if s.reportSink == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	summary, err := s.productionSvc.Dashboard(ctx, now)
	if err != nil {
		s.logger.Error("failed to build daily report", zap.Error(err))
		return
	}

	openAlerts := 0
	for _, count := range summary.OpenAlerts {
		openAlerts += count
	}

	report := export.DailyReport{
		Date:          models.DateOnly(now),
		ActiveBatches: summary.ActiveBatches,
		TotalBirds:    summary.TotalBirds,
		EggsCollected: summary.EggsToday,
		OpenAlerts:    openAlerts,
		LowStock:      len(summary.LowStockInputs),
	}

	if err := s.reportSink.AppendDailyReport(ctx, report); err != nil {
		s.logger.Error("failed to append daily report", zap.Error(err))
	} else {
		s.logger.Info("daily report appended")
	}
}
