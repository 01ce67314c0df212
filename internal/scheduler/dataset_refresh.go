// Package scheduler contains the background job that keeps the dataset
// cache in sync with the source file.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mmisra/sales-dashboard-api/internal/config"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/dashboarding"
)

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService periodically re-stats the dataset file and reloads
// the cache when it changed. The cache itself compares mtime and size, so
// the job only has to ask for the table.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	dataset   dashboarding.DatasetProvider
	config    DatasetRefreshConfig

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

func NewDatasetRefreshService(
	datasetProvider dashboarding.DatasetProvider,
	cfg *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		Enabled:      cfg.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("dataset refresh scheduler configuration loaded")

	return &DatasetRefreshService{
		scheduler: scheduler,
		dataset:   datasetProvider,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("dataset refresh cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting dataset refresh cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDataset(ctx); err != nil {
			logrus.WithError(err).Error("dataset refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling dataset refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping dataset refresh cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset performs one refresh pass. The cached source reloads only
// when the file's mtime or size changed, so unchanged files are a no-op.
func (s *DatasetRefreshService) RefreshDataset(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("dataset refresh already running")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	if _, err := s.dataset.Table(ctx); err != nil {
		return err
	}

	status := s.dataset.Status()
	logrus.WithFields(logrus.Fields{
		"rows":      status.Rows,
		"loaded_at": status.LoadedAt,
	}).Debug("dataset refresh pass finished")

	return nil
}

// TriggerManualRefresh starts a refresh in the background unless one is
// already running.
func (s *DatasetRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("dataset refresh already in progress, ignoring manual trigger")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("starting manual dataset refresh")
	go s.RefreshDataset(context.Background())
}

// GetStatus returns the current scheduler state.
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
	}
}
