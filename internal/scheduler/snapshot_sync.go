// Package scheduler contém os serviços de agendamento para pré-cálculo de métricas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/sportomic/metrics-api/infrastructure/repository"
	"github.com/sportomic/metrics-api/internal/config"
	"github.com/sportomic/metrics-api/internal/domain"
	"github.com/sportomic/metrics-api/internal/usecases/reporting"
	"github.com/sportomic/metrics-api/pkg/utils"
)

type SnapshotSyncConfig struct {
	CronSchedule  string
	LookbackDays  int
	RetentionDays int
	Enabled       bool
}

// SyncStatus descreve o estado atual do job de sincronização de snapshots
type SyncStatus struct {
	Running         bool      `json:"running"`
	LastRunID       string    `json:"last_run_id,omitempty"`
	LastStartedAt   time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt time.Time `json:"last_completed_at,omitempty"`
}

// SnapshotSyncService recalcula diariamente os snapshots de métricas
// (globais e por unidade) e os grava na tabela metrics_snapshots
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	snapshotRepo        repository.MetricsSnapshotRepository
	venueRepo           repository.VenueRepository
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSnapshotSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.MetricsSnapshotRepository,
	venueRepo repository.VenueRepository,
	cfg *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:  cfg.SnapshotSync.CronSchedule,
		LookbackDays:  cfg.SnapshotSync.LookbackDays,
		RetentionDays: cfg.SnapshotSync.RetentionDays,
		Enabled:       cfg.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuração do agendador de snapshots de métricas carregada")

	return &SnapshotSyncService{
		scheduler:    scheduler,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		venueRepo:    venueRepo,
		config:       syncConfig,
	}
}

func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshots de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de snapshots de métricas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma sincronização fora do horário agendado
func (s *SnapshotSyncService) TriggerManualSync() {
	go func() {
		if err := s.SyncSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual de snapshots de métricas")
		}
	}()
}

// Status retorna o estado atual do job
func (s *SnapshotSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return SyncStatus{
		Running:         s.syncRunning,
		LastRunID:       s.lastRunID,
		LastStartedAt:   s.lastSyncStartedAt,
		LastCompletedAt: s.lastSyncCompletedAt,
	}
}

// SyncSnapshots recalcula os snapshots dos últimos LookbackDays dias,
// um snapshot global e um por unidade para cada dia, e aplica a retenção
func (s *SnapshotSyncService) SyncSnapshots() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de snapshots já está em execução")
		return nil
	}

	runID, _ := utils.GenerateID()
	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando sincronização de snapshots de métricas")

	venues, err := s.venueRepo.List()
	if err != nil {
		logger.WithError(err).Error("Erro ao listar unidades para sincronização")
		return err
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	saved := 0

	for offset := 0; offset < s.config.LookbackDays; offset++ {
		day := yesterday.AddDate(0, 0, -offset)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		// Snapshot global do dia
		if err := s.saveSnapshot(day, nil); err != nil {
			logger.WithError(err).WithField("date", day.Format(time.DateOnly)).
				Error("Erro ao gravar snapshot global")
			return err
		}
		saved++

		// Um snapshot por unidade
		for _, venue := range venues {
			venueID := venue.ID
			if err := s.saveSnapshot(day, &venueID); err != nil {
				logger.WithError(err).WithFields(logrus.Fields{
					"date":     day.Format(time.DateOnly),
					"venue_id": venueID,
				}).Error("Erro ao gravar snapshot da unidade")
				return err
			}
			saved++
		}
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logger.WithError(err).Error("Erro ao aplicar retenção de snapshots")
		return err
	}

	logger.WithFields(logrus.Fields{
		"saved":   saved,
		"removed": removed,
	}).Info("Sincronização de snapshots de métricas concluída")

	return nil
}

func (s *SnapshotSyncService) saveSnapshot(day time.Time, venueID *int) error {
	filters := &domain.MetricsFilters{
		StartDate: &day,
		EndDate:   &day,
		VenueID:   venueID,
	}

	metrics, err := s.reporter.GeneralMetrics(filters)
	if err != nil {
		return err
	}

	return s.snapshotRepo.SaveOrUpdate(&domain.MetricsSnapshotEntry{
		VenueID: venueID,
		Date:    day,
		Metrics: metrics,
	})
}
