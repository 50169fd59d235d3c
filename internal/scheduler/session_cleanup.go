package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-overview-api/infrastructure/repository"
	"github.com/vfg2006/business-overview-api/internal/config"
)

// SessionCleanupConfig representa a configuração do agendador de limpeza de sessões
type SessionCleanupConfig struct {
	CronSchedule string
	TTL          time.Duration
	Enabled      bool
}

// SessionCleanupService remove periodicamente as sessões de formulário ociosas
type SessionCleanupService struct {
	scheduler          *gocron.Scheduler
	config             SessionCleanupConfig
	sessionRepo        repository.FormSessionRepository
	now                func() time.Time
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRemoved        int
}

func NewSessionCleanupService(
	sessionRepo repository.FormSessionRepository,
	appConfig *config.Config,
) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: appConfig.Session.CleanupCron,
		TTL:          appConfig.Session.TTL,
		Enabled:      appConfig.Session.CleanupEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"session_ttl":   cleanupConfig.TTL.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cleanupConfig,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto for cancelado
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a limpeza imediatamente; execuções sobrepostas são ignoradas.
// Retorna o número de sessões removidas.
func (s *SessionCleanupService) RunNow() int {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return 0
	}
	s.cleanupRunning = true
	s.lastRunStartedAt = s.now()
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	cutoff := s.now().Add(-s.config.TTL)
	removed, err := s.sessionRepo.DeleteIdleSince(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover sessões ociosas")
		return 0
	}

	s.cleanupMutex.Lock()
	s.lastRunCompletedAt = s.now()
	s.lastRemoved = removed
	s.cleanupMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.sessionRepo.Count(),
	}).Info("Limpeza de sessões concluída")

	return removed
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"session_ttl":           s.config.TTL.String(),
		"running":               s.cleanupRunning,
		"active_sessions":       s.sessionRepo.Count(),
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_removed":          s.lastRemoved,
	}
}
