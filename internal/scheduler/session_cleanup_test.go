package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-overview-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-overview-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestSessionCleanupService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockFormSessionRepository)
		expected int
	}{
		{
			name: "Remove sessões ociosas além do TTL",
			setup: func(repo *mocks.MockFormSessionRepository) {
				repo.EXPECT().DeleteIdleSince(now.Add(-2*time.Hour)).Return(3, nil)
				repo.EXPECT().Count().Return(5).AnyTimes()
			},
			expected: 3,
		},
		{
			name: "Erro no repositório não remove nada",
			setup: func(repo *mocks.MockFormSessionRepository) {
				repo.EXPECT().DeleteIdleSince(gomock.Any()).Return(0, errors.New("falha"))
				repo.EXPECT().Count().Return(5).AnyTimes()
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockFormSessionRepository(ctrl)
			tt.setup(repo)

			service := NewSessionCleanupService(repo, &config.Config{
				Session: config.Session{TTL: 2 * time.Hour, CleanupCron: "*/15 * * * *", CleanupEnabled: true},
			})
			service.now = func() time.Time { return now }

			assert.Equal(t, tt.expected, service.RunNow())

			status := service.GetStatus()
			assert.Equal(t, tt.expected, status["last_removed"])
			assert.Equal(t, false, status["running"])
		})
	}
}

func TestSessionCleanupService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFormSessionRepository(ctrl)
	service := NewSessionCleanupService(repo, &config.Config{Session: config.Session{TTL: time.Hour}})
	service.cleanupRunning = true

	// nenhuma chamada ao repositório é esperada
	assert.Equal(t, 0, service.RunNow())
}

func TestSessionCleanupService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFormSessionRepository(ctrl)
	service := NewSessionCleanupService(repo, &config.Config{Session: config.Session{CleanupEnabled: false}})

	assert.NoError(t, service.Start(context.Background()))
}

func TestSessionCleanupService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockFormSessionRepository(ctrl)
	service := NewSessionCleanupService(repo, &config.Config{
		Session: config.Session{TTL: time.Hour, CleanupCron: "isso não é cron", CleanupEnabled: true},
	})

	assert.Error(t, service.Start(context.Background()))
}
