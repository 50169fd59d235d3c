package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-overview-api/infrastructure/repository"
	"github.com/vfg2006/business-overview-api/infrastructure/submission"
	"github.com/vfg2006/business-overview-api/internal/api"
	"github.com/vfg2006/business-overview-api/internal/config"
	"github.com/vfg2006/business-overview-api/internal/scheduler"
	"github.com/vfg2006/business-overview-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-overview-api/internal/usecases/overview"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionRepo := repository.NewFormSessionRepository()
	authenticator := authenticating.NewService(cfg)

	overviewService := overview.NewService(
		sessionRepo,
		authenticator,
		submission.NewLogSink(nil),
		submission.NewAckNotifier(nil),
	)

	sessionCleanupService := scheduler.NewSessionCleanupService(sessionRepo, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, overviewService, authenticator, sessionCleanupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
