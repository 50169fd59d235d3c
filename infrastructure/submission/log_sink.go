package submission

import (
	"context"

	"github.com/vfg2006/business-overview-api/pkg/log"
)

// LogSink escreve o payload de envio no log da aplicação
type LogSink struct {
	logger log.Logger
}

func NewLogSink(logger log.Logger) *LogSink {
	if logger == nil {
		logger = log.L
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, sessionID string, payload string) error {
	s.logger.WithContext(ctx).
		WithField("session_id", sessionID).
		Infof("📤 Dados para envio: %s", payload)
	return nil
}
