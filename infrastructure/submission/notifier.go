package submission

import (
	"context"

	"github.com/vfg2006/business-overview-api/pkg/log"
)

const DefaultAcknowledgement = "Dados prontos para envio. Veja no console."

// AckNotifier devolve sempre a mesma mensagem de confirmação
type AckNotifier struct {
	message string
	logger  log.Logger
}

func NewAckNotifier(logger log.Logger) *AckNotifier {
	if logger == nil {
		logger = log.L
	}
	return &AckNotifier{message: DefaultAcknowledgement, logger: logger}
}

func (n *AckNotifier) Notify(ctx context.Context, sessionID string) (string, error) {
	n.logger.WithContext(ctx).WithField("session_id", sessionID).Debug("Confirmação de envio gerada")
	return n.message, nil
}
