package overview

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SubmissionSink recebe o payload serializado no envio do formulário
type SubmissionSink interface {
	Publish(ctx context.Context, sessionID string, payload string) error
}

// Notifier produz a confirmação síncrona exibida ao usuário após o envio
type Notifier interface {
	Notify(ctx context.Context, sessionID string) (string, error)
}
