package handler

import (
	"net/http"
)

// CleanupStatus é o que o handler de cron precisa do agendador de limpeza
type CleanupStatus interface {
	GetStatus() map[string]any
}

// GetCronStatus retorna o status do agendador de limpeza de sessões
func GetCronStatus(cleanup CleanupStatus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"session-cleanup": cleanup.GetStatus(),
		})
	})
}
