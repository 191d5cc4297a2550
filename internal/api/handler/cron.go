package handler

import (
	"net/http"
)

// GetCronStatus retorna o estado do agendador e da última execução
func GetCronStatus(runner AuditRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"health_check": runner.GetStatus(),
		})
	})
}
