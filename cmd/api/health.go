package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"repaired-site/internal/transport"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler reports whether the logo store answers.
func healthHandler(db pinger, driver string, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Warn("health: database ping failed", slog.String("error", err.Error()))
			transport.WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":   "degraded",
				"database": driver,
			})
			return
		}
		transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"database": driver,
		})
	}
}
