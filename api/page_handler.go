package api

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// pageHandler serves the editor front end and the liveness probe.
type pageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	staticDir   string
	startupTime time.Time
}

func newPageHandler(staticDir string, startupTime time.Time) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		staticDir:   staticDir,
		startupTime: startupTime,
	}
}

// projectPage serves the editor shell; the client loads the project by the
// id in its own url.
func (h pageHandler) projectPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
	}
}

func (h pageHandler) static() http.Handler {
	return http.FileServer(http.Dir(h.staticDir))
}

// healthz reports liveness and uptime
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h pageHandler) healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:        "ok",
			StartedAt:     h.startupTime.UTC().Format(time.RFC3339),
			UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		})
	}
}
