package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// SystemHandler handles system-related endpoints
type SystemHandler struct {
	ping func(context.Context) error
}

// NewSystemHandler creates a new SystemHandler. ping reports whether the
// database is reachable.
func NewSystemHandler(ping func(context.Context) error) *SystemHandler {
	return &SystemHandler{ping: ping}
}

// Health answers 200 when the database responds, 503 otherwise
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		logrus.WithError(err).Warn("health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
