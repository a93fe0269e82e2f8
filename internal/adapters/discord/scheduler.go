package discord

import (
	"log"
	"time"
)

// RunScheduledTasks runs periodic tasks every 10 minutes: idle-session sweep.
func (h *Handler) RunScheduledTasks(sessionTTL time.Duration) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		if n := h.sessions.SweepIdle(sessionTTL); n > 0 {
			log.Printf("🧹 swept %d idle sessions", n)
			h.metrics.SessionsExpired.Add(float64(n))
		}
	}
}
