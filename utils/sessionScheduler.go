package utils

import (
	"log"
	"time"

	"edulearn/repository"

	"github.com/robfig/cron/v3"
)

// StaleSessionAge is how long a live session may stay active past its start
// before the scheduler force-ends it.
const StaleSessionAge = 12 * time.Hour

// InitializeSessionScheduler sets up the daily job that ends live sessions
// left active long past their start date. Runs outside the request path.
func InitializeSessionScheduler(sessions *repository.LiveSessionRepository) *cron.Cron {
	log.Println("[SESSION-SCHEDULER] Initializing live session scheduler...")

	c := cron.New()

	c.AddFunc("0 3 * * *", func() {
		EndStaleSessions(sessions)
	})

	c.Start()
	log.Println("[SESSION-SCHEDULER] Session scheduler started - runs daily at 3 AM")
	return c
}

// EndStaleSessions closes sessions that have been active longer than
// StaleSessionAge.
func EndStaleSessions(sessions *repository.LiveSessionRepository) {
	now := time.Now()
	ended, err := sessions.EndStale(now.Add(-StaleSessionAge), now)
	if err != nil {
		log.Printf("[SESSION-SCHEDULER] Error ending stale sessions: %v", err)
		return
	}
	if ended > 0 {
		log.Printf("[SESSION-SCHEDULER] Force-ended %d stale live sessions", ended)
	}
}
