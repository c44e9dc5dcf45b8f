package utils

import (
	"log"
	"time"

	"learnhub/store"

	"github.com/robfig/cron/v3"
)

// Sessions older than this without a callback are considered abandoned.
const staleSessionAge = 24 * time.Hour

// InitializeSessionSweeper starts the hourly job that expires abandoned
// checkout sessions.
func InitializeSessionSweeper(sessions *store.CheckoutSessions) {
	log.Println("[SESSION-SWEEPER] Initializing checkout session sweeper...")

	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		expired, err := sessions.ExpireStale(staleSessionAge)
		if err != nil {
			log.Printf("[SESSION-SWEEPER] Error expiring stale sessions: %v", err)
			return
		}
		if expired > 0 {
			log.Printf("[SESSION-SWEEPER] Expired %d stale checkout sessions", expired)
		}
	})

	c.Start()
	log.Println("[SESSION-SWEEPER] Sweeper started - runs hourly")
}
